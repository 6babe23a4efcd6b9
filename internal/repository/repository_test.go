package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Jasrah85/vibrant-art-group/internal/database"
	"github.com/Jasrah85/vibrant-art-group/internal/domain"
	"github.com/Jasrah85/vibrant-art-group/internal/pricing"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func sampleRequest(id, publicID string, createdAt time.Time) *domain.CommissionRequest {
	return &domain.CommissionRequest{
		ID:       id,
		PublicID: publicID,
		Status:   domain.StatusNew,
		Form: domain.CommissionForm{
			Medium:          "acrylic",
			SizeTier:        "S",
			DetailLevel:     "MODERATE",
			BackgroundLevel: "SIMPLE",
			Subject:         "Our dog in the garden",
		},
		Pricing: pricing.Estimate{
			Base: 220, Total: 462, Low: 370, High: 554,
			DepositPct: 0.4, DepositLow: 148, DepositHigh: 222,
		},
		ClientName:  "Pat Doe",
		ClientEmail: "pat@example.com",
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

func TestRequestRepository_SnapshotRoundTrip(t *testing.T) {
	db := setupDB(t)
	repo := NewCommissionRequestRepository(db)
	ctx := context.Background()

	created := sampleRequest("req-1", "VAG-7K2MA", time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(ctx, created))

	got, err := repo.GetByID(ctx, "req-1")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, created.Form, got.Form)
	assert.Equal(t, created.Pricing, got.Pricing)
	assert.Equal(t, domain.StatusNew, got.Status)

	byPublic, err := repo.GetByPublicID(ctx, "VAG-7K2MA")
	require.NoError(t, err)
	require.NotNil(t, byPublic)
	assert.Equal(t, "req-1", byPublic.ID)
}

func TestRequestRepository_NotFoundIsNilNil(t *testing.T) {
	db := setupDB(t)
	repo := NewCommissionRequestRepository(db)

	got, err := repo.GetByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRequestRepository_PublicIDUnique(t *testing.T) {
	db := setupDB(t)
	repo := NewCommissionRequestRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sampleRequest("req-1", "VAG-7K2MA", time.Now())))

	err := repo.Create(ctx, sampleRequest("req-2", "VAG-7K2MA", time.Now()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE constraint failed")
}

func TestRequestRepository_ListFilterAndOrder(t *testing.T) {
	db := setupDB(t)
	repo := NewCommissionRequestRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	older := sampleRequest("req-1", "VAG-AAAAA", base)
	newer := sampleRequest("req-2", "VAG-BBBBB", base.Add(time.Hour))
	declined := sampleRequest("req-3", "VAG-CCCCC", base.Add(2*time.Hour))
	declined.Status = domain.StatusDeclined

	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, declined))

	all, total, err := repo.List(ctx, nil, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, all, 3)
	assert.Equal(t, "req-3", all[0].ID, "newest first")
	assert.Equal(t, "req-1", all[2].ID)

	st := domain.StatusNew
	fresh, total, err := repo.List(ctx, &st, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, fresh, 2)

	page, total, err := repo.List(ctx, nil, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, total, "count ignores pagination")
	require.Len(t, page, 1)
	assert.Equal(t, "req-2", page[0].ID)
}

func TestRequestRepository_UpdateAdminFields(t *testing.T) {
	db := setupDB(t)
	repo := NewCommissionRequestRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sampleRequest("req-1", "VAG-7K2MA", time.Now())))

	artist := "artist-42"
	updatedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateAdminFields(ctx, "req-1", domain.StatusInProgress, &artist, "started sketching", updatedAt))

	got, err := repo.GetByID(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, got.Status)
	require.NotNil(t, got.AssignedArtistID)
	assert.Equal(t, "artist-42", *got.AssignedArtistID)
	assert.Equal(t, "started sketching", got.AdminNotes)
	assert.Equal(t, "acrylic", got.Form.Medium, "form snapshot untouched")

	err = repo.UpdateAdminFields(ctx, "missing", domain.StatusDeclined, nil, "", updatedAt)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestEventRepository_AppendAndList(t *testing.T) {
	db := setupDB(t)
	repo := NewCommissionEventRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	first := &domain.CommissionEvent{
		ID:        "ev-1",
		RequestID: "req-1",
		Type:      domain.EventRequestCreated,
		Actor:     domain.ActorClient,
		Summary:   "Request submitted by Pat Doe",
		Data:      map[string]any{"publicId": "VAG-7K2MA", "rush": true},
		CreatedAt: base,
	}
	second := &domain.CommissionEvent{
		ID:        "ev-2",
		RequestID: "req-1",
		Type:      domain.EventStatusChanged,
		Actor:     domain.ActorAdmin,
		Summary:   "Status changed: new → in_progress",
		Data:      map[string]any{"from": "new", "to": "in_progress"},
		CreatedAt: base.Add(time.Minute),
	}
	other := &domain.CommissionEvent{
		ID:        "ev-3",
		RequestID: "req-9",
		Type:      domain.EventRequestCreated,
		Actor:     domain.ActorClient,
		CreatedAt: base,
	}

	require.NoError(t, repo.Append(ctx, first))
	require.NoError(t, repo.Append(ctx, second))
	require.NoError(t, repo.Append(ctx, other))

	events, err := repo.ListByRequest(ctx, "req-1", 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "ev-2", events[0].ID, "newest first")
	assert.Equal(t, "ev-1", events[1].ID)
	assert.Equal(t, "VAG-7K2MA", events[1].Data["publicId"])
	assert.Equal(t, true, events[1].Data["rush"])

	capped, err := repo.ListByRequest(ctx, "req-1", 1)
	require.NoError(t, err)
	require.Len(t, capped, 1)
	assert.Equal(t, "ev-2", capped[0].ID)
}

func TestArtistRepository_NamesByIDs(t *testing.T) {
	db := setupDB(t)
	repo := NewArtistRepository(db)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, repo.Create(ctx, &domain.Artist{
		ID: "artist-1", Slug: "june", DisplayName: "June Carver",
		IsActive: true, AvailabilityStatus: domain.AvailabilityOpen,
		CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, repo.Create(ctx, &domain.Artist{
		ID: "artist-2", Slug: "sam", DisplayName: "Sam Reyes",
		IsActive: false, AvailabilityStatus: domain.AvailabilityClosed,
		CreatedAt: now, UpdatedAt: now,
	}))

	names, err := repo.NamesByIDs(ctx, []string{"artist-1", "artist-2", "artist-404"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"artist-1": "June Carver",
		"artist-2": "Sam Reyes",
	}, names)

	empty, err := repo.NamesByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "june", active[0].Slug)
}

func TestAdminUserRepository_EmailNormalized(t *testing.T) {
	db := setupDB(t)
	repo := NewAdminUserRepository(db)
	ctx := context.Background()

	now := time.Now()
	u := &domain.AdminUser{
		Email:        "  Studio@Example.COM ",
		PasswordHash: "x",
		Name:         "Studio Admin",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotZero(t, u.ID, "insert backfills the id")

	got, err := repo.GetByEmail(ctx, "STUDIO@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "studio@example.com", got.Email)
}

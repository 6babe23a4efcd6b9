package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Jasrah85/vibrant-art-group/internal/domain"
	"github.com/Jasrah85/vibrant-art-group/internal/modules/commission"
	"github.com/Jasrah85/vibrant-art-group/internal/pricing"
)

type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) GetByID(ctx context.Context, id string) (*domain.CommissionRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommissionRequest), args.Error(1)
}

func (m *MockRequestRepository) List(ctx context.Context, status *domain.RequestStatus, limit, offset int) ([]*domain.CommissionRequest, int, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*domain.CommissionRequest), args.Int(1), args.Error(2)
}

func (m *MockRequestRepository) UpdateAdminFields(ctx context.Context, id string, status domain.RequestStatus, assignedArtistID *string, adminNotes string, updatedAt time.Time) error {
	args := m.Called(ctx, id, status, assignedArtistID, adminNotes, updatedAt)
	return args.Error(0)
}

type MockTimelineRepository struct {
	mock.Mock
}

func (m *MockTimelineRepository) ListByRequest(ctx context.Context, requestID string, limit int) ([]domain.CommissionEvent, error) {
	args := m.Called(ctx, requestID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CommissionEvent), args.Error(1)
}

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Append(ctx context.Context, e *domain.CommissionEvent) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

type MockArtistDirectory struct {
	mock.Mock
}

func (m *MockArtistDirectory) NamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

type fakeSender struct {
	sent    []string
	sendErr error
}

func (f *fakeSender) Send(to []string, subject, html string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, subject)
	return nil
}

func strPtr(s string) *string { return &s }

func storedRequest() *domain.CommissionRequest {
	return &domain.CommissionRequest{
		ID:       "req-1",
		PublicID: "VAG-7K2MA",
		Status:   domain.StatusNew,
		Form: domain.CommissionForm{
			Medium:          "acrylic",
			SizeTier:        "S",
			DetailLevel:     "MODERATE",
			BackgroundLevel: "SIMPLE",
		},
		Pricing:     pricing.Estimate{Base: 220, Total: 462, Low: 370, High: 554, DepositPct: 0.4, DepositLow: 148, DepositHigh: 222},
		ClientName:  "Pat Doe",
		ClientEmail: "pat@example.com",
		CreatedAt:   time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
	}
}

type testEnv struct {
	requests *MockRequestRepository
	timeline *MockTimelineRepository
	events   *MockEventRepository
	artists  *MockArtistDirectory
	mailer   *fakeSender
	svc      *Service
}

func newTestEnv() *testEnv {
	env := &testEnv{
		requests: new(MockRequestRepository),
		timeline: new(MockTimelineRepository),
		events:   new(MockEventRepository),
		artists:  new(MockArtistDirectory),
		mailer:   &fakeSender{},
	}
	env.svc = NewService(env.requests, env.timeline, env.artists, commission.NewEventLog(env.events, nil), env.mailer)
	env.svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return env
}

func TestApplyUpdate_NotFound(t *testing.T) {
	env := newTestEnv()
	env.requests.On("GetByID", mock.Anything, "missing").Return(nil, nil)

	_, err := env.svc.ApplyUpdate(context.Background(), "missing", UpdateRequest{Status: "in_progress"})
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestApplyUpdate_NoChanges(t *testing.T) {
	env := newTestEnv()
	env.requests.On("GetByID", mock.Anything, "req-1").Return(storedRequest(), nil)

	result, err := env.svc.ApplyUpdate(context.Background(), "req-1", UpdateRequest{
		Status:     "new",
		AdminNotes: "",
	})
	require.NoError(t, err)
	assert.Empty(t, result.Changes)

	env.requests.AssertNotCalled(t, "UpdateAdminFields",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	env.events.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestApplyUpdate_FullChange(t *testing.T) {
	env := newTestEnv()
	env.requests.On("GetByID", mock.Anything, "req-1").Return(storedRequest(), nil)
	env.requests.On("UpdateAdminFields",
		mock.Anything, "req-1", domain.StatusInProgress, strPtr("artist-42"), "started sketching",
		time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)).Return(nil)
	env.artists.On("NamesByIDs", mock.Anything, []string{"artist-42"}).
		Return(map[string]string{"artist-42": "June"}, nil)

	var stored []domain.CommissionEvent
	env.events.On("Append", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = append(stored, *args.Get(1).(*domain.CommissionEvent))
	}).Return(nil)

	result, err := env.svc.ApplyUpdate(context.Background(), "req-1", UpdateRequest{
		Status:           "in_progress",
		AssignedArtistID: strPtr("artist-42"),
		AdminNotes:       "started sketching",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		domain.EventStatusChanged,
		domain.EventAssignmentChanged,
		domain.EventAdminNotesUpdated,
	}, result.Changes)

	require.Len(t, stored, 3)
	assert.Equal(t, "req-1", stored[0].RequestID)
	assert.Equal(t, "new", stored[0].Data["from"])
	assert.Equal(t, "in_progress", stored[0].Data["to"])
	assert.Nil(t, stored[1].Data["from"])
	assert.Equal(t, "artist-42", stored[1].Data["to"])

	assert.Equal(t, domain.StatusInProgress, result.Request.Status)
	assert.Equal(t, "June", result.Request.AssignedArtistName)
	env.requests.AssertExpectations(t)
}

func TestApplyUpdate_RecordFailureWritesNoEvents(t *testing.T) {
	env := newTestEnv()
	env.requests.On("GetByID", mock.Anything, "req-1").Return(storedRequest(), nil)
	env.requests.On("UpdateAdminFields",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("connection reset"))

	_, err := env.svc.ApplyUpdate(context.Background(), "req-1", UpdateRequest{Status: "declined"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRequestNotFound)

	env.events.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestApplyUpdate_EventFailureDoesNotFailUpdate(t *testing.T) {
	env := newTestEnv()
	env.requests.On("GetByID", mock.Anything, "req-1").Return(storedRequest(), nil)
	env.requests.On("UpdateAdminFields",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil)
	env.events.On("Append", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	result, err := env.svc.ApplyUpdate(context.Background(), "req-1", UpdateRequest{Status: "declined"})
	require.NoError(t, err, "a dead event log must not fail the record update")
	assert.Equal(t, []string{domain.EventStatusChanged}, result.Changes)
}

func TestSendClientEmail_SuccessRecordsOneEvent(t *testing.T) {
	env := newTestEnv()
	env.requests.On("GetByID", mock.Anything, "req-1").Return(storedRequest(), nil)

	var stored []domain.CommissionEvent
	env.events.On("Append", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = append(stored, *args.Get(1).(*domain.CommissionEvent))
	}).Return(nil)

	err := env.svc.SendClientEmail(context.Background(), "req-1", SendEmailRequest{
		Template: "clarification",
		Message:  "Which colors does your dog's collar have?",
	})
	require.NoError(t, err)

	require.Len(t, env.mailer.sent, 1)
	assert.Contains(t, env.mailer.sent[0], "VAG-7K2MA")

	require.Len(t, stored, 1)
	assert.Equal(t, domain.EventEmailSent, stored[0].Type)
	assert.Equal(t, domain.ActorAdmin, stored[0].Actor)
	assert.Equal(t, "clarification", stored[0].Data["template"])
	assert.Equal(t, "pat@example.com", stored[0].Data["to"])
}

func TestSendClientEmail_FailureRecordedAndSurfaced(t *testing.T) {
	env := newTestEnv()
	env.mailer.sendErr = errors.New("smtp unreachable")
	env.requests.On("GetByID", mock.Anything, "req-1").Return(storedRequest(), nil)

	var stored []domain.CommissionEvent
	env.events.On("Append", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = append(stored, *args.Get(1).(*domain.CommissionEvent))
	}).Return(nil)

	err := env.svc.SendClientEmail(context.Background(), "req-1", SendEmailRequest{
		Template: "quote",
		Message:  "Here you go",
	})
	require.ErrorIs(t, err, ErrEmailSendFailed)

	require.Len(t, stored, 1)
	assert.Equal(t, domain.EventEmailFailed, stored[0].Type)
	assert.Equal(t, "smtp unreachable", stored[0].Data["message"])
}

func TestSendClientEmail_NotFound(t *testing.T) {
	env := newTestEnv()
	env.requests.On("GetByID", mock.Anything, "missing").Return(nil, nil)

	err := env.svc.SendClientEmail(context.Background(), "missing", SendEmailRequest{
		Template: "deposit",
		Message:  "Deposit please",
	})
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestListRequests_ResolvesArtistNames(t *testing.T) {
	env := newTestEnv()

	assigned := storedRequest()
	assigned.AssignedArtistID = strPtr("artist-42")
	unassigned := storedRequest()
	unassigned.ID = "req-2"
	unassigned.PublicID = "VAG-9XQ4B"

	env.requests.On("List", mock.Anything, (*domain.RequestStatus)(nil), 20, 0).
		Return([]*domain.CommissionRequest{assigned, unassigned}, 2, nil)
	env.artists.On("NamesByIDs", mock.Anything, []string{"artist-42"}).
		Return(map[string]string{"artist-42": "June"}, nil)

	list, err := env.svc.ListRequests(context.Background(), nil, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 2, list.Total)
	require.Len(t, list.Requests, 2)
	assert.Equal(t, "June", list.Requests[0].AssignedArtistName)
	assert.Empty(t, list.Requests[1].AssignedArtistName)
	assert.Equal(t, int64(462), list.Requests[0].Total)
}

func TestTimeline_NotFound(t *testing.T) {
	env := newTestEnv()
	env.requests.On("GetByID", mock.Anything, "missing").Return(nil, nil)

	_, err := env.svc.Timeline(context.Background(), "missing", 0)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestTimeline_PassesThrough(t *testing.T) {
	env := newTestEnv()
	env.requests.On("GetByID", mock.Anything, "req-1").Return(storedRequest(), nil)
	env.timeline.On("ListByRequest", mock.Anything, "req-1", 50).
		Return([]domain.CommissionEvent{{ID: "ev-1", Type: domain.EventRequestCreated}}, nil)

	events, err := env.svc.Timeline(context.Background(), "req-1", 50)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventRequestCreated, events[0].Type)
}

package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Jasrah85/vibrant-art-group/internal/domain"
)

type ArtistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) *ArtistRepository {
	return &ArtistRepository{db: db}
}

type artistModel struct {
	ID                    string    `gorm:"column:id;primaryKey"`
	Slug                  string    `gorm:"column:slug;uniqueIndex"`
	DisplayName           string    `gorm:"column:display_name"`
	BioShort              string    `gorm:"column:bio_short"`
	BioLong               *string   `gorm:"column:bio_long;type:text"`
	IsActive              bool      `gorm:"column:is_active"`
	AvailabilityStatus    string    `gorm:"column:availability_status"`
	AcceptsRush           bool      `gorm:"column:accepts_rush"`
	CommunitySlotsEnabled bool      `gorm:"column:community_slots_enabled"`
	CreatedAt             time.Time `gorm:"column:created_at"`
	UpdatedAt             time.Time `gorm:"column:updated_at"`
}

func (artistModel) TableName() string { return "artists" }

func toDomainArtist(m artistModel) *domain.Artist {
	return &domain.Artist{
		ID:                    m.ID,
		Slug:                  m.Slug,
		DisplayName:           m.DisplayName,
		BioShort:              m.BioShort,
		BioLong:               m.BioLong,
		IsActive:              m.IsActive,
		AvailabilityStatus:    domain.AvailabilityStatus(m.AvailabilityStatus),
		AcceptsRush:           m.AcceptsRush,
		CommunitySlotsEnabled: m.CommunitySlotsEnabled,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

func toArtistModel(a *domain.Artist) artistModel {
	return artistModel{
		ID:                    a.ID,
		Slug:                  a.Slug,
		DisplayName:           a.DisplayName,
		BioShort:              a.BioShort,
		BioLong:               a.BioLong,
		IsActive:              a.IsActive,
		AvailabilityStatus:    string(a.AvailabilityStatus),
		AcceptsRush:           a.AcceptsRush,
		CommunitySlotsEnabled: a.CommunitySlotsEnabled,
		CreatedAt:             a.CreatedAt,
		UpdatedAt:             a.UpdatedAt,
	}
}

func (r *ArtistRepository) Create(ctx context.Context, a *domain.Artist) error {
	m := toArtistModel(a)
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *ArtistRepository) ListActive(ctx context.Context) ([]*domain.Artist, error) {
	var models []artistModel
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_name ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Artist, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainArtist(m))
	}
	return out, nil
}

func (r *ArtistRepository) GetBySlug(ctx context.Context, slug string) (*domain.Artist, error) {
	var m artistModel
	tx := r.db.WithContext(ctx).Where("slug = ?", slug).First(&m)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainArtist(m), nil
}

func (r *ArtistRepository) GetByID(ctx context.Context, id string) (*domain.Artist, error) {
	var m artistModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainArtist(m), nil
}

// NamesByIDs resolves display names for the given artist ids. Timeline and
// detail views join names at display time so the audit log stays stable
// across artist renames.
func (r *ArtistRepository) NamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	var models []artistModel
	err := r.db.WithContext(ctx).
		Select("id", "display_name").
		Where("id IN ?", ids).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(models))
	for _, m := range models {
		names[m.ID] = m.DisplayName
	}
	return names, nil
}

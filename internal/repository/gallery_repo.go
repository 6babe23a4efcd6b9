package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Jasrah85/vibrant-art-group/internal/domain"
)

type GalleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

type galleryItemModel struct {
	ID              string    `gorm:"column:id;primaryKey"`
	Slug            string    `gorm:"column:slug;uniqueIndex"`
	ArtistID        string    `gorm:"column:artist_id;index"`
	Title           string    `gorm:"column:title"`
	Year            *int      `gorm:"column:year"`
	Medium          string    `gorm:"column:medium"`
	SizeTier        string    `gorm:"column:size_tier"`
	Dimensions      *string   `gorm:"column:dimensions"`
	DetailLevel     string    `gorm:"column:detail_level"`
	BackgroundLevel string    `gorm:"column:background_level"`
	Status          string    `gorm:"column:status"`
	PriceCents      *int64    `gorm:"column:price_cents"`
	ImageKey        string    `gorm:"column:image_key"`
	PrefillJSON     *string   `gorm:"column:prefill_json;type:text"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

func (galleryItemModel) TableName() string { return "gallery_items" }

func toDomainGalleryItem(m galleryItemModel) *domain.GalleryItem {
	return &domain.GalleryItem{
		ID:              m.ID,
		Slug:            m.Slug,
		ArtistID:        m.ArtistID,
		Title:           m.Title,
		Year:            m.Year,
		Medium:          m.Medium,
		SizeTier:        m.SizeTier,
		Dimensions:      m.Dimensions,
		DetailLevel:     m.DetailLevel,
		BackgroundLevel: m.BackgroundLevel,
		Status:          domain.GalleryItemStatus(m.Status),
		PriceCents:      m.PriceCents,
		ImageKey:        m.ImageKey,
		PrefillJSON:     m.PrefillJSON,
		CreatedAt:       m.CreatedAt,
	}
}

func toGalleryItemModel(g *domain.GalleryItem) galleryItemModel {
	return galleryItemModel{
		ID:              g.ID,
		Slug:            g.Slug,
		ArtistID:        g.ArtistID,
		Title:           g.Title,
		Year:            g.Year,
		Medium:          g.Medium,
		SizeTier:        g.SizeTier,
		Dimensions:      g.Dimensions,
		DetailLevel:     g.DetailLevel,
		BackgroundLevel: g.BackgroundLevel,
		Status:          string(g.Status),
		PriceCents:      g.PriceCents,
		ImageKey:        g.ImageKey,
		PrefillJSON:     g.PrefillJSON,
		CreatedAt:       g.CreatedAt,
	}
}

func (r *GalleryRepository) Create(ctx context.Context, g *domain.GalleryItem) error {
	m := toGalleryItemModel(g)
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *GalleryRepository) List(ctx context.Context) ([]*domain.GalleryItem, error) {
	var models []galleryItemModel
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]*domain.GalleryItem, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainGalleryItem(m))
	}
	return out, nil
}

func (r *GalleryRepository) GetBySlug(ctx context.Context, slug string) (*domain.GalleryItem, error) {
	var m galleryItemModel
	tx := r.db.WithContext(ctx).Where("slug = ?", slug).First(&m)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainGalleryItem(m), nil
}

package domain

import "time"

type GalleryItemStatus string

const (
	GalleryAvailable         GalleryItemStatus = "available"
	GallerySold              GalleryItemStatus = "sold"
	GalleryCommissionExample GalleryItemStatus = "commission_example"
)

type GalleryItem struct {
	ID              string            `json:"id"`
	Slug            string            `json:"slug"`
	ArtistID        string            `json:"artist_id"`
	Title           string            `json:"title"`
	Year            *int              `json:"year,omitempty"`
	Medium          string            `json:"medium"`
	SizeTier        string            `json:"size_tier"`
	Dimensions      *string           `json:"dimensions,omitempty"`
	DetailLevel     string            `json:"detail_level"`
	BackgroundLevel string            `json:"background_level"`
	Status          GalleryItemStatus `json:"status"`
	PriceCents      *int64            `json:"price_cents,omitempty"`
	ImageKey        string            `json:"image_key"`

	// Optional JSON override for "request similar" wizard prefill.
	PrefillJSON *string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

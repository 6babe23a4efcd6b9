package catalog

import (
	"time"

	"github.com/Jasrah85/vibrant-art-group/internal/domain"
)

type ArtistView struct {
	ID                    string                    `json:"id"`
	Slug                  string                    `json:"slug"`
	DisplayName           string                    `json:"displayName"`
	BioShort              string                    `json:"bioShort"`
	BioLong               *string                   `json:"bioLong,omitempty"`
	AvailabilityStatus    domain.AvailabilityStatus `json:"availabilityStatus"`
	AcceptsRush           bool                      `json:"acceptsRush"`
	CommunitySlotsEnabled bool                      `json:"communitySlotsEnabled"`
}

type GalleryItemView struct {
	ID              string                   `json:"id"`
	Slug            string                   `json:"slug"`
	ArtistID        string                   `json:"artistId"`
	ArtistName      string                   `json:"artistName,omitempty"`
	Title           string                   `json:"title"`
	Year            *int                     `json:"year,omitempty"`
	Medium          string                   `json:"medium"`
	SizeTier        string                   `json:"sizeTier"`
	Dimensions      *string                  `json:"dimensions,omitempty"`
	DetailLevel     string                   `json:"detailLevel"`
	BackgroundLevel string                   `json:"backgroundLevel"`
	Status          domain.GalleryItemStatus `json:"status"`
	PriceCents      *int64                   `json:"priceCents,omitempty"`
	ImageKey        string                   `json:"imageKey"`
	CreatedAt       time.Time                `json:"createdAt"`
}

// Prefill seeds the commission wizard from a gallery piece. Every field may
// be overridden by the item's prefill JSON; otherwise it falls back to the
// item's own attributes.
type Prefill struct {
	Medium            string `json:"medium"`
	SizeTier          string `json:"sizeTier"`
	DetailLevel       string `json:"detailLevel"`
	BackgroundLevel   string `json:"backgroundLevel"`
	SuggestedArtistID string `json:"suggestedArtistId"`
	Notes             string `json:"notes"`
}

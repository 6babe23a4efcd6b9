package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Jasrah85/vibrant-art-group/internal/domain"
)

// Service serves the public gallery and artist pages plus the wizard
// prefill. Read-only.
type Service struct {
	artists ArtistRepository
	gallery GalleryRepository
}

func NewService(artists ArtistRepository, gallery GalleryRepository) *Service {
	return &Service{artists: artists, gallery: gallery}
}

func (s *Service) ListArtists(ctx context.Context) ([]ArtistView, error) {
	artists, err := s.artists.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ArtistView, 0, len(artists))
	for _, a := range artists {
		out = append(out, toArtistView(a))
	}
	return out, nil
}

func (s *Service) GetArtistBySlug(ctx context.Context, slug string) (*ArtistView, error) {
	a, err := s.artists.GetBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return nil, err
	}
	if a == nil || !a.IsActive {
		return nil, ErrArtistNotFound
	}
	v := toArtistView(a)
	return &v, nil
}

func (s *Service) ListGallery(ctx context.Context) ([]GalleryItemView, error) {
	items, err := s.gallery.List(ctx)
	if err != nil {
		return nil, err
	}

	var ids []string
	seen := map[string]bool{}
	for _, item := range items {
		if !seen[item.ArtistID] {
			seen[item.ArtistID] = true
			ids = append(ids, item.ArtistID)
		}
	}
	names, err := s.artists.NamesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]GalleryItemView, 0, len(items))
	for _, item := range items {
		out = append(out, toGalleryItemView(item, names[item.ArtistID]))
	}
	return out, nil
}

func (s *Service) GetGalleryItemBySlug(ctx context.Context, slug string) (*GalleryItemView, error) {
	item, err := s.gallery.GetBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrGalleryItemNotFound
	}

	names, err := s.artists.NamesByIDs(ctx, []string{item.ArtistID})
	if err != nil {
		return nil, err
	}

	v := toGalleryItemView(item, names[item.ArtistID])
	return &v, nil
}

// prefillOverrides mirrors the stored prefill JSON shape. All fields are
// optional; absent ones fall back to the item's attributes.
type prefillOverrides struct {
	PreferredMedium   *string `json:"preferredMedium"`
	SizeTier          *string `json:"sizeTier"`
	DetailLevel       *string `json:"detailLevel"`
	BackgroundLevel   *string `json:"backgroundLevel"`
	SuggestedArtistID *string `json:"suggestedArtistId"`
	Notes             *string `json:"notes"`
}

// PrefillFromGallerySlug builds "request something similar" wizard defaults
// from a gallery piece. Malformed prefill JSON is treated as absent.
func (s *Service) PrefillFromGallerySlug(ctx context.Context, slug string) (*Prefill, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrGalleryItemNotFound
	}

	item, err := s.gallery.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrGalleryItemNotFound
	}

	var overrides prefillOverrides
	if item.PrefillJSON != nil {
		// Errors intentionally ignored: a bad override blob must not break
		// the wizard, the item's own attributes still apply.
		_ = json.Unmarshal([]byte(*item.PrefillJSON), &overrides)
	}

	return &Prefill{
		Medium:            orDefault(overrides.PreferredMedium, item.Medium),
		SizeTier:          orDefault(overrides.SizeTier, item.SizeTier),
		DetailLevel:       orDefault(overrides.DetailLevel, item.DetailLevel),
		BackgroundLevel:   orDefault(overrides.BackgroundLevel, item.BackgroundLevel),
		SuggestedArtistID: orDefault(overrides.SuggestedArtistID, item.ArtistID),
		Notes:             orDefault(overrides.Notes, fmt.Sprintf("Inspired by: %s", item.Title)),
	}, nil
}

func orDefault(override *string, fallback string) string {
	if override != nil {
		return *override
	}
	return fallback
}

func toArtistView(a *domain.Artist) ArtistView {
	return ArtistView{
		ID:                    a.ID,
		Slug:                  a.Slug,
		DisplayName:           a.DisplayName,
		BioShort:              a.BioShort,
		BioLong:               a.BioLong,
		AvailabilityStatus:    a.AvailabilityStatus,
		AcceptsRush:           a.AcceptsRush,
		CommunitySlotsEnabled: a.CommunitySlotsEnabled,
	}
}

func toGalleryItemView(g *domain.GalleryItem, artistName string) GalleryItemView {
	return GalleryItemView{
		ID:              g.ID,
		Slug:            g.Slug,
		ArtistID:        g.ArtistID,
		ArtistName:      artistName,
		Title:           g.Title,
		Year:            g.Year,
		Medium:          g.Medium,
		SizeTier:        g.SizeTier,
		Dimensions:      g.Dimensions,
		DetailLevel:     g.DetailLevel,
		BackgroundLevel: g.BackgroundLevel,
		Status:          g.Status,
		PriceCents:      g.PriceCents,
		ImageKey:        g.ImageKey,
		CreatedAt:       g.CreatedAt,
	}
}

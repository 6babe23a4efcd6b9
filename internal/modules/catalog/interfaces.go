package catalog

import (
	"context"

	"github.com/Jasrah85/vibrant-art-group/internal/domain"
)

type ArtistRepository interface {
	ListActive(ctx context.Context) ([]*domain.Artist, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Artist, error)
	NamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
}

type GalleryRepository interface {
	List(ctx context.Context) ([]*domain.GalleryItem, error)
	GetBySlug(ctx context.Context, slug string) (*domain.GalleryItem, error)
}

package admin

import (
	"context"
	"time"

	"github.com/Jasrah85/vibrant-art-group/internal/domain"
)

type RequestRepository interface {
	GetByID(ctx context.Context, id string) (*domain.CommissionRequest, error)
	List(ctx context.Context, status *domain.RequestStatus, limit, offset int) ([]*domain.CommissionRequest, int, error)
	UpdateAdminFields(ctx context.Context, id string, status domain.RequestStatus, assignedArtistID *string, adminNotes string, updatedAt time.Time) error
}

type TimelineRepository interface {
	ListByRequest(ctx context.Context, requestID string, limit int) ([]domain.CommissionEvent, error)
}

// ArtistDirectory resolves artist ids to display names. The event log and
// request rows store only ids, names are joined at read time.
type ArtistDirectory interface {
	NamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
}

package commission

import (
	"context"

	"github.com/Jasrah85/vibrant-art-group/internal/domain"
)

// RequestRepository — only the write the intake flow needs.
type RequestRepository interface {
	Create(ctx context.Context, r *domain.CommissionRequest) error
}

package auth

import (
	"context"

	"github.com/Jasrah85/vibrant-art-group/internal/domain"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
}

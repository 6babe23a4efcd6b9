package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	jwtsvc "github.com/Jasrah85/vibrant-art-group/internal/pkg/jwt"
)

type Service struct {
	users UserRepository
	jwt   *jwtsvc.Service

	// isAllowed gates sign-in on the configured admin allow-list.
	isAllowed func(email string) bool
}

func NewService(users UserRepository, jwt *jwtsvc.Service, isAllowed func(email string) bool) *Service {
	return &Service{
		users:     users,
		jwt:       jwt,
		isAllowed: isAllowed,
	}
}

// Login verifies the password and the allow-list and issues a token. All
// failure modes map to ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if s.isAllowed != nil && !s.isAllowed(user.Email) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token: token,
		Admin: AdminInfo{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
		},
	}, nil
}

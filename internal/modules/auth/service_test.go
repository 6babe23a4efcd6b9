package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Jasrah85/vibrant-art-group/internal/domain"
	jwtsvc "github.com/Jasrah85/vibrant-art-group/internal/pkg/jwt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminUser), args.Error(1)
}

func testUser(t *testing.T, password string) *domain.AdminUser {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.AdminUser{
		ID:           7,
		Email:        "aunt@example.com",
		PasswordHash: string(hash),
		Name:         "June",
	}
}

func allowAll(string) bool { return true }
func denyAll(string) bool  { return false }

func newAuthService(users UserRepository, isAllowed func(string) bool) *Service {
	return NewService(users, jwtsvc.New("test-secret", time.Hour), isAllowed)
}

func TestLogin_Success(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "aunt@example.com").Return(testUser(t, "correct horse"), nil)

	svc := newAuthService(users, allowAll)
	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    "aunt@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, int64(7), result.Admin.ID)
	assert.Equal(t, "aunt@example.com", result.Admin.Email)

	claims, err := jwtsvc.New("test-secret", time.Hour).ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.AdminID)
	assert.Equal(t, "aunt@example.com", claims.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "aunt@example.com").Return(testUser(t, "correct horse"), nil)

	svc := newAuthService(users, allowAll)
	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "aunt@example.com",
		Password: "battery staple",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	svc := newAuthService(users, allowAll)
	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_NotOnAllowList(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "aunt@example.com").Return(testUser(t, "correct horse"), nil)

	svc := newAuthService(users, denyAll)
	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "aunt@example.com",
		Password: "correct horse",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials, "valid password is not enough without the allow-list")
}

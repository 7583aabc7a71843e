package services

import (
	"context"
	"testing"
	"time"

	"github.com/careguard/careguard-backend/internal/models"
	"github.com/careguard/careguard-backend/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	byEmail map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	for _, user := range f.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func TestAuthService_RegisterLoginVerifyRoundtrip(t *testing.T) {
	service := NewAuthService(newFakeUserRepo(), "test-secret", 7*24*time.Hour)
	ctx := context.Background()

	registered, err := service.Register(ctx, "Martha", "martha@example.com", "longenough", "")
	require.NoError(t, err)
	assert.Equal(t, models.RoleElderly, registered.User.Role, "role defaults to elderly")
	assert.NotEmpty(t, registered.Token, "register hands back a token immediately")

	loggedIn, err := service.Login(ctx, "martha@example.com", "longenough")
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)

	identity, err := service.VerifyToken(loggedIn.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, identity.UserID)
	assert.Equal(t, models.RoleElderly, identity.Role)
}

func TestAuthService_RegisterRejectsDuplicateEmail(t *testing.T) {
	service := NewAuthService(newFakeUserRepo(), "test-secret", time.Hour)
	ctx := context.Background()

	_, err := service.Register(ctx, "A", "dup@example.com", "longenough", "")
	require.NoError(t, err)

	_, err = service.Register(ctx, "B", "dup@example.com", "longenough", models.RoleCaregiver)
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestAuthService_RegisterRejectsShortPassword(t *testing.T) {
	service := NewAuthService(newFakeUserRepo(), "test-secret", time.Hour)

	_, err := service.Register(context.Background(), "A", "short@example.com", "tiny", "")
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestAuthService_LoginRejectsWrongPassword(t *testing.T) {
	service := NewAuthService(newFakeUserRepo(), "test-secret", time.Hour)
	ctx := context.Background()

	_, err := service.Register(ctx, "A", "user@example.com", "longenough", "")
	require.NoError(t, err)

	_, err = service.Login(ctx, "user@example.com", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.Login(ctx, "nobody@example.com", "longenough")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_VerifyTokenFailures(t *testing.T) {
	service := NewAuthService(newFakeUserRepo(), "test-secret", time.Hour)

	_, err := service.VerifyToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Token signed with a different secret
	other := NewAuthService(newFakeUserRepo(), "other-secret", time.Hour)
	result, err := other.Register(context.Background(), "A", "a@example.com", "longenough", "")
	require.NoError(t, err)

	_, err = service.VerifyToken(result.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_VerifyTokenRejectsExpired(t *testing.T) {
	// Negative expiry mints tokens that are already expired
	service := NewAuthService(newFakeUserRepo(), "test-secret", -time.Minute)

	result, err := service.Register(context.Background(), "A", "a@example.com", "longenough", "")
	require.NoError(t, err)

	_, err = service.VerifyToken(result.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

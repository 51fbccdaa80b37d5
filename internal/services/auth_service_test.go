package services

import (
	"testing"
	"time"

	"tutalink_backend/internal/auth"
	"tutalink_backend/internal/models"
	"tutalink_backend/internal/repositories"
	"tutalink_backend/internal/services/dto"
	"tutalink_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (AuthService, repositories.UserRepository) {
	t.Helper()
	store := repositories.NewStore()
	userRepo := repositories.NewUserRepository(store)
	sessions := auth.NewSessionManager("test-secret", time.Hour)
	return NewAuthService(userRepo, sessions), userRepo
}

func registerRequest(username string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "password123",
		FullName: "Test User",
	}
}

func TestAuthService_RegisterAndResolve(t *testing.T) {
	svc, _ := newAuthFixture(t)

	user, token, err := svc.Register(registerRequest("kwame"))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.Equal(t, models.UserRoleLearner, user.Role)
	assert.True(t, user.IsApproved)

	resolved, err := svc.ResolveSession(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
}

func TestAuthService_RegisterDuplicates(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, _, err := svc.Register(registerRequest("kwame"))
	require.NoError(t, err)

	// Same username, different case.
	dup := registerRequest("KWAME")
	dup.Email = "other@example.com"
	_, _, err = svc.Register(dup)
	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)

	// Same email, different username.
	dup = registerRequest("ama")
	dup.Email = "Kwame@Example.com"
	_, _, err = svc.Register(dup)
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, _, err := svc.Register(registerRequest("kwame"))
	require.NoError(t, err)

	user, token, err := svc.Login(&dto.LoginRequest{Username: "Kwame", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "kwame", user.Username)
	assert.NotEmpty(t, token)

	// Wrong password and unknown user fail identically.
	_, _, err = svc.Login(&dto.LoginRequest{Username: "kwame", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	_, _, err = svc.Login(&dto.LoginRequest{Username: "nobody", Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_SeededAdminLogin(t *testing.T) {
	svc, _ := newAuthFixture(t)

	user, _, err := svc.Login(&dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleAdmin, user.Role)

	// The second seeded admin carries a hash the comparator can never
	// match, so its credentials are unusable.
	_, _, err = svc.Login(&dto.LoginRequest{Username: "admin123", Password: "admin123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_LogoutRevokesSession(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, token, err := svc.Register(registerRequest("kwame"))
	require.NoError(t, err)

	svc.Logout(token)

	_, err = svc.ResolveSession(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestAuthService_ResolveDeletedUser(t *testing.T) {
	svc, users := newAuthFixture(t)

	user, token, err := svc.Register(registerRequest("kwame"))
	require.NoError(t, err)

	require.NoError(t, users.Delete(user.ID))

	_, err = svc.ResolveSession(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

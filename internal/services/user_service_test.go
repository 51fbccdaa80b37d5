package services

import (
	"regexp"
	"testing"

	"tutalink_backend/internal/auth"
	"tutalink_backend/internal/models"
	"tutalink_backend/internal/repositories"
	"tutalink_backend/internal/services/dto"
	"tutalink_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture(t *testing.T) (UserService, repositories.UserRepository, *recordingMailer) {
	t.Helper()
	store := repositories.NewStore()
	userRepo := repositories.NewUserRepository(store)
	mailer := &recordingMailer{}
	return NewUserService(userRepo, mailer), userRepo, mailer
}

func TestUserService_UpdateProfilePartial(t *testing.T) {
	svc, users, _ := newUserFixture(t)
	u := createUser(t, users, "kwame", models.UserRoleLearner)

	name := "Kwame Asante"
	year := 3
	updated, err := svc.UpdateProfile(u.ID, &dto.UpdateProfileRequest{
		FullName:    &name,
		YearOfStudy: &year,
	})
	require.NoError(t, err)
	assert.Equal(t, "Kwame Asante", updated.FullName)
	assert.Equal(t, 3, updated.YearOfStudy)
	// Fields not sent stay untouched.
	assert.Equal(t, "kwame", updated.Username)
}

func TestUserService_UpdateRoleValidation(t *testing.T) {
	svc, users, _ := newUserFixture(t)
	u := createUser(t, users, "kwame", models.UserRoleLearner)

	updated, err := svc.UpdateRole(u.ID, models.UserRoleTutor)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleTutor, updated.Role)

	_, err = svc.UpdateRole(u.ID, models.UserRole("superuser"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
}

func TestUserService_ResetPassword(t *testing.T) {
	svc, users, mailer := newUserFixture(t)
	u := createUser(t, users, "kwame", models.UserRoleLearner)
	before := u.Password

	require.NoError(t, svc.ResetPassword(u.ID))

	after, err := users.FindByID(u.ID)
	require.NoError(t, err)
	assert.NotEqual(t, before, after.Password)

	// The temp password is emailed and verifies against the new hash.
	require.Len(t, mailer.sent, 1)
	re := regexp.MustCompile(`temp\d{6}`)
	temp := re.FindString(mailer.sent[0].Body)
	require.NotEmpty(t, temp)
	assert.True(t, auth.CheckPassword(temp, after.Password))
}

func TestUserService_DeleteUserNoCascade(t *testing.T) {
	svc, users, _ := newUserFixture(t)
	u := createUser(t, users, "kwame", models.UserRoleLearner)

	require.NoError(t, svc.DeleteUser(u.ID))

	_, err := users.FindByID(u.ID)
	assert.Error(t, err)

	assert.ErrorIs(t, svc.DeleteUser(u.ID), apperrors.ErrUserNotFound)
}

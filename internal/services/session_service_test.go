package services

import (
	"testing"

	"tutalink_backend/internal/models"
	"tutalink_backend/internal/repositories"
	"tutalink_backend/internal/services/dto"
	"tutalink_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionFixture(t *testing.T) (SessionService, repositories.UserRepository) {
	t.Helper()
	store := repositories.NewStore()
	userRepo := repositories.NewUserRepository(store)
	return NewSessionService(repositories.NewSessionRepository(store)), userRepo
}

func createUser(t *testing.T, users repositories.UserRepository, username string, role models.UserRole) *models.User {
	t.Helper()
	u := &models.User{
		Username:   username,
		Email:      username + "@example.com",
		Role:       role,
		IsApproved: true,
	}
	require.NoError(t, users.Create(u))
	return u
}

func TestSessionService_CreateDefaults(t *testing.T) {
	svc, users := newSessionFixture(t)
	learner := createUser(t, users, "learner", models.UserRoleLearner)
	tutor := createUser(t, users, "tutor", models.UserRoleTutor)

	session, err := svc.Create(learner.ID, &dto.CreateSessionRequest{
		TutorID:   tutor.ID,
		Date:      "2024-05-01",
		StartTime: "10:00",
		EndTime:   "11:00",
		Location:  "Library",
	})
	require.NoError(t, err)

	assert.Equal(t, models.SessionStatusPending, session.Status)
	assert.Equal(t, models.PaymentStatusPending, session.PaymentStatus)
	// Payment is collected later; bookings start at zero.
	assert.Zero(t, session.Amount)
	assert.Equal(t, learner.ID, session.LearnerID)
}

func TestSessionService_CreateStoresTutorIDAsGiven(t *testing.T) {
	svc, users := newSessionFixture(t)
	learner := createUser(t, users, "learner", models.UserRoleLearner)

	// tutorId is not checked for existence or role at booking time; a
	// booking against an id with no user behind it still goes through.
	session, err := svc.Create(learner.ID, &dto.CreateSessionRequest{
		TutorID:   7,
		Date:      "2024-01-10",
		StartTime: "10:00",
		EndTime:   "11:00",
		Location:  "Library",
	})
	require.NoError(t, err)

	assert.Equal(t, 7, session.TutorID)
	assert.Equal(t, learner.ID, session.LearnerID)
	assert.Equal(t, models.SessionStatusPending, session.Status)
	assert.Equal(t, models.PaymentStatusPending, session.PaymentStatus)
}

func TestSessionService_CancelMatrix(t *testing.T) {
	svc, users := newSessionFixture(t)
	learner := createUser(t, users, "learner", models.UserRoleLearner)
	tutor := createUser(t, users, "tutor", models.UserRoleTutor)
	stranger := createUser(t, users, "stranger", models.UserRoleLearner)

	book := func() *models.Session {
		s, err := svc.Create(learner.ID, &dto.CreateSessionRequest{
			TutorID:   tutor.ID,
			Date:      "2024-05-01",
			StartTime: "10:00",
			EndTime:   "11:00",
			Location:  "Library",
		})
		require.NoError(t, err)
		return s
	}

	// The booking learner may cancel.
	s := book()
	cancelled, err := svc.Cancel(s.ID, learner.ID, models.UserRoleLearner)
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusCancelled, cancelled.Status)

	// The assigned tutor may cancel.
	s = book()
	_, err = svc.Cancel(s.ID, tutor.ID, models.UserRoleTutor)
	assert.NoError(t, err)

	// Any admin may cancel.
	s = book()
	_, err = svc.Cancel(s.ID, 1, models.UserRoleAdmin)
	assert.NoError(t, err)

	// An unrelated user may not, and the status stays put.
	s = book()
	_, err = svc.Cancel(s.ID, stranger.ID, models.UserRoleLearner)
	assert.ErrorIs(t, err, apperrors.ErrCancelNotAllowed)
	untouched, err := svc.GetSession(s.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusPending, untouched.Status)

	// Unknown session id.
	_, err = svc.Cancel(9999, learner.ID, models.UserRoleLearner)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestSessionService_CancelIsIdempotent(t *testing.T) {
	svc, users := newSessionFixture(t)
	learner := createUser(t, users, "learner", models.UserRoleLearner)
	tutor := createUser(t, users, "tutor", models.UserRoleTutor)

	s, err := svc.Create(learner.ID, &dto.CreateSessionRequest{
		TutorID:   tutor.ID,
		Date:      "2024-05-01",
		StartTime: "10:00",
		EndTime:   "11:00",
		Location:  "Library",
	})
	require.NoError(t, err)

	_, err = svc.Cancel(s.ID, learner.ID, models.UserRoleLearner)
	require.NoError(t, err)

	again, err := svc.Cancel(s.ID, learner.ID, models.UserRoleLearner)
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusCancelled, again.Status)
}

func TestSessionService_UpdateStatusAuthorization(t *testing.T) {
	svc, users := newSessionFixture(t)
	learner := createUser(t, users, "learner", models.UserRoleLearner)
	tutor := createUser(t, users, "tutor", models.UserRoleTutor)
	otherTutor := createUser(t, users, "tutor2", models.UserRoleTutor)

	s, err := svc.Create(learner.ID, &dto.CreateSessionRequest{
		TutorID:   tutor.ID,
		Date:      "2024-05-01",
		StartTime: "10:00",
		EndTime:   "11:00",
		Location:  "Library",
	})
	require.NoError(t, err)

	// The session's tutor confirms.
	updated, err := svc.UpdateStatus(s.ID, tutor.ID, models.UserRoleTutor, models.SessionStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusConfirmed, updated.Status)

	// A different tutor may not.
	_, err = svc.UpdateStatus(s.ID, otherTutor.ID, models.UserRoleTutor, models.SessionStatusCompleted)
	assert.Error(t, err)

	// The learner may not.
	_, err = svc.UpdateStatus(s.ID, learner.ID, models.UserRoleLearner, models.SessionStatusCompleted)
	assert.Error(t, err)

	// An admin may.
	_, err = svc.UpdateStatus(s.ID, 1, models.UserRoleAdmin, models.SessionStatusCompleted)
	assert.NoError(t, err)
}

func TestSessionService_ListScopedByRole(t *testing.T) {
	svc, users := newSessionFixture(t)
	learner := createUser(t, users, "learner", models.UserRoleLearner)
	tutor := createUser(t, users, "tutor", models.UserRoleTutor)
	other := createUser(t, users, "other", models.UserRoleLearner)

	for _, who := range []int{learner.ID, other.ID} {
		_, err := svc.Create(who, &dto.CreateSessionRequest{
			TutorID:   tutor.ID,
			Date:      "2024-05-01",
			StartTime: "10:00",
			EndTime:   "11:00",
			Location:  "Library",
		})
		require.NoError(t, err)
	}

	assert.Len(t, svc.ListForUser(learner.ID, models.UserRoleLearner), 1)
	assert.Len(t, svc.ListForUser(tutor.ID, models.UserRoleTutor), 2)
	assert.Len(t, svc.ListForUser(1, models.UserRoleAdmin), 2)
}

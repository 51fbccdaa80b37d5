package services

import (
	"testing"

	"tutalink_backend/internal/models"
	"tutalink_backend/internal/repositories"
	"tutalink_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTutorFixture(t *testing.T) (TutorService, repositories.UserRepository, repositories.ReviewRepository) {
	t.Helper()
	store := repositories.NewStore()
	userRepo := repositories.NewUserRepository(store)
	reviewRepo := repositories.NewReviewRepository(store)
	return NewTutorService(userRepo, reviewRepo), userRepo, reviewRepo
}

func TestTutorService_RatingMeanAndFallback(t *testing.T) {
	svc, users, reviews := newTutorFixture(t)
	rated := createUser(t, users, "rated", models.UserRoleTutor)
	unrated := createUser(t, users, "unrated", models.UserRoleTutor)

	for _, rating := range []int{3, 4, 5} {
		require.NoError(t, reviews.Create(&models.Review{
			LearnerID: 99, TutorID: rated.ID, Rating: rating, CreatedAt: "2024-01-01T00:00:00Z",
		}))
	}

	withReviews, err := svc.GetTutorByID(rated.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, withReviews.Rating, 0.001)
	assert.Len(t, withReviews.Reviews, 3)

	// No reviews yet shows the directory default instead of zero.
	fresh, err := svc.GetTutorByID(unrated.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.5, fresh.Rating)
	assert.Empty(t, fresh.Reviews)
}

func TestTutorService_DirectoryFiltersApproval(t *testing.T) {
	svc, users, _ := newTutorFixture(t)
	createUser(t, users, "approved", models.UserRoleTutor)
	createUser(t, users, "learner", models.UserRoleLearner)

	pending := &models.User{Username: "pending", Email: "pending@example.com", Role: models.UserRoleTutor}
	require.NoError(t, users.Create(pending))

	public := svc.GetTutors()
	require.Len(t, public, 1)
	assert.Equal(t, "approved", public[0].Username)

	// The admin listing includes unapproved tutors.
	assert.Len(t, svc.GetAllTutors(), 2)
}

func TestTutorService_RecommendedTopThreeByRating(t *testing.T) {
	svc, users, reviews := newTutorFixture(t)

	ratings := map[string]int{"t1": 2, "t2": 5, "t3": 3, "t4": 4}
	for name, rating := range ratings {
		tutor := createUser(t, users, name, models.UserRoleTutor)
		require.NoError(t, reviews.Create(&models.Review{
			LearnerID: 99, TutorID: tutor.ID, Rating: rating, CreatedAt: "2024-01-01T00:00:00Z",
		}))
	}

	recommended := svc.GetRecommendedTutors()
	require.Len(t, recommended, 3)
	assert.Equal(t, "t2", recommended[0].Username)
	assert.Equal(t, "t4", recommended[1].Username)
	assert.Equal(t, "t3", recommended[2].Username)
}

func TestTutorService_GetTutorByIDErrors(t *testing.T) {
	svc, users, _ := newTutorFixture(t)
	learner := createUser(t, users, "learner", models.UserRoleLearner)

	// A user that exists but is not a tutor reads as not found.
	_, err := svc.GetTutorByID(learner.ID)
	assert.ErrorIs(t, err, apperrors.ErrTutorNotFound)

	_, err = svc.GetTutorByID(9999)
	assert.ErrorIs(t, err, apperrors.ErrTutorNotFound)
}

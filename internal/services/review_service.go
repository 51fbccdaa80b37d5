package services

import (
	"time"

	"tutalink_backend/internal/models"
	"tutalink_backend/internal/repositories"
	"tutalink_backend/internal/services/dto"
	"tutalink_backend/pkg/apperrors"
)

const recentReviewLimit = 5

type ReviewService interface {
	// Create records a review by the calling learner against any
	// tutorId, unverified. A client-supplied createdAt is stored as
	// given; otherwise the server timestamps the review in RFC3339.
	Create(learnerID int, req *dto.CreateReviewRequest) (*models.Review, error)
	// ListForUser scopes by role: learners see reviews they wrote,
	// tutors reviews about them, admins everything.
	ListForUser(userID int, role models.UserRole) []*models.Review
	Recent() []*models.Review
}

type reviewService struct {
	reviewRepo repositories.ReviewRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
	}
}

func (s *reviewService) Create(learnerID int, req *dto.CreateReviewRequest) (*models.Review, error) {
	createdAt := req.CreatedAt
	if createdAt == "" {
		createdAt = time.Now().Format(time.RFC3339)
	}

	review := &models.Review{
		LearnerID: learnerID,
		TutorID:   req.TutorID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CourseID:  req.CourseID,
		CreatedAt: createdAt,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return review, nil
}

func (s *reviewService) ListForUser(userID int, role models.UserRole) []*models.Review {
	switch role {
	case models.UserRoleTutor:
		return s.reviewRepo.FindByTutor(userID)
	case models.UserRoleAdmin:
		return s.reviewRepo.FindAll()
	default:
		return s.reviewRepo.FindByLearner(userID)
	}
}

func (s *reviewService) Recent() []*models.Review {
	return s.reviewRepo.FindRecent(recentReviewLimit)
}

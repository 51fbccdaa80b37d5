package services

import (
	"sort"

	"tutalink_backend/internal/models"
	"tutalink_backend/internal/repositories"
	"tutalink_backend/pkg/apperrors"
)

// Demo placeholders used until a tutor profile table exists; the rating
// fallback applies whenever a tutor has no reviews yet.
const fallbackRating = 4.5

var demoSubjects = []string{"Calculus", "Linear Algebra"}

const demoPrice = 50

// TutorService builds the read-side tutor directory from user and review
// records.
type TutorService interface {
	// GetTutors lists approved tutors only.
	GetTutors() []*models.Tutor
	// GetRecommendedTutors returns the top three approved tutors by
	// rating.
	GetRecommendedTutors() []*models.Tutor
	GetTutorByID(id int) (*models.Tutor, error)
	// GetAllTutors includes unapproved tutors; admin surface.
	GetAllTutors() []*models.Tutor
}

type tutorService struct {
	userRepo   repositories.UserRepository
	reviewRepo repositories.ReviewRepository
}

func NewTutorService(userRepo repositories.UserRepository, reviewRepo repositories.ReviewRepository) TutorService {
	return &tutorService{
		userRepo:   userRepo,
		reviewRepo: reviewRepo,
	}
}

func (s *tutorService) GetTutors() []*models.Tutor {
	var tutors []*models.Tutor
	for _, user := range s.userRepo.FindAll() {
		if user.Role == models.UserRoleTutor && user.IsApproved {
			tutors = append(tutors, s.buildTutor(user))
		}
	}
	return tutors
}

func (s *tutorService) GetRecommendedTutors() []*models.Tutor {
	tutors := s.GetTutors()
	sort.SliceStable(tutors, func(i, j int) bool {
		return tutors[i].Rating > tutors[j].Rating
	})
	if len(tutors) > 3 {
		tutors = tutors[:3]
	}
	return tutors
}

func (s *tutorService) GetTutorByID(id int) (*models.Tutor, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil || user.Role != models.UserRoleTutor {
		return nil, apperrors.ErrTutorNotFound
	}
	return s.buildTutor(user), nil
}

func (s *tutorService) GetAllTutors() []*models.Tutor {
	var tutors []*models.Tutor
	for _, user := range s.userRepo.FindAll() {
		if user.Role == models.UserRoleTutor {
			tutors = append(tutors, s.buildTutor(user))
		}
	}
	return tutors
}

func (s *tutorService) buildTutor(user *models.User) *models.Tutor {
	tutorReviews := s.reviewRepo.FindByTutor(user.ID)

	rating := 0.0
	if len(tutorReviews) > 0 {
		sum := 0
		for _, review := range tutorReviews {
			sum += review.Rating
		}
		rating = float64(sum) / float64(len(tutorReviews))
	}
	if rating == 0 {
		rating = fallbackRating
	}

	reviews := make([]models.Review, 0, len(tutorReviews))
	for _, review := range tutorReviews {
		reviews = append(reviews, *review)
	}

	return &models.Tutor{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		FullName:     user.FullName,
		Role:         user.Role,
		Department:   user.Department,
		YearOfStudy:  user.YearOfStudy,
		CWA:          user.CWA,
		Rating:       rating,
		Subjects:     demoSubjects,
		Price:        demoPrice,
		Availability: []string{},
		Reviews:      reviews,
		IsApproved:   user.IsApproved,
	}
}

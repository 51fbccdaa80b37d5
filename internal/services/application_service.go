package services

import (
	"tutalink_backend/internal/email"
	"tutalink_backend/internal/logger"
	"tutalink_backend/internal/models"
	"tutalink_backend/internal/repositories"
	"tutalink_backend/internal/services/dto"
	"tutalink_backend/pkg/apperrors"
)

// Transcript upload is not wired yet; every application records the
// sample path the review UI expects.
const demoTranscriptPath = "/uploads/transcripts/sample.pdf"

// ApplicationService implements the tutor application lifecycle. Only
// learners may apply, submissions below the minimum CWA are rejected at
// the door, and a resubmission replaces the previous application.
type ApplicationService interface {
	Submit(userID int, req *dto.CreateApplicationRequest) (*models.TutorApplication, error)
	ListAll() []*models.TutorApplication
	// Approve marks the application approved and promotes the applicant
	// to tutor. The promotion does not flip approval on its own; the
	// directory listing is gated separately.
	Approve(userID int) (*models.TutorApplication, error)
	// Reject marks the application rejected; the applicant's role is
	// untouched.
	Reject(userID int) (*models.TutorApplication, error)
}

type applicationService struct {
	appRepo  repositories.ApplicationRepository
	userRepo repositories.UserRepository
	mailer   email.Provider
}

func NewApplicationService(appRepo repositories.ApplicationRepository, userRepo repositories.UserRepository, mailer email.Provider) ApplicationService {
	return &applicationService{
		appRepo:  appRepo,
		userRepo: userRepo,
		mailer:   mailer,
	}
}

func (s *applicationService) Submit(userID int, req *dto.CreateApplicationRequest) (*models.TutorApplication, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	if user.Role != models.UserRoleLearner {
		return nil, apperrors.ErrOnlyLearnersCanApply
	}
	if req.CWA < models.MinimumCWA {
		return nil, apperrors.ErrMinimumCWA
	}

	fullName := user.FullName
	if fullName == "" {
		fullName = user.Username
	}

	app := &models.TutorApplication{
		UserID:         userID,
		FullName:       fullName,
		Department:     req.Department,
		YearOfStudy:    req.YearOfStudy,
		CWA:            req.CWA,
		Subjects:       req.Subjects,
		TranscriptPath: demoTranscriptPath,
		Status:         models.ApplicationStatusPending,
	}
	if err := s.appRepo.Upsert(app); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return app, nil
}

func (s *applicationService) ListAll() []*models.TutorApplication {
	return s.appRepo.FindAll()
}

func (s *applicationService) Approve(userID int) (*models.TutorApplication, error) {
	app, err := s.appRepo.UpdateStatus(userID, models.ApplicationStatusApproved)
	if err != nil {
		return nil, apperrors.ErrApplicationNotFound
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	user.Role = models.UserRoleTutor
	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	if err := s.mailer.Send(email.ApplicationApproved(user.Email, app.FullName)); err != nil {
		logger.WithError(err).Warn("failed to send application approval email", "user_id", userID)
	}
	return app, nil
}

func (s *applicationService) Reject(userID int) (*models.TutorApplication, error) {
	app, err := s.appRepo.UpdateStatus(userID, models.ApplicationStatusRejected)
	if err != nil {
		return nil, apperrors.ErrApplicationNotFound
	}

	if user, err := s.userRepo.FindByID(userID); err == nil {
		if err := s.mailer.Send(email.ApplicationRejected(user.Email, app.FullName)); err != nil {
			logger.WithError(err).Warn("failed to send application rejection email", "user_id", userID)
		}
	}
	return app, nil
}

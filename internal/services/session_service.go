package services

import (
	"time"

	"tutalink_backend/internal/models"
	"tutalink_backend/internal/repositories"
	"tutalink_backend/internal/services/dto"
	"tutalink_backend/pkg/apperrors"
)

// SessionService implements booking lifecycle rules. A new booking always
// starts pending/pending; payment is collected later, so the amount is
// recorded as zero at creation time.
type SessionService interface {
	// Create stores the booking as given; tutorId is not checked for
	// existence or role.
	Create(learnerID int, req *dto.CreateSessionRequest) (*models.Session, error)
	GetSession(id int) (*models.Session, error)
	// ListForUser scopes by role: learners see their bookings, tutors
	// their teaching sessions, admins everything.
	ListForUser(userID int, role models.UserRole) []*models.Session
	ListUpcomingForUser(userID int, role models.UserRole) []*models.Session
	// Cancel is allowed for the booking learner, the assigned tutor and
	// admins. Cancelling an already cancelled session is a no-op.
	Cancel(sessionID, callerID int, role models.UserRole) (*models.Session, error)
	UpdateStatus(sessionID, callerID int, role models.UserRole, status models.SessionStatus) (*models.Session, error)
}

type sessionService struct {
	sessionRepo repositories.SessionRepository
}

func NewSessionService(sessionRepo repositories.SessionRepository) SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
	}
}

func (s *sessionService) Create(learnerID int, req *dto.CreateSessionRequest) (*models.Session, error) {
	session := &models.Session{
		LearnerID:     learnerID,
		TutorID:       req.TutorID,
		CourseID:      req.CourseID,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Location:      req.Location,
		Status:        models.SessionStatusPending,
		PaymentStatus: models.PaymentStatusPending,
		Amount:        0,
		Notes:         req.Notes,
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return session, nil
}

func (s *sessionService) GetSession(id int) (*models.Session, error) {
	session, err := s.sessionRepo.FindByID(id)
	if err != nil {
		return nil, apperrors.ErrSessionNotFound
	}
	return session, nil
}

func (s *sessionService) ListForUser(userID int, role models.UserRole) []*models.Session {
	switch role {
	case models.UserRoleTutor:
		return s.sessionRepo.FindByTutor(userID)
	case models.UserRoleAdmin:
		return s.sessionRepo.FindAll()
	default:
		return s.sessionRepo.FindByLearner(userID)
	}
}

func (s *sessionService) ListUpcomingForUser(userID int, role models.UserRole) []*models.Session {
	now := time.Now()
	switch role {
	case models.UserRoleTutor:
		return s.sessionRepo.FindUpcomingByTutor(userID, now)
	case models.UserRoleAdmin:
		return s.sessionRepo.FindAllUpcoming(now)
	default:
		return s.sessionRepo.FindUpcomingByLearner(userID, now)
	}
}

func (s *sessionService) Cancel(sessionID, callerID int, role models.UserRole) (*models.Session, error) {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		return nil, apperrors.ErrSessionNotFound
	}
	if !canTouchSession(session, callerID, role) {
		return nil, apperrors.ErrCancelNotAllowed
	}

	updated, err := s.sessionRepo.UpdateStatus(sessionID, models.SessionStatusCancelled)
	if err != nil {
		return nil, apperrors.ErrSessionNotFound
	}
	return updated, nil
}

func (s *sessionService) UpdateStatus(sessionID, callerID int, role models.UserRole, status models.SessionStatus) (*models.Session, error) {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		return nil, apperrors.ErrSessionNotFound
	}
	if role != models.UserRoleAdmin && !(role == models.UserRoleTutor && session.TutorID == callerID) {
		return nil, apperrors.NewForbiddenError("Unauthorized to update this session")
	}

	updated, err := s.sessionRepo.UpdateStatus(sessionID, status)
	if err != nil {
		return nil, apperrors.ErrSessionNotFound
	}
	return updated, nil
}

func canTouchSession(session *models.Session, callerID int, role models.UserRole) bool {
	if role == models.UserRoleAdmin {
		return true
	}
	return session.LearnerID == callerID || session.TutorID == callerID
}

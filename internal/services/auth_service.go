package services

import (
	"tutalink_backend/internal/auth"
	"tutalink_backend/internal/models"
	"tutalink_backend/internal/repositories"
	"tutalink_backend/internal/services/dto"
	"tutalink_backend/pkg/apperrors"
)

// AuthService owns registration, login and the session lifecycle behind
// the cookie.
type AuthService interface {
	// Register creates a learner account and logs it in; returns the user
	// and the session token for the cookie.
	Register(req *dto.RegisterRequest) (*models.User, string, error)
	// Login verifies credentials and opens a session. Unknown username
	// and wrong password fail identically.
	Login(req *dto.LoginRequest) (*models.User, string, error)
	Logout(token string)
	// ResolveSession maps a cookie token back to the user it belongs to.
	ResolveSession(token string) (*models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
	sessions *auth.SessionManager
}

func NewAuthService(userRepo repositories.UserRepository, sessions *auth.SessionManager) AuthService {
	return &authService{
		userRepo: userRepo,
		sessions: sessions,
	}
}

func (s *authService) Register(req *dto.RegisterRequest) (*models.User, string, error) {
	if _, err := s.userRepo.FindByUsername(req.Username); err == nil {
		return nil, "", apperrors.ErrUsernameTaken
	}
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, "", apperrors.ErrEmailTaken
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", apperrors.InternalError(err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		FullName: req.FullName,
		Role:     models.UserRoleLearner,
		// Learners are approved by default; the flag only gates tutors.
		IsApproved: true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, "", apperrors.InternalError(err)
	}

	token, err := s.sessions.Issue(user.ID)
	if err != nil {
		return nil, "", apperrors.InternalError(err)
	}

	return user, token, nil
}

func (s *authService) Login(req *dto.LoginRequest) (*models.User, string, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		// Same failure as a bad password so usernames cannot be probed.
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(req.Password, user.Password) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(user.ID)
	if err != nil {
		return nil, "", apperrors.InternalError(err)
	}

	return user, token, nil
}

func (s *authService) Logout(token string) {
	s.sessions.Revoke(token)
}

func (s *authService) ResolveSession(token string) (*models.User, error) {
	sess, err := s.sessions.Resolve(token)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(sess.UserID)
	if err != nil {
		// Account deleted while the session was live.
		return nil, apperrors.ErrInvalidToken
	}

	return user, nil
}

package services

import (
	"fmt"
	"math/rand"

	"tutalink_backend/internal/auth"
	"tutalink_backend/internal/email"
	"tutalink_backend/internal/logger"
	"tutalink_backend/internal/models"
	"tutalink_backend/internal/repositories"
	"tutalink_backend/internal/services/dto"
	"tutalink_backend/pkg/apperrors"
)

// UserService covers profile edits for the owner and the admin user
// management surface.
type UserService interface {
	GetUser(id int) (*models.User, error)
	GetAllUsers() []*models.User
	UpdateProfile(userID int, req *dto.UpdateProfileRequest) (*models.User, error)
	UpdateRole(id int, role models.UserRole) (*models.User, error)
	UpdateApproval(id int, approved bool) (*models.User, error)
	// ResetPassword stores a hashed temporary password and emails it to
	// the user, best-effort.
	ResetPassword(id int) error
	DeleteUser(id int) error
}

type userService struct {
	userRepo repositories.UserRepository
	mailer   email.Provider
}

func NewUserService(userRepo repositories.UserRepository, mailer email.Provider) UserService {
	return &userService{
		userRepo: userRepo,
		mailer:   mailer,
	}
}

func (s *userService) GetUser(id int) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (s *userService) GetAllUsers() []*models.User {
	return s.userRepo.FindAll()
}

func (s *userService) UpdateProfile(userID int, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Department != nil {
		user.Department = *req.Department
	}
	if req.YearOfStudy != nil {
		user.YearOfStudy = *req.YearOfStudy
	}
	if req.ProfileImage != nil {
		user.ProfileImage = *req.ProfileImage
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (s *userService) UpdateRole(id int, role models.UserRole) (*models.User, error) {
	if !role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	user.Role = role
	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (s *userService) UpdateApproval(id int, approved bool) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	user.IsApproved = approved
	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (s *userService) ResetPassword(id int) error {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return apperrors.ErrUserNotFound
	}

	tempPassword := fmt.Sprintf("temp%06d", rand.Intn(900000)+100000)

	hashed, err := auth.HashPassword(tempPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.Password = hashed
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.ErrUserNotFound
	}

	if err := s.mailer.Send(email.PasswordReset(user.Email, user.FullName, tempPassword)); err != nil {
		logger.WithError(err).Warn("failed to send password reset email", "user_id", user.ID)
	}

	return nil
}

func (s *userService) DeleteUser(id int) error {
	// Hard delete; the user's sessions and reviews stay behind as orphan
	// references.
	if err := s.userRepo.Delete(id); err != nil {
		return apperrors.ErrUserNotFound
	}
	return nil
}

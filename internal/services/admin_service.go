package services

import (
	"tutalink_backend/internal/models"
	"tutalink_backend/internal/repositories"
	"tutalink_backend/internal/services/dto"
	"tutalink_backend/pkg/apperrors"
)

// AdminService aggregates the dashboard overview and owns the two
// settings surfaces, system config records and the footer singleton.
type AdminService interface {
	Dashboard() *dto.DashboardData

	GetSystemConfig(key string) (*models.SystemConfig, error)
	ListSystemConfigs() []*models.SystemConfig
	UpdateSystemConfig(key, value string) *models.SystemConfig

	GetFooterContent() models.FooterContent
	UpdateFooterContent(req *dto.UpdateFooterRequest) models.FooterContent
}

type adminService struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	appRepo     repositories.ApplicationRepository
	configRepo  repositories.ConfigRepository
}

func NewAdminService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	appRepo repositories.ApplicationRepository,
	configRepo repositories.ConfigRepository,
) AdminService {
	return &adminService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		appRepo:     appRepo,
		configRepo:  configRepo,
	}
}

// Dashboard recomputes every figure from a full scan. Tutors are
// counted by role regardless of approval, and revenue sums paid
// sessions only.
func (s *adminService) Dashboard() *dto.DashboardData {
	users := s.userRepo.FindAll()
	totalTutors := 0
	for _, user := range users {
		if user.Role == models.UserRoleTutor {
			totalTutors++
		}
	}

	sessions := s.sessionRepo.FindAll()
	totalRevenue := 0.0
	for _, session := range sessions {
		if session.PaymentStatus == models.PaymentStatusPaid {
			totalRevenue += session.Amount
		}
	}

	pendingApplications := 0
	for _, app := range s.appRepo.FindAll() {
		if app.Status == models.ApplicationStatusPending {
			pendingApplications++
		}
	}

	return &dto.DashboardData{
		TotalUsers:          len(users),
		TotalTutors:         totalTutors,
		TotalSessions:       len(sessions),
		TotalRevenue:        totalRevenue,
		PendingApplications: pendingApplications,
		// User reports are not tracked yet.
		UserReports:      0,
		RecentActivities: demoRecentActivities(),
	}
}

// demoRecentActivities is a fixed feed until real activity tracking
// exists.
func demoRecentActivities() []dto.Activity {
	return []dto.Activity{
		{ID: 1, Type: "user_registration", User: "Kofi Mensah", Timestamp: "2023-07-20T10:30:00Z"},
		{ID: 2, Type: "tutor_application", User: "Ama Serwaa", Timestamp: "2023-07-19T15:45:00Z"},
		{ID: 3, Type: "session_booking", Learner: "Emma Wilson", Tutor: "Sam Davis", Timestamp: "2023-07-17T14:10:00Z"},
	}
}

func (s *adminService) GetSystemConfig(key string) (*models.SystemConfig, error) {
	cfg, err := s.configRepo.FindSystemConfig(key)
	if err != nil {
		return nil, apperrors.ErrConfigNotFound
	}
	return cfg, nil
}

func (s *adminService) ListSystemConfigs() []*models.SystemConfig {
	return s.configRepo.AllSystemConfigs()
}

func (s *adminService) UpdateSystemConfig(key, value string) *models.SystemConfig {
	return s.configRepo.UpsertSystemConfig(key, value)
}

func (s *adminService) GetFooterContent() models.FooterContent {
	return s.configRepo.FooterContent()
}

func (s *adminService) UpdateFooterContent(req *dto.UpdateFooterRequest) models.FooterContent {
	return s.configRepo.UpdateFooterContent(models.FooterContent{
		Copyright:   req.Copyright,
		Links:       req.Links,
		SocialMedia: req.SocialMedia,
	})
}

package services

import (
	"tutalink_backend/internal/auth"
	"tutalink_backend/internal/email"
	"tutalink_backend/internal/repositories"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	AuthService        AuthService
	UserService        UserService
	TutorService       TutorService
	SessionService     SessionService
	ReviewService      ReviewService
	ApplicationService ApplicationService
	AdminService       AdminService
	CatalogService     CatalogService
	EmailService       email.Provider
	Sessions           *auth.SessionManager
}

// NewServiceContainer wires every service against the shared store.
func NewServiceContainer(store *repositories.Store, sessions *auth.SessionManager, mailer email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository(store)
	sessionRepo := repositories.NewSessionRepository(store)
	reviewRepo := repositories.NewReviewRepository(store)
	appRepo := repositories.NewApplicationRepository(store)
	configRepo := repositories.NewConfigRepository(store)
	catalogRepo := repositories.NewCatalogRepository(store)

	return &ServiceContainer{
		AuthService:        NewAuthService(userRepo, sessions),
		UserService:        NewUserService(userRepo, mailer),
		TutorService:       NewTutorService(userRepo, reviewRepo),
		SessionService:     NewSessionService(sessionRepo),
		ReviewService:      NewReviewService(reviewRepo),
		ApplicationService: NewApplicationService(appRepo, userRepo, mailer),
		AdminService:       NewAdminService(userRepo, sessionRepo, appRepo, configRepo),
		CatalogService:     NewCatalogService(catalogRepo),
		EmailService:       mailer,
		Sessions:           sessions,
	}
}

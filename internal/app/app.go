package app

import (
	"fmt"
	"time"

	"tutalink_backend/internal/auth"
	"tutalink_backend/internal/config"
	"tutalink_backend/internal/email"
	"tutalink_backend/internal/handlers"
	"tutalink_backend/internal/logger"
	"tutalink_backend/internal/middleware"
	"tutalink_backend/internal/repositories"
	"tutalink_backend/internal/routes"
	"tutalink_backend/internal/services"
	"tutalink_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	store := repositories.NewStore()
	logger.Info("In-memory store initialized with seed data")

	if err := SeedAdmin(store, cfg); err != nil {
		logger.Fatal("Failed to seed admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, store)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services, handlers and middleware into
// a ready gin engine. Tests call it against a fresh store.
func SetupRouter(cfg *config.Config, store *repositories.Store) *gin.Engine {
	serviceContainer := initializeServices(cfg, store)
	appHandlers := initializeHandlers(cfg, serviceContainer)
	auth := middleware.NewAuth(serviceContainer.AuthService, cfg.Session.CookieName)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers, auth)
	return ginRouter
}

func initializeServices(cfg *config.Config, store *repositories.Store) *services.ServiceContainer {
	var emailService email.Provider
	if cfg.Email.SMTPHost != "" {
		provider, err := email.NewSMTPProvider(email.Config{
			SMTPHost:  cfg.Email.SMTPHost,
			SMTPPort:  cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		if err != nil {
			logger.Fatal("Failed to initialize email provider", "error", err)
		}
		emailService = provider
	} else {
		logger.Warn("SMTP is not configured, outbound email is disabled")
		emailService = &MockEmailProvider{}
	}

	sessions := auth.NewSessionManager(
		cfg.Session.Secret,
		time.Duration(cfg.Session.TTLHours)*time.Hour,
	)

	return services.NewServiceContainer(store, sessions, emailService)
}

func initializeHandlers(cfg *config.Config, container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(baseHandler, container.AuthService, cfg),
		UserHandler:        handlers.NewUserHandler(baseHandler, container.UserService),
		TutorHandler:       handlers.NewTutorHandler(baseHandler, container.TutorService),
		SessionHandler:     handlers.NewSessionHandler(baseHandler, container.SessionService),
		ReviewHandler:      handlers.NewReviewHandler(baseHandler, container.ReviewService),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, container.ApplicationService),
		AdminHandler: handlers.NewAdminHandler(
			baseHandler,
			container.AdminService,
			container.UserService,
			container.TutorService,
			container.ApplicationService,
		),
		CatalogHandler: handlers.NewCatalogHandler(baseHandler, container.CatalogService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

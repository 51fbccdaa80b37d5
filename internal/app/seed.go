package app

import (
	"fmt"
	"strings"

	"tutalink_backend/internal/auth"
	"tutalink_backend/internal/config"
	"tutalink_backend/internal/logger"
	"tutalink_backend/internal/models"
	"tutalink_backend/internal/repositories"
)

// SeedAdmin creates an extra admin account from configuration, on top of
// the demo admins the store seeds itself. Skipped when the credentials
// are not configured.
func SeedAdmin(store *repositories.Store, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("first_admin_email or first_admin_password is not set, skipping admin seeding")
		return nil
	}

	userRepo := repositories.NewUserRepository(store)
	if _, err := userRepo.FindByEmail(adminEmail); err == nil {
		logger.Info("Admin user already exists, skipping creation", "email", adminEmail)
		return nil
	}

	hashed, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	username := adminEmail
	if at := strings.Index(adminEmail, "@"); at > 0 {
		username = adminEmail[:at]
	}

	admin := &models.User{
		Username:   username,
		Email:      adminEmail,
		Password:   hashed,
		FullName:   "Administrator",
		Role:       models.UserRoleAdmin,
		IsApproved: true,
	}
	if err := userRepo.Create(admin); err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	logger.Info("Admin user seeded", "email", adminEmail, "id", admin.ID)
	return nil
}

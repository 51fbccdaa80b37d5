package validator

import (
	"log"

	"tutalink_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules wires the closed status enumerations into the
// validator so request DTOs reject strings outside the sets.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Startup-time misconfiguration, refuse to run.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-session-status", validateSessionStatus)
	mustRegister("is-payment-status", validatePaymentStatus)
	mustRegister("is-application-status", validateApplicationStatus)
}

// Empty values pass; 'required' owns presence checks.

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.UserRole(value).IsValid()
}

func validateSessionStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.SessionStatus(value).IsValid()
}

func validatePaymentStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.PaymentStatus(value).IsValid()
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ApplicationStatus(value).IsValid()
}

package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is the application error carried from services up to the HTTP
// layer. HTTPCode and the wrapped cause are not serialized.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	return &AppError{
		Code:     e.Code,
		Message:  e.Message,
		Details:  details,
		Err:      e.Err,
		HTTPCode: e.HTTPCode,
	}
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predefined errors
var (
	// Authentication
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid username or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired session", http.StatusUnauthorized)

	// Registration. Duplicates are 400 so the client can show a field-level
	// message, matching the public API contract.
	ErrUsernameTaken = New(CodeAlreadyExists, "Username already exists", http.StatusBadRequest)
	ErrEmailTaken    = New(CodeAlreadyExists, "Email already in use", http.StatusBadRequest)

	// Domain not-founds
	ErrUserNotFound        = New(CodeNotFound, "User not found", http.StatusNotFound)
	ErrTutorNotFound       = New(CodeNotFound, "Tutor not found", http.StatusNotFound)
	ErrSessionNotFound     = New(CodeNotFound, "Session not found", http.StatusNotFound)
	ErrApplicationNotFound = New(CodeNotFound, "Application not found", http.StatusNotFound)
	ErrConfigNotFound      = New(CodeNotFound, "Configuration not found", http.StatusNotFound)

	// Domain rules
	ErrInvalidRole          = New(CodeValidationFailed, "Invalid role", http.StatusBadRequest)
	ErrOnlyLearnersCanApply = New(CodeInvalidOperation, "Only learners can apply to become tutors", http.StatusBadRequest)
	ErrMinimumCWA           = New(CodeValidationFailed, "Minimum CWA of 3.4 is required", http.StatusBadRequest)
	ErrCancelNotAllowed     = New(CodeForbidden, "Unauthorized to cancel this session", http.StatusForbidden)

	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
)

// Helper constructors

func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

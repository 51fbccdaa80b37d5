package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ValidationError carries a field -> message map for the response body.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	var errMsgs []string
	for field, msg := range e.Errors {
		errMsgs = append(errMsgs, fmt.Sprintf("field '%s': %s", field, msg))
	}
	return "Validation failed: " + strings.Join(errMsgs, "; ")
}

// Validator wraps go-playground/validator. DTOs declare rules in their
// `binding` tags; the custom status rules are registered both here and on
// Gin's binding engine so ShouldBind accepts them.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()
	v.SetTagName("binding")

	// Report field names from the json tag so clients see the names they
	// actually sent.
	v.RegisterTagNameFunc(jsonTagName)

	registerCustomRules(v)

	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerCustomRules(engine)
		engine.RegisterTagNameFunc(jsonTagName)
	}

	return &Validator{
		validate: v,
	}
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// Validate checks the struct and returns a *ValidationError on failure.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	return &ValidationError{Errors: v.MapErrors(validationErrors)}
}

// MapErrors converts go-playground errors into the field -> message map
// used in responses. Handlers use it for bind-time failures too.
func (v *Validator) MapErrors(ves validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(ves))
	for _, fe := range ves {
		out[fe.Field()] = errorMessage(fe)
	}
	return out
}

func errorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return fmt.Sprintf("Must be at least %s items/characters long", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.Replace(fe.Param(), " ", ", ", -1))
	case "url":
		return "Must be a valid URL"
	case "is-user-role":
		return "Must be a valid user role"
	case "is-session-status":
		return "Must be a valid session status"
	case "is-payment-status":
		return "Must be a valid payment status"
	case "is-application-status":
		return "Must be a valid application status"
	default:
		return fmt.Sprintf("Invalid value (failed on '%s' tag)", fe.Tag())
	}
}

package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"user-service/internal/domain/user"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// emailRegex accepts any local@domain address with exactly one '@' and
// non-blank parts; the domain does not need a dotted TLD.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+$`)

func init() {
	validate = validator.New()

	// Validate user.Date fields as their underlying time.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(user.Date); ok {
			return d.Time
		}
		return nil
	}, user.Date{})

	// The builtin email rule rejects TLD-less addresses like ivan@test,
	// which this API accepts.
	_ = validate.RegisterValidation("email", emailFormat)
	_ = validate.RegisterValidation("beforetoday", beforeToday)
}

func emailFormat(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

func beforeToday(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	if t.IsZero() {
		return true
	}
	return t.Before(time.Now())
}

// GetValidator returns the validator instance
func GetValidator() *validator.Validate {
	return validate
}

// ValidateStruct validates a struct
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// FormatValidationError formats validation errors into a readable format
func FormatValidationError(err error) []ValidationError {
	var errors []ValidationError

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			errors = append(errors, ValidationError{
				Field:   strings.ToLower(fieldError.Field()),
				Tag:     fieldError.Tag(),
				Message: getErrorMessage(fieldError),
			})
		}
	}

	return errors
}

// getErrorMessage returns a human-readable error message for validation errors
func getErrorMessage(fieldError validator.FieldError) string {
	field := strings.ToLower(fieldError.Field())

	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a well-formed email address", field)
	case "beforetoday":
		return fmt.Sprintf("%s must be a past date", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fieldError.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fieldError.Param())
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fieldError.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

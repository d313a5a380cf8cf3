package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	ErrRequired       = "is required"
	ErrInvalidEmail   = "must be a valid email address"
	ErrFullName       = "must contain both first and last name"
	ErrMinValue       = "must be greater than or equal to %s"
	ErrMaxValue       = "must be less than or equal to %s"
	ErrMaxLength      = "must be at most %s characters long"
	ErrRatingRange    = "must not be greater than maxRating"
	ErrDefaultInvalid = "is invalid"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("fullname", validateFullName)

	// Report fields under their JSON names so clients can map issues back to
	// request attributes.
	validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return validator
}

// validateFullName requires at least two space-separated words once the
// surrounding whitespace is removed.
func validateFullName(fl validator.FieldLevel) bool {
	fullName := strings.TrimSpace(fl.Field().String())

	return len(strings.Split(fullName, " ")) >= 2
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "email":
		return ErrInvalidEmail
	case "fullname":
		return ErrFullName
	case "gte", "min":
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "lte":
		return fmt.Sprintf(ErrMaxValue, err.Param())
	case "max":
		return fmt.Sprintf(ErrMaxLength, err.Param())
	case "ltefield":
		return ErrRatingRange
	default:
		return ErrDefaultInvalid
	}
}

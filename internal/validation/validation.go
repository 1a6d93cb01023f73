// Package validation configures the struct validator shared by the client and the development backend.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"snapdish/internal/errors"

	"github.com/go-playground/validator/v10"
)

// TagEmailShape accepts anything shaped like local@domain.tld.
const TagEmailShape = "email_shape"

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// New returns a validator with the snapdish custom tags registered.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation(TagEmailShape, func(fl validator.FieldLevel) bool {
		return emailShape.MatchString(fl.Field().String())
	})

	return v
}

// Struct validates s and folds every field failure into one readable error.
// It returns nil when s is valid.
func Struct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate")
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}

	return errors.New(strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case TagEmailShape:
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %q validation", fe.Field(), fe.Tag())
	}
}

// Package validator adapts the shared struct validator to echo.
package validator

import (
	"net/http"

	"snapdish/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns an echo validator backed by validation.New.
func New() *CustomValidator {
	return &CustomValidator{validate: validation.New()}
}

// Validate answers 422 with the folded field messages, the way the production backend rejects bad parameters.
func (cv *CustomValidator) Validate(i any) error {
	if err := validation.Struct(cv.validate, i); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	return nil
}

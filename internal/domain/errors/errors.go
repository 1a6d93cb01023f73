package errors

import (
	"fmt"
	"net/http"
	"strings"

	"snapdish/internal/errors"
)

// AppError defines the interface for client-side operation errors.
type AppError interface {
	error
	StatusCode() int   // HTTP status returned by the backend, 0 when no response arrived
	ErrorCode() string // Stable error code
	Message() string   // User-facing message
	Details() string   // Server-provided text or local diagnostic (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
// Values are immutable: the With* helpers return copies so the predefined
// errors below can be used as errors.Is targets.
type BaseError struct {
	statusCode int
	errorCode  string
	message    string
	details    string
	cause      error
}

// NewBaseError creates a new base error
func NewBaseError(errorCode, message string) *BaseError {
	return &BaseError{
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	var b strings.Builder
	b.WriteString(e.message)
	if e.statusCode != 0 {
		fmt.Fprintf(&b, " (status %d)", e.statusCode)
	}
	if e.details != "" {
		b.WriteString(": ")
		b.WriteString(e.details)
	}
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}

	return b.String()
}

// Unwrap exposes the underlying transport or decode failure.
func (e *BaseError) Unwrap() error {
	return e.cause
}

// Is matches any BaseError carrying the same error code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// StatusCode returns the HTTP status code
func (e *BaseError) StatusCode() int {
	return e.statusCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	c := *e
	c.details = details

	return &c
}

// WithStatus records the HTTP status and the server's response text.
func (e *BaseError) WithStatus(statusCode int, serverText string) *BaseError {
	c := *e
	c.statusCode = statusCode
	c.details = strings.TrimSpace(serverText)

	return &c
}

// WithCause records the failure that prevented a usable response.
func (e *BaseError) WithCause(cause error) *BaseError {
	c := *e
	c.cause = cause

	return &c
}

// Predefined error types
var (
	// ErrValidationFailed reports bad local input; no I/O was attempted.
	ErrValidationFailed = NewBaseError(
		"VALIDATION_FAILED",
		"input validation failed",
	)

	// ErrAuthenticationFailed reports a rejected or failed login exchange.
	ErrAuthenticationFailed = NewBaseError(
		"AUTHENTICATION_FAILED",
		"login failed",
	)

	// ErrAuthenticationRequired reports a missing or expired session token.
	ErrAuthenticationRequired = NewBaseError(
		"AUTHENTICATION_REQUIRED",
		"user is not authenticated",
	)

	ErrRegistrationFailed = NewBaseError(
		"REGISTRATION_FAILED",
		"registration failed",
	)

	ErrClassificationFailed = NewBaseError(
		"CLASSIFICATION_FAILED",
		"failed to classify image",
	)

	ErrMealUploadFailed = NewBaseError(
		"MEAL_UPLOAD_FAILED",
		"failed to add meal",
	)

	ErrMealFetchFailed = NewBaseError(
		"MEAL_FETCH_FAILED",
		"failed to fetch meals",
	)

	ErrMealUpdateFailed = NewBaseError(
		"MEAL_UPDATE_FAILED",
		"failed to update meal",
	)

	ErrIngredientsFailed = NewBaseError(
		"INGREDIENTS_FAILED",
		"failed to add ingredients",
	)
)

// Errors answered by the development backend. Their message is the response detail.
var (
	ErrInvalidLogin = NewBaseError(
		"INVALID_LOGIN",
		"Invalid email or password",
	).WithStatus(http.StatusBadRequest, "")

	ErrNotAuthenticated = NewBaseError(
		"NOT_AUTHENTICATED",
		"Not authenticated",
	).WithStatus(http.StatusUnauthorized, "")

	ErrInvalidToken = NewBaseError(
		"INVALID_TOKEN",
		"Invalid authentication credentials",
	).WithStatus(http.StatusUnauthorized, "")

	ErrEmailTaken = NewBaseError(
		"EMAIL_TAKEN",
		"Email already registered",
	).WithStatus(http.StatusBadRequest, "")

	ErrMealNotFound = NewBaseError(
		"MEAL_NOT_FOUND",
		"Meal not found",
	).WithStatus(http.StatusNotFound, "")

	ErrMealForbidden = NewBaseError(
		"MEAL_FORBIDDEN",
		"Not authorized to update this meal",
	).WithStatus(http.StatusForbidden, "")

	ErrUnrecognizedImage = NewBaseError(
		"UNRECOGNIZED_IMAGE",
		"Failed to predict class or calories",
	).WithStatus(http.StatusInternalServerError, "")
)

// Code returns the error code of the first AppError in err's tree, or "" if none.
func Code(err error) string {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	return ""
}

// StatusCode returns the backend HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode()
	}

	return 0
}

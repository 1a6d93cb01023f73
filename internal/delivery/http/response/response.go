// Package response writes the JSON bodies of the development backend.
// Errors use the {"detail": ...} shape the client expects.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the body of every non-2xx response.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// MessageBody acknowledges an operation that returns no resource.
type MessageBody struct {
	Message string `json:"message"`
}

// Error writes {"detail": detail} with the given status.
func Error(c echo.Context, statusCode int, detail string) error {
	if detail == "" {
		detail = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorBody{Detail: detail})
}

// Unauthorized 401 error carrying the bearer challenge.
func Unauthorized(c echo.Context, detail string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")

	return Error(c, http.StatusUnauthorized, detail)
}

// UnprocessableEntity 422 error for malformed parameters.
func UnprocessableEntity(c echo.Context, detail string) error {
	return Error(c, http.StatusUnprocessableEntity, detail)
}

// Message writes {"message": message} with 200.
func Message(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, MessageBody{Message: message})
}

// OK writes body with 200.
func OK(c echo.Context, body any) error {
	return c.JSON(http.StatusOK, body)
}

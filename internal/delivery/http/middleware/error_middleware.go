package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "snapdish/internal/delivery/context"
	"snapdish/internal/delivery/http/response"
	domainerrors "snapdish/internal/domain/errors"
	"snapdish/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if writeErr := m.write(err, c); writeErr != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", writeErr))
	}
}

func (m *ErrorMiddleware) write(err error, c echo.Context) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		switch {
		case appErr.ErrorCode() == domainerrors.ErrValidationFailed.ErrorCode():
			return response.UnprocessableEntity(c, appErr.Details())
		case appErr.StatusCode() == http.StatusUnauthorized:
			return response.Unauthorized(c, appErr.Message())
		case appErr.StatusCode() != 0:
			return response.Error(c, appErr.StatusCode(), appErr.Message())
		}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return response.Error(c, httpErr.Code, fmt.Sprint(httpErr.Message))
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	return response.Error(c, http.StatusInternalServerError, "Internal server error")
}

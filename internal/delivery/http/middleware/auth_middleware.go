package middleware

import (
	"strings"

	deliverycontext "snapdish/internal/delivery/context"
	domainerrors "snapdish/internal/domain/errors"
	"snapdish/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware authenticates bearer tokens issued by /token.
type AuthMiddleware struct {
	accounts usecase.AccountUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(accounts usecase.AccountUsecase) *AuthMiddleware {
	return &AuthMiddleware{accounts: accounts}
}

// Authenticate rejects requests without a valid bearer token and records the caller's user ID.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return domainerrors.ErrNotAuthenticated
		}

		account, err := m.accounts.Authenticate(c.Request().Context(), strings.TrimSpace(token))
		if err != nil {
			return err
		}

		deliverycontext.SetUserID(c, account.ID)

		return next(c)
	}
}

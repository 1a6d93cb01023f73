// Package handler contains the HTTP handlers of the development backend.
package handler

import (
	"log/slog"
	"net/http"

	"snapdish/internal/domain/entity"
	"snapdish/internal/errors"
	"snapdish/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler serves registration and token exchange.
type AuthHandler struct {
	accounts usecase.AccountUsecase
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(accounts usecase.AccountUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{accounts: accounts, logger: logger}
}

type registerParams struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type registerResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type loginParams struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register creates an account from the email and password query parameters.
func (h *AuthHandler) Register(c echo.Context) error {
	var params registerParams
	err := echo.QueryParamsBinder(c).
		String("email", &params.Email).
		String("password", &params.Password).
		BindError()
	if err != nil {
		return bindingFailure(err)
	}
	if err := c.Validate(&params); err != nil {
		return err
	}

	account, err := h.accounts.Register(c.Request().Context(), entity.Credentials{
		Email:    params.Email,
		Password: params.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, registerResponse{
		Message: "User registered successfully",
		UserID:  account.ID,
	})
}

// Token exchanges the username and password form fields for a bearer token.
func (h *AuthHandler) Token(c echo.Context) error {
	params := loginParams{
		Username: c.FormValue("username"),
		Password: c.FormValue("password"),
	}
	if err := c.Validate(&params); err != nil {
		return err
	}

	token, err := h.accounts.Login(c.Request().Context(), entity.Credentials{
		Email:    params.Username,
		Password: params.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

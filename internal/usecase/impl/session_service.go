// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "snapdish/internal/delivery/context"
	"snapdish/internal/domain/entity"
	domainerrors "snapdish/internal/domain/errors"
	"snapdish/internal/domain/service"
	"snapdish/internal/errors"
	"snapdish/internal/usecase"
	"snapdish/internal/validation"

	"github.com/go-playground/validator/v10"
)

// sessionSource resolves the stored token into a usable session.
type sessionSource struct {
	store     service.CredentialStore
	inspector service.TokenInspector
	now       func() time.Time
}

func (s *sessionSource) current(ctx context.Context) (*entity.Session, error) {
	token, err := s.store.Get(ctx)
	if errors.Is(err, service.ErrNoCredential) {
		return nil, domainerrors.ErrAuthenticationRequired
	}
	if err != nil {
		return nil, domainerrors.ErrAuthenticationRequired.WithCause(err)
	}
	if token == "" {
		return nil, domainerrors.ErrAuthenticationRequired
	}

	session := s.inspector.Inspect(token)
	if session.Expired(s.now()) {
		return nil, domainerrors.ErrAuthenticationRequired.WithDetails("session expired")
	}

	return session, nil
}

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	backend  service.BackendAPI
	sessions *sessionSource
	validate *validator.Validate
	logger   *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	backend service.BackendAPI,
	store service.CredentialStore,
	inspector service.TokenInspector,
	validate *validator.Validate,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		backend:  backend,
		sessions: &sessionSource{store: store, inspector: inspector, now: time.Now},
		validate: validate,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login validates creds, exchanges them for a token and stores it.
func (srv *sessionService) Login(ctx context.Context, creds entity.Credentials) (*entity.Session, error) {
	if err := validation.Struct(srv.validate, creds); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	token, err := srv.backend.Token(ctx, creds)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", creds.Email), slog.Any("error", err))

		return nil, err
	}

	if err := srv.sessions.store.Set(ctx, token); err != nil {
		return nil, errors.Wrap(err, "failed to store session token")
	}

	srv.log(ctx).Info("Logged in", slog.String("email", creds.Email))

	return srv.sessions.inspector.Inspect(token), nil
}

// Register validates creds and creates the account.
func (srv *sessionService) Register(ctx context.Context, creds entity.Credentials) (*entity.RegistrationAck, error) {
	if err := validation.Struct(srv.validate, creds); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	ack, err := srv.backend.Register(ctx, creds)
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", creds.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Registered account", slog.String("email", creds.Email), slog.String("user_id", ack.UserID))

	return ack, nil
}

// Logout clears the stored token.
func (srv *sessionService) Logout(ctx context.Context) error {
	if err := srv.sessions.store.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear session token")
	}

	return nil
}

// Current returns the stored session.
func (srv *sessionService) Current(ctx context.Context) (*entity.Session, error) {
	return srv.sessions.current(ctx)
}

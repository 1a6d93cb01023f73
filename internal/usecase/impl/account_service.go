package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "snapdish/internal/delivery/context"
	"snapdish/internal/domain/entity"
	domainerrors "snapdish/internal/domain/errors"
	"snapdish/internal/domain/repository"
	"snapdish/internal/domain/service"
	"snapdish/internal/errors"
	"snapdish/internal/usecase"
	"snapdish/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	users    repository.UserRepository
	hasher   service.PasswordHasher
	tokens   service.TokenIssuer
	validate *validator.Validate
	logger   *slog.Logger
	now      func() time.Time
}

// NewAccountService is the constructor for accountService.
func NewAccountService(
	users repository.UserRepository,
	hasher service.PasswordHasher,
	tokens service.TokenIssuer,
	validate *validator.Validate,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		validate: validate,
		logger:   logger,
		now:      time.Now,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *accountService) Register(ctx context.Context, creds entity.Credentials) (*entity.Account, error) {
	if err := validation.Struct(srv.validate, creds); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	hash, err := srv.hasher.Hash(creds.Password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	account := &entity.Account{
		ID:           uuid.NewString(),
		Email:        strings.TrimSpace(creds.Email),
		PasswordHash: hash,
		CreatedAt:    srv.now().UTC(),
	}
	if err := srv.users.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return nil, domainerrors.ErrEmailTaken
		}

		return nil, errors.Wrap(err, "create account")
	}

	srv.log(ctx).Info("Account registered", slog.String("userID", account.ID))

	return account, nil
}

func (srv *accountService) Login(ctx context.Context, creds entity.Credentials) (string, error) {
	account, err := srv.users.FindByEmail(ctx, strings.TrimSpace(creds.Email))
	if errors.Is(err, repository.ErrUserNotFound) {
		return "", domainerrors.ErrInvalidLogin
	}
	if err != nil {
		return "", errors.Wrap(err, "find account")
	}

	if !srv.hasher.Check(creds.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Rejected password", slog.String("userID", account.ID))

		return "", domainerrors.ErrInvalidLogin
	}

	token, err := srv.tokens.Issue(account.ID)
	if err != nil {
		return "", errors.Wrap(err, "issue token")
	}

	return token, nil
}

func (srv *accountService) Authenticate(ctx context.Context, token string) (*entity.Account, error) {
	userID, err := srv.tokens.Validate(token)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WithCause(err)
	}

	account, err := srv.users.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidToken
	}
	if err != nil {
		return nil, errors.Wrap(err, "find account")
	}

	return account, nil
}

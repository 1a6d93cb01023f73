package postgres

import (
	"context"
	"strings"

	"snapdish/internal/domain/entity"
	"snapdish/internal/domain/repository"
	"snapdish/internal/errors"
	"snapdish/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates an account repository backed by PostgreSQL.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.Account, error) {
	var account model.AccountModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&account).Error
	if err != nil {
		return nil, translateAccountError(err)
	}

	return toAccountEntity(&account), nil
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var account model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("lower(email) = ?", strings.ToLower(email)).
		Take(&account).Error
	if err != nil {
		return nil, translateAccountError(err)
	}

	return toAccountEntity(&account), nil
}

func (repo *userRepository) Create(ctx context.Context, account *entity.Account) error {
	if err := repo.db.WithContext(ctx).Create(fromAccountEntity(account)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUserExists
		}

		return errors.Wrap(err, "create account")
	}

	return nil
}

func translateAccountError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrUserNotFound
	}

	return errors.Wrap(err, "query account")
}

func toAccountEntity(m *model.AccountModel) *entity.Account {
	return &entity.Account{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}

func fromAccountEntity(account *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		ID:           account.ID,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		CreatedAt:    account.CreatedAt,
	}
}

package main

import (
	"log/slog"

	"snapdish/config"
	"snapdish/internal/domain/repository"
	"snapdish/internal/errors"
	"snapdish/internal/infra/persistence/memory"
	"snapdish/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

type repositoryParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type repositories struct {
	fx.Out

	Users        repository.UserRepository
	Meals        repository.MealRepository
	Ingredients  repository.IngredientRepository
	Transactions repository.TransactionManager
}

// newRepositories picks the store named by backend.store.
func newRepositories(params repositoryParams) (repositories, error) {
	store := config.StoreMemory
	if params.Config.Backend != nil {
		store = params.Config.Backend.Store
	}

	switch store {
	case config.StorePostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return repositories{}, err
		}
		params.Logger.Info("Using PostgreSQL store")

		return repositories{
			Users:        postgres.NewUserRepository(db),
			Meals:        postgres.NewMealRepository(db),
			Ingredients:  postgres.NewIngredientRepository(db),
			Transactions: postgres.NewTransactionManager(db),
		}, nil
	case config.StoreMemory:
		meals := memory.NewMealRepository()
		ingredients := memory.NewIngredientRepository()
		params.Logger.Info("Using in-memory store; data is lost on exit")

		return repositories{
			Users:        memory.NewUserRepository(),
			Meals:        meals,
			Ingredients:  ingredients,
			Transactions: memory.NewTransactionManager(meals, ingredients),
		}, nil
	default:
		return repositories{}, errors.Errorf("unknown backend store %q", store)
	}
}

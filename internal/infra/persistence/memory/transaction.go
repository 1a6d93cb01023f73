package memory

import (
	"context"
	"sync"

	"snapdish/internal/domain/repository"
)

// transactionManager serializes meal transactions.
// Memory writes cannot fail halfway, so there is nothing to roll back.
type transactionManager struct {
	mu      sync.Mutex
	factory *repositoryFactory
}

type repositoryFactory struct {
	meals       repository.MealRepository
	ingredients repository.IngredientRepository
}

func (f *repositoryFactory) MealRepository() repository.MealRepository {
	return f.meals
}

func (f *repositoryFactory) IngredientRepository() repository.IngredientRepository {
	return f.ingredients
}

// NewTransactionManager is the constructor for transactionManager.
func NewTransactionManager(meals repository.MealRepository, ingredients repository.IngredientRepository) repository.TransactionManager {
	return &transactionManager{factory: &repositoryFactory{meals: meals, ingredients: ingredients}}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(tm.factory)
}

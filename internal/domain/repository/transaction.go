package repository

import "context"

// RepositoryFactory hands out repositories bound to a single transaction.
type RepositoryFactory interface {
	MealRepository() MealRepository
	IngredientRepository() IngredientRepository
}

// TransactionManager runs read-modify-write sequences on meals atomically.
type TransactionManager interface {
	// Execute runs fn in one transaction. Returning an error rolls it back.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}

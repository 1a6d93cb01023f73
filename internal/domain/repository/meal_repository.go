package repository

import (
	"context"

	"snapdish/internal/domain/entity"
	"snapdish/internal/errors"
)

// ErrMealNotFound is returned when no meal matches the lookup.
var ErrMealNotFound = errors.New("meal not found")

// MealRepository defines the operations for meal persistence.
type MealRepository interface {
	Create(ctx context.Context, meal *entity.MealDocument) error

	FindByID(ctx context.Context, id string) (*entity.MealDocument, error)

	// FindByUser returns the user's meals in insertion order.
	FindByUser(ctx context.Context, userID string) ([]*entity.MealDocument, error)

	// Update replaces a stored meal.
	Update(ctx context.Context, meal *entity.MealDocument) error
}

// IngredientRepository persists ingredients added to meals.
type IngredientRepository interface {
	Create(ctx context.Context, ingredient *entity.IngredientRecord) error
}

package usecase

import (
	"context"

	"snapdish/internal/domain/entity"
)

// MealUsecase defines the meal operations of the authenticated user.
// Every method fails with ErrAuthenticationRequired before any I/O when no valid session is stored.
type MealUsecase interface {
	AddMeal(ctx context.Context, upload *entity.MealUpload) (*entity.Meal, error)

	// ListMeals returns meals in server order with photos materialized locally.
	// The call is all-or-nothing: on failure no photo written during the call remains.
	ListMeals(ctx context.Context) ([]*entity.Meal, error)

	UpdateMeal(ctx context.Context, mealID string, patch entity.MealPatch) error
	AddIngredients(ctx context.Context, mealID string, ingredients []entity.Ingredient) (*entity.IngredientsResult, error)
}

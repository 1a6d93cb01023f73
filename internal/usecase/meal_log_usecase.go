package usecase

import (
	"context"
	"time"

	"snapdish/internal/domain/entity"
)

// NewMealInput is a meal submitted to the development backend.
type NewMealInput struct {
	Name     string
	Calories int
	Time     time.Time
	Image    []byte // Optional photo.
}

// MealRevision lists the fields replaced on a stored meal. Nil fields are kept.
type MealRevision struct {
	Name     *string
	Calories *int
	Time     *time.Time
	Image    []byte
}

// MealLogUsecase defines the meal operations served by the development backend.
// Every method acts on behalf of userID.
type MealLogUsecase interface {
	Create(ctx context.Context, userID string, input *NewMealInput) (*entity.MealDocument, error)

	// List returns the user's meals in insertion order.
	List(ctx context.Context, userID string) ([]*entity.MealDocument, error)

	// Update fails with ErrMealForbidden when the meal belongs to someone else.
	Update(ctx context.Context, userID, mealID string, revision *MealRevision) error

	// AddIngredients appends ingredients and adds their calories to the meal total.
	AddIngredients(ctx context.Context, userID, mealID string, ingredients []entity.Ingredient) (*entity.IngredientsResult, error)
}

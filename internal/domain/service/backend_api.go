package service

import (
	"context"
	"time"

	"snapdish/internal/domain/entity"
)

// MealSubmission is the payload of an add-meal request.
type MealSubmission struct {
	Photo    []byte
	Name     string
	Calories int
	Time     time.Time
}

// MealChanges is the payload of an update-meal request. Nil fields are not sent.
type MealChanges struct {
	Name     *string
	Calories *int
	Time     *time.Time
	Photo    []byte // Replacement photo, nil to keep the current one.
}

// RemoteMeal is a meal record decoded from the backend.
// ImageData holds the decoded photo bytes; Meal.Image is still empty at this stage.
type RemoteMeal struct {
	Meal      *entity.Meal
	ImageData []byte
}

// BackendAPI is the transport to the meal backend. Every failure it returns is an
// AppError of the operation's own kind. Authenticated calls take the token explicitly.
type BackendAPI interface {
	// Token exchanges credentials for a bearer token.
	Token(ctx context.Context, creds entity.Credentials) (string, error)

	// Register creates an account.
	Register(ctx context.Context, creds entity.Credentials) (*entity.RegistrationAck, error)

	// Classify uploads a photo to the anonymous classification endpoint.
	Classify(ctx context.Context, photo []byte) (*entity.ClassificationResult, error)

	// AddMeal uploads a photo with its metadata and returns the created record.
	AddMeal(ctx context.Context, token string, meal MealSubmission) (*entity.Meal, error)

	// Meals lists the authenticated user's meals in server order.
	Meals(ctx context.Context, token string) ([]*RemoteMeal, error)

	// UpdateMeal changes fields of an existing meal.
	UpdateMeal(ctx context.Context, token, mealID string, changes MealChanges) error

	// AddIngredients appends ingredients to a meal.
	AddIngredients(ctx context.Context, token, mealID string, ingredients []entity.Ingredient) (*entity.IngredientsResult, error)
}

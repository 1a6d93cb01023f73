package entity

import "time"

// Account is a user known to the development backend.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// MealDocument is a meal as stored by the development backend, photo bytes included.
type MealDocument struct {
	ID            string
	UserID        string
	Name          string
	IngredientIDs []string
	Calories      int
	Image         []byte
	Time          time.Time
}

// IngredientRecord is an ingredient attached to a stored meal.
type IngredientRecord struct {
	ID       string
	MealID   string
	Name     string
	Calories int
}

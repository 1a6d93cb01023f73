package entity

import (
	"slices"
	"time"
)

// Meal is a persisted meal record after client-side normalization.
type Meal struct {
	ID            string    // Server-assigned identifier.
	UserID        string    // Owner as reported by the server.
	Name          string    // Display name of the dish.
	IngredientIDs []string  // Identifiers of ingredients attached to the meal.
	Calories      int       // Total calories.
	Image         string    // Local address of the materialized photo, empty when the meal has none.
	Time          time.Time // When the meal was eaten.
}

// MealUpload binds a captured photo to the metadata submitted with it.
// It is discarded once the server acknowledges the upload.
type MealUpload struct {
	Photo    string    `validate:"required"` // Local address of the photo in the image store.
	Name     string    `validate:"required"` // Meal name.
	Calories int       `validate:"gte=0"`    // Calories, usually the floored classifier estimate.
	Time     time.Time `validate:"required"` // When the meal was eaten; sent with its zone offset.
}

// MealPatch lists the fields to change on an existing meal. Nil fields are left untouched.
type MealPatch struct {
	Name     *string
	Calories *int
	Time     *time.Time
	Photo    *string // Local address of a replacement photo.
}

// Empty reports whether the patch changes nothing.
func (p MealPatch) Empty() bool {
	return p.Name == nil && p.Calories == nil && p.Time == nil && p.Photo == nil
}

// Ingredient is a named calorie contribution added to a meal after creation.
type Ingredient struct {
	Name     string `json:"name" validate:"required"`
	Calories int    `json:"calories" validate:"gte=0"`
}

// IngredientsResult is the meal state after ingredients were appended.
type IngredientsResult struct {
	IngredientIDs []string
	Calories      int
}

// DayGroup collects the meals eaten on one calendar day.
type DayGroup struct {
	Date          time.Time // Midnight of the day in the grouping location.
	Meals         []*Meal   // Newest first.
	TotalCalories int
}

// GroupMealsByDay sorts meals newest first and groups them by calendar day in loc.
// The input slice is not modified.
func GroupMealsByDay(meals []*Meal, loc *time.Location) []DayGroup {
	if loc == nil {
		loc = time.Local
	}

	sorted := slices.Clone(meals)
	slices.SortStableFunc(sorted, func(a, b *Meal) int {
		return b.Time.Compare(a.Time)
	})

	var groups []DayGroup
	for _, meal := range sorted {
		local := meal.Time.In(loc)
		day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

		if n := len(groups); n == 0 || !groups[n-1].Date.Equal(day) {
			groups = append(groups, DayGroup{Date: day})
		}
		last := &groups[len(groups)-1]
		last.Meals = append(last.Meals, meal)
		last.TotalCalories += meal.Calories
	}

	return groups
}

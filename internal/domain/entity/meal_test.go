package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupMealsByDay(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("CET", 3600)
	breakfast := &Meal{ID: "a", Calories: 300, Time: time.Date(2024, 3, 1, 7, 0, 0, 0, loc)}
	dinner := &Meal{ID: "b", Calories: 700, Time: time.Date(2024, 3, 1, 19, 0, 0, 0, loc)}
	// 23:30 UTC on Feb 29 is already March 1 in CET.
	lateSnack := &Meal{ID: "c", Calories: 150, Time: time.Date(2024, 2, 29, 23, 30, 0, 0, time.UTC)}
	previous := &Meal{ID: "d", Calories: 500, Time: time.Date(2024, 2, 28, 12, 0, 0, 0, loc)}

	input := []*Meal{breakfast, previous, dinner, lateSnack}
	groups := GroupMealsByDay(input, loc)

	require.Len(t, groups, 2)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, loc), groups[0].Date)
	assert.Equal(t, []*Meal{dinner, breakfast, lateSnack}, groups[0].Meals)
	assert.Equal(t, 1150, groups[0].TotalCalories)

	assert.Equal(t, []*Meal{previous}, groups[1].Meals)
	assert.Equal(t, 500, groups[1].TotalCalories)

	// input order untouched
	assert.Equal(t, []*Meal{breakfast, previous, dinner, lateSnack}, input)
}

func TestGroupMealsByDay_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GroupMealsByDay(nil, time.UTC))
}

func TestSession_Expired(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	tests := []struct {
		name    string
		session *Session
		want    bool
	}{
		{name: "nil session", session: nil, want: false},
		{name: "opaque token", session: &Session{Token: "T"}, want: false},
		{name: "expired", session: &Session{Token: "T", ExpiresAt: &past}, want: true},
		{name: "expires exactly now", session: &Session{Token: "T", ExpiresAt: &now}, want: true},
		{name: "still valid", session: &Session{Token: "T", ExpiresAt: &future}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.session.Expired(now))
		})
	}
}

func TestMealPatch_Empty(t *testing.T) {
	t.Parallel()

	name := "Soup"
	assert.True(t, MealPatch{}.Empty())
	assert.False(t, MealPatch{Name: &name}.Empty())
}

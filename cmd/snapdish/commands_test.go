package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngredientList_Set(t *testing.T) {
	t.Parallel()

	var items ingredientList
	require.NoError(t, items.Set("Croutons=80"))
	require.NoError(t, items.Set(" Feta = 120.9"))

	assert.Equal(t, ingredientList{
		{Name: "Croutons", Calories: 80},
		{Name: "Feta", Calories: 120},
	}, items)
	assert.Equal(t, "Croutons=80,Feta=120", items.String())

	assert.Error(t, items.Set("Olives"))
	assert.Error(t, items.Set("Olives=many"))
	assert.Error(t, items.Set("Olives=1e12"))
}

func TestCommands_HaveHelp(t *testing.T) {
	t.Parallel()

	require.Len(t, commandOrder, len(commands))
	for _, name := range commandOrder {
		assert.Contains(t, commands, name)
		assert.NotEmpty(t, commandHelp[name], name)
	}
}

func TestOrDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "x", orDefault("", "x"))
	assert.Equal(t, "y", orDefault("y", "x"))
}

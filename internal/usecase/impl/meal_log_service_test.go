package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"snapdish/internal/domain/entity"
	domainerrors "snapdish/internal/domain/errors"
	"snapdish/internal/infra/persistence/memory"
	"snapdish/internal/usecase"
	"snapdish/internal/validation"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMealLogService() *mealLogService {
	meals := memory.NewMealRepository()
	srv := NewMealLogService(
		meals,
		memory.NewTransactionManager(meals, memory.NewIngredientRepository()),
		validation.New(),
		discardLogger(),
	).(*mealLogService)

	seq := 0
	srv.newID = func() string {
		seq++

		return fmt.Sprintf("id-%d", seq)
	}

	return srv
}

func TestMealLogService_CreateAndList(t *testing.T) {
	t.Parallel()

	srv := newTestMealLogService()
	ctx := context.Background()
	eaten := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	created, err := srv.Create(ctx, "u-1", &usecase.NewMealInput{Name: "Salad", Calories: 250, Time: eaten, Image: testPhoto})
	require.NoError(t, err)
	assert.Equal(t, "id-1", created.ID)
	assert.Equal(t, []string{}, created.IngredientIDs)

	_, err = srv.Create(ctx, "u-2", &usecase.NewMealInput{Name: "Soup", Calories: 100, Time: eaten})
	require.NoError(t, err)

	meals, err := srv.List(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, "Salad", meals[0].Name)
	assert.Equal(t, testPhoto, meals[0].Image)
	assert.True(t, eaten.Equal(meals[0].Time))
}

func TestMealLogService_Create_DefaultsTime(t *testing.T) {
	t.Parallel()

	srv := newTestMealLogService()
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	srv.now = func() time.Time { return now }

	created, err := srv.Create(context.Background(), "u-1", &usecase.NewMealInput{Name: "Tea"})
	require.NoError(t, err)
	assert.Equal(t, now, created.Time)
}

func TestMealLogService_Create_Validation(t *testing.T) {
	t.Parallel()

	srv := newTestMealLogService()

	_, err := srv.Create(context.Background(), "u-1", &usecase.NewMealInput{Calories: 10})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = srv.Create(context.Background(), "u-1", &usecase.NewMealInput{Name: "Salad", Calories: -1})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMealLogService_Update(t *testing.T) {
	t.Parallel()

	srv := newTestMealLogService()
	ctx := context.Background()

	created, err := srv.Create(ctx, "u-1", &usecase.NewMealInput{Name: "Salad", Calories: 250, Image: testPhoto})
	require.NoError(t, err)

	name := "Greek salad"
	err = srv.Update(ctx, "u-1", created.ID, &usecase.MealRevision{Name: &name})
	require.NoError(t, err)

	meals, err := srv.List(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "Greek salad", meals[0].Name)
	assert.Equal(t, 250, meals[0].Calories)
	assert.Equal(t, testPhoto, meals[0].Image)

	err = srv.Update(ctx, "u-2", created.ID, &usecase.MealRevision{Name: &name})
	assert.True(t, errors.Is(err, domainerrors.ErrMealForbidden))
	assert.Equal(t, 403, domainerrors.StatusCode(err))

	err = srv.Update(ctx, "u-1", "missing", &usecase.MealRevision{Name: &name})
	assert.True(t, errors.Is(err, domainerrors.ErrMealNotFound))
	assert.Equal(t, 404, domainerrors.StatusCode(err))
}

func TestMealLogService_AddIngredients(t *testing.T) {
	t.Parallel()

	srv := newTestMealLogService()
	ctx := context.Background()

	created, err := srv.Create(ctx, "u-1", &usecase.NewMealInput{Name: "Salad", Calories: 250})
	require.NoError(t, err)

	result, err := srv.AddIngredients(ctx, "u-1", created.ID, []entity.Ingredient{
		{Name: "Croutons", Calories: 80},
		{Name: "Feta", Calories: 120},
	})
	require.NoError(t, err)
	assert.Equal(t, &entity.IngredientsResult{IngredientIDs: []string{"id-2", "id-3"}, Calories: 450}, result)

	_, err = srv.AddIngredients(ctx, "u-1", created.ID, []entity.Ingredient{{Name: "", Calories: 10}})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = srv.AddIngredients(ctx, "u-2", created.ID, []entity.Ingredient{{Name: "Olives", Calories: 40}})
	assert.True(t, errors.Is(err, domainerrors.ErrMealForbidden))
}

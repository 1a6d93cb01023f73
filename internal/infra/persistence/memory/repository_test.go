package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"snapdish/internal/domain/entity"
	"snapdish/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewUserRepository()

	account := &entity.Account{ID: "u-1", Email: "A@b.com", PasswordHash: "h", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, account))

	err := repo.Create(ctx, &entity.Account{ID: "u-2", Email: "a@B.com"})
	assert.ErrorIs(t, err, repository.ErrUserExists)

	found, err := repo.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", found.ID)

	found.Email = "mutated@b.com"
	again, err := repo.FindByID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "A@b.com", again.Email)

	_, err = repo.FindByID(ctx, "u-2")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	_, err = repo.FindByEmail(ctx, "nobody@b.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestMealRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMealRepository()

	require.NoError(t, repo.Create(ctx, &entity.MealDocument{ID: "m-1", UserID: "u-1", Name: "Salad"}))
	require.NoError(t, repo.Create(ctx, &entity.MealDocument{ID: "m-2", UserID: "u-2", Name: "Soup"}))
	require.NoError(t, repo.Create(ctx, &entity.MealDocument{ID: "m-3", UserID: "u-1", Name: "Tea"}))

	meals, err := repo.FindByUser(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, meals, 2)
	assert.Equal(t, "m-1", meals[0].ID)
	assert.Equal(t, "m-3", meals[1].ID)

	meal, err := repo.FindByID(ctx, "m-1")
	require.NoError(t, err)
	meal.Calories = 300
	meal.IngredientIDs = append(meal.IngredientIDs, "i-1")
	require.NoError(t, repo.Update(ctx, meal))

	updated, err := repo.FindByID(ctx, "m-1")
	require.NoError(t, err)
	assert.Equal(t, 300, updated.Calories)
	assert.Equal(t, []string{"i-1"}, updated.IngredientIDs)

	assert.ErrorIs(t, repo.Update(ctx, &entity.MealDocument{ID: "missing"}), repository.ErrMealNotFound)
	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrMealNotFound)

	none, err := repo.FindByUser(ctx, "u-3")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestIngredientRepository(t *testing.T) {
	t.Parallel()

	repo := NewIngredientRepository()
	require.NoError(t, repo.Create(context.Background(), &entity.IngredientRecord{ID: "i-1", MealID: "m-1", Name: "Bread", Calories: 80}))
}

func TestTransactionManager_Serializes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	meals := NewMealRepository()
	tm := NewTransactionManager(meals, NewIngredientRepository())
	require.NoError(t, meals.Create(ctx, &entity.MealDocument{ID: "m-1", UserID: "u-1"}))

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
				meal, err := f.MealRepository().FindByID(ctx, "m-1")
				if err != nil {
					return err
				}
				meal.Calories++

				return f.MealRepository().Update(ctx, meal)
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	meal, err := meals.FindByID(ctx, "m-1")
	require.NoError(t, err)
	assert.Equal(t, 50, meal.Calories)
}

func TestTransactionManager_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := NewTransactionManager(NewMealRepository(), NewIngredientRepository()).
		Execute(ctx, func(repository.RepositoryFactory) error {
			called = true

			return nil
		})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

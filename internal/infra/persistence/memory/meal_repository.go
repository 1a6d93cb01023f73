package memory

import (
	"context"
	"slices"
	"sync"

	"snapdish/internal/domain/entity"
	"snapdish/internal/domain/repository"
)

type mealRepository struct {
	mu    sync.RWMutex
	meals map[string]*entity.MealDocument
	order []string
}

// NewMealRepository returns an empty meal repository.
func NewMealRepository() repository.MealRepository {
	return &mealRepository{meals: make(map[string]*entity.MealDocument)}
}

func cloneMeal(meal *entity.MealDocument) *entity.MealDocument {
	clone := *meal
	clone.IngredientIDs = slices.Clone(meal.IngredientIDs)
	clone.Image = slices.Clone(meal.Image)

	return &clone
}

func (repo *mealRepository) Create(_ context.Context, meal *entity.MealDocument) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.meals[meal.ID] = cloneMeal(meal)
	repo.order = append(repo.order, meal.ID)

	return nil
}

func (repo *mealRepository) FindByID(_ context.Context, id string) (*entity.MealDocument, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	meal, ok := repo.meals[id]
	if !ok {
		return nil, repository.ErrMealNotFound
	}

	return cloneMeal(meal), nil
}

func (repo *mealRepository) FindByUser(_ context.Context, userID string) ([]*entity.MealDocument, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var meals []*entity.MealDocument
	for _, id := range repo.order {
		if meal := repo.meals[id]; meal.UserID == userID {
			meals = append(meals, cloneMeal(meal))
		}
	}

	return meals, nil
}

func (repo *mealRepository) Update(_ context.Context, meal *entity.MealDocument) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.meals[meal.ID]; !ok {
		return repository.ErrMealNotFound
	}
	repo.meals[meal.ID] = cloneMeal(meal)

	return nil
}

type ingredientRepository struct {
	mu          sync.Mutex
	ingredients map[string]*entity.IngredientRecord
}

// NewIngredientRepository returns an empty ingredient repository.
func NewIngredientRepository() repository.IngredientRepository {
	return &ingredientRepository{ingredients: make(map[string]*entity.IngredientRecord)}
}

func (repo *ingredientRepository) Create(_ context.Context, ingredient *entity.IngredientRecord) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	clone := *ingredient
	repo.ingredients[ingredient.ID] = &clone

	return nil
}

package postgres

import (
	"context"
	"slices"

	"snapdish/internal/domain/entity"
	"snapdish/internal/domain/repository"
	"snapdish/internal/errors"
	"snapdish/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type mealRepository struct {
	db       *gorm.DB
	lockRows bool
}

// NewMealRepository creates a meal repository backed by PostgreSQL.
func NewMealRepository(db *gorm.DB) repository.MealRepository {
	return &mealRepository{db: db}
}

func (repo *mealRepository) Create(ctx context.Context, meal *entity.MealDocument) error {
	err := repo.db.WithContext(ctx).Omit("seq").Create(fromMealEntity(meal)).Error
	if isCheckConstraintViolation(err) {
		return errors.Wrapf(err, "meal %s violates a constraint", meal.ID)
	}

	return errors.Wrap(err, "create meal")
}

func (repo *mealRepository) FindByID(ctx context.Context, id string) (*entity.MealDocument, error) {
	query := repo.db.WithContext(ctx)
	if repo.lockRows {
		query = query.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	var meal model.MealModel
	if err := query.Where("id = ?", id).Take(&meal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMealNotFound
		}

		return nil, errors.Wrap(err, "query meal")
	}

	return toMealEntity(&meal), nil
}

func (repo *mealRepository) FindByUser(ctx context.Context, userID string) ([]*entity.MealDocument, error) {
	var rows []*model.MealModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("seq").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "query meals")
	}

	meals := make([]*entity.MealDocument, 0, len(rows))
	for _, row := range rows {
		meals = append(meals, toMealEntity(row))
	}

	return meals, nil
}

func (repo *mealRepository) Update(ctx context.Context, meal *entity.MealDocument) error {
	row := fromMealEntity(meal)
	result := repo.db.WithContext(ctx).
		Model(&model.MealModel{}).
		Where("id = ?", meal.ID).
		Select("name", "ingredient_ids", "calories", "image", "eaten_at", "updated_at").
		Updates(row)
	if result.Error != nil {
		return errors.Wrap(result.Error, "update meal")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMealNotFound
	}

	return nil
}

type ingredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository creates an ingredient repository backed by PostgreSQL.
func NewIngredientRepository(db *gorm.DB) repository.IngredientRepository {
	return &ingredientRepository{db: db}
}

func (repo *ingredientRepository) Create(ctx context.Context, ingredient *entity.IngredientRecord) error {
	err := repo.db.WithContext(ctx).Create(&model.IngredientModel{
		ID:       ingredient.ID,
		MealID:   ingredient.MealID,
		Name:     ingredient.Name,
		Calories: ingredient.Calories,
	}).Error

	return errors.Wrap(err, "create ingredient")
}

func toMealEntity(m *model.MealModel) *entity.MealDocument {
	ids := []string(m.IngredientIDs)
	if ids == nil {
		ids = []string{}
	}

	return &entity.MealDocument{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		IngredientIDs: slices.Clone(ids),
		Calories:      m.Calories,
		Image:         m.Image,
		Time:          m.EatenAt,
	}
}

func fromMealEntity(meal *entity.MealDocument) *model.MealModel {
	ids := slices.Clone(meal.IngredientIDs)
	if ids == nil {
		ids = []string{}
	}

	return &model.MealModel{
		ID:            meal.ID,
		UserID:        meal.UserID,
		Name:          meal.Name,
		IngredientIDs: datatypes.JSONSlice[string](ids),
		Calories:      meal.Calories,
		Image:         meal.Image,
		EatenAt:       meal.Time,
	}
}

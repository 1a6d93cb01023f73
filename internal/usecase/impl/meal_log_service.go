package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "snapdish/internal/delivery/context"
	"snapdish/internal/domain/entity"
	domainerrors "snapdish/internal/domain/errors"
	"snapdish/internal/domain/repository"
	"snapdish/internal/errors"
	"snapdish/internal/usecase"
	"snapdish/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// mealLogService implements the MealLogUsecase interface.
type mealLogService struct {
	meals        repository.MealRepository
	transactions repository.TransactionManager
	validate     *validator.Validate
	logger      *slog.Logger
	now         func() time.Time
	newID       func() string
}

// NewMealLogService is the constructor for mealLogService.
func NewMealLogService(
	meals repository.MealRepository,
	transactions repository.TransactionManager,
	validate *validator.Validate,
	logger *slog.Logger,
) usecase.MealLogUsecase {
	return &mealLogService{
		meals:        meals,
		transactions: transactions,
		validate:     validate,
		logger:       logger,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

func (srv *mealLogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *mealLogService) Create(ctx context.Context, userID string, input *usecase.NewMealInput) (*entity.MealDocument, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if input.Calories < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("calories must be 0 or greater")
	}

	eaten := input.Time
	if eaten.IsZero() {
		eaten = srv.now()
	}

	meal := &entity.MealDocument{
		ID:            srv.newID(),
		UserID:        userID,
		Name:          input.Name,
		IngredientIDs: []string{},
		Calories:      input.Calories,
		Image:         input.Image,
		Time:          eaten,
	}
	if err := srv.meals.Create(ctx, meal); err != nil {
		return nil, errors.Wrap(err, "create meal")
	}

	srv.log(ctx).Info("Meal created",
		slog.String("mealID", meal.ID),
		slog.String("userID", userID),
		slog.Bool("hasImage", len(meal.Image) > 0),
	)

	return meal, nil
}

func (srv *mealLogService) List(ctx context.Context, userID string) ([]*entity.MealDocument, error) {
	meals, err := srv.meals.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "find meals")
	}

	return meals, nil
}

// owned loads a meal and checks that userID may change it.
func owned(ctx context.Context, meals repository.MealRepository, userID, mealID string) (*entity.MealDocument, error) {
	meal, err := meals.FindByID(ctx, mealID)
	if errors.Is(err, repository.ErrMealNotFound) {
		return nil, domainerrors.ErrMealNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find meal")
	}
	if meal.UserID != userID {
		return nil, domainerrors.ErrMealForbidden
	}

	return meal, nil
}

func (srv *mealLogService) Update(ctx context.Context, userID, mealID string, revision *usecase.MealRevision) error {
	if revision.Calories != nil && *revision.Calories < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("calories must be 0 or greater")
	}

	return srv.transactions.Execute(ctx, func(repos repository.RepositoryFactory) error {
		meal, err := owned(ctx, repos.MealRepository(), userID, mealID)
		if err != nil {
			return err
		}

		if revision.Name != nil {
			meal.Name = *revision.Name
		}
		if revision.Calories != nil {
			meal.Calories = *revision.Calories
		}
		if revision.Time != nil {
			meal.Time = *revision.Time
		}
		if len(revision.Image) > 0 {
			meal.Image = revision.Image
		}

		return errors.Wrap(repos.MealRepository().Update(ctx, meal), "update meal")
	})
}

func (srv *mealLogService) AddIngredients(
	ctx context.Context,
	userID, mealID string,
	ingredients []entity.Ingredient,
) (*entity.IngredientsResult, error) {
	for i := range ingredients {
		if err := validation.Struct(srv.validate, ingredients[i]); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
		}
	}

	var result *entity.IngredientsResult
	err := srv.transactions.Execute(ctx, func(repos repository.RepositoryFactory) error {
		meal, err := owned(ctx, repos.MealRepository(), userID, mealID)
		if err != nil {
			return err
		}

		for _, ingredient := range ingredients {
			record := &entity.IngredientRecord{
				ID:       srv.newID(),
				MealID:   meal.ID,
				Name:     ingredient.Name,
				Calories: ingredient.Calories,
			}
			if err := repos.IngredientRepository().Create(ctx, record); err != nil {
				return errors.Wrap(err, "create ingredient")
			}

			meal.IngredientIDs = append(meal.IngredientIDs, record.ID)
			meal.Calories += ingredient.Calories
		}

		if err := repos.MealRepository().Update(ctx, meal); err != nil {
			return errors.Wrap(err, "update meal")
		}

		result = &entity.IngredientsResult{IngredientIDs: meal.IngredientIDs, Calories: meal.Calories}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Ingredients added", slog.String("mealID", mealID), slog.Int("count", len(ingredients)))

	return result, nil
}

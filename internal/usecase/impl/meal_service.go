package impl

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	deliverycontext "snapdish/internal/delivery/context"
	"snapdish/internal/domain/entity"
	domainerrors "snapdish/internal/domain/errors"
	"snapdish/internal/domain/service"
	"snapdish/internal/errors"
	"snapdish/internal/usecase"
	"snapdish/internal/validation"

	"github.com/go-playground/validator/v10"
)

// mealService implements the MealUsecase interface.
type mealService struct {
	backend  service.BackendAPI
	images   service.ImageStore
	sessions *sessionSource
	validate *validator.Validate
	logger   *slog.Logger
}

// NewMealService is the constructor for mealService.
func NewMealService(
	backend service.BackendAPI,
	images service.ImageStore,
	store service.CredentialStore,
	inspector service.TokenInspector,
	validate *validator.Validate,
	logger *slog.Logger,
) usecase.MealUsecase {
	return &mealService{
		backend:  backend,
		images:   images,
		sessions: &sessionSource{store: store, inspector: inspector, now: time.Now},
		validate: validate,
		logger:   logger,
	}
}

func (srv *mealService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddMeal uploads the photo at upload.Photo with its metadata.
// The returned record points at upload.Photo unless the backend supplied an image.
func (srv *mealService) AddMeal(ctx context.Context, upload *entity.MealUpload) (*entity.Meal, error) {
	session, err := srv.sessions.current(ctx)
	if err != nil {
		return nil, err
	}

	if upload == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("meal upload is required")
	}
	if err := validation.Struct(srv.validate, upload); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	photo, err := srv.images.Read(ctx, upload.Photo)
	if err != nil {
		return nil, domainerrors.ErrMealUploadFailed.WithCause(errors.Wrap(err, "read photo"))
	}

	meal, err := srv.backend.AddMeal(ctx, session.Token, service.MealSubmission{
		Photo:    photo,
		Name:     upload.Name,
		Calories: upload.Calories,
		Time:     upload.Time,
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to add meal", slog.String("name", upload.Name), slog.Any("error", err))

		return nil, err
	}
	if meal.Image == "" {
		meal.Image = upload.Photo
	}

	srv.log(ctx).Info("Added meal", slog.String("meal_id", meal.ID), slog.Int("calories", meal.Calories))

	return meal, nil
}

// ListMeals fetches the user's meals and writes each embedded photo to <id>.jpg.
func (srv *mealService) ListMeals(ctx context.Context) ([]*entity.Meal, error) {
	session, err := srv.sessions.current(ctx)
	if err != nil {
		return nil, err
	}

	remote, err := srv.backend.Meals(ctx, session.Token)
	if err != nil {
		return nil, err
	}

	meals := make([]*entity.Meal, 0, len(remote))
	created := make([]string, 0, len(remote))
	photos := 0
	for _, r := range remote {
		meal := r.Meal
		if len(r.ImageData) > 0 {
			address, isNew, err := srv.materialize(ctx, meal.ID, r.ImageData)
			if err != nil {
				srv.discard(ctx, created)

				return nil, domainerrors.ErrMealFetchFailed.WithCause(errors.Wrapf(err, "materialize photo of meal %s", meal.ID))
			}
			if isNew {
				created = append(created, address)
			}
			photos++
			meal.Image = address
		}
		meals = append(meals, meal)
	}

	srv.log(ctx).Debug("Listed meals", slog.Int("count", len(meals)), slog.Int("photos", photos))

	return meals, nil
}

// materialize writes a meal photo to <id>.jpg. isNew is false when the key was already
// present, since that address was handed to the caller by an earlier listing.
func (srv *mealService) materialize(ctx context.Context, mealID string, data []byte) (address string, isNew bool, err error) {
	key := imageKey(mealID)

	exists, err := srv.images.Exists(ctx, key)
	if err != nil {
		return "", false, err
	}

	address, err = srv.images.Write(ctx, key, data)
	if err != nil {
		return "", false, err
	}

	return address, !exists, nil
}

// discard removes photos created by a failed call. Failures are logged; the original error wins.
func (srv *mealService) discard(ctx context.Context, addresses []string) {
	// the caller's context may already be cancelled
	cleanupCtx := context.WithoutCancel(ctx)
	for _, address := range addresses {
		if err := srv.images.Delete(cleanupCtx, address); err != nil {
			srv.log(ctx).Error("Failed to remove photo after aborted listing", slog.String("address", address), slog.Any("error", err))
		}
	}
}

// UpdateMeal sends the fields set in patch.
func (srv *mealService) UpdateMeal(ctx context.Context, mealID string, patch entity.MealPatch) error {
	session, err := srv.sessions.current(ctx)
	if err != nil {
		return err
	}

	switch {
	case mealID == "":
		return domainerrors.ErrValidationFailed.WithDetails("meal id is required")
	case patch.Empty():
		return domainerrors.ErrValidationFailed.WithDetails("nothing to update")
	case patch.Name != nil && *patch.Name == "":
		return domainerrors.ErrValidationFailed.WithDetails("Name must not be empty")
	case patch.Calories != nil && *patch.Calories < 0:
		return domainerrors.ErrValidationFailed.WithDetails("Calories must be 0 or greater")
	case patch.Time != nil && patch.Time.IsZero():
		return domainerrors.ErrValidationFailed.WithDetails("Time must be set")
	}

	changes := service.MealChanges{
		Name:     patch.Name,
		Calories: patch.Calories,
		Time:     patch.Time,
	}
	if patch.Photo != nil {
		photo, err := srv.images.Read(ctx, *patch.Photo)
		if err != nil {
			return domainerrors.ErrMealUpdateFailed.WithCause(errors.Wrap(err, "read photo"))
		}
		changes.Photo = photo
	}

	if err := srv.backend.UpdateMeal(ctx, session.Token, mealID, changes); err != nil {
		return err
	}

	srv.log(ctx).Info("Updated meal", slog.String("meal_id", mealID))

	return nil
}

// AddIngredients appends ingredients to a meal.
func (srv *mealService) AddIngredients(ctx context.Context, mealID string, ingredients []entity.Ingredient) (*entity.IngredientsResult, error) {
	session, err := srv.sessions.current(ctx)
	if err != nil {
		return nil, err
	}

	if mealID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("meal id is required")
	}
	if len(ingredients) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("at least one ingredient is required")
	}
	for i, ingredient := range ingredients {
		if err := validation.Struct(srv.validate, ingredient); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails(errors.Wrapf(err, "ingredient %d", i).Error())
		}
	}

	result, err := srv.backend.AddIngredients(ctx, session.Token, mealID, ingredients)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Added ingredients", slog.String("meal_id", mealID), slog.Int("calories", result.Calories))

	return result, nil
}

func imageKey(mealID string) string {
	return url.PathEscape(mealID) + ".jpg"
}

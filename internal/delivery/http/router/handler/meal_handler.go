package handler

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"snapdish/config"
	deliverycontext "snapdish/internal/delivery/context"
	"snapdish/internal/delivery/http/response"
	"snapdish/internal/domain/entity"
	domainerrors "snapdish/internal/domain/errors"
	"snapdish/internal/errors"
	"snapdish/internal/usecase"
	"snapdish/internal/util"

	"github.com/labstack/echo/v4"
)

// MealHandler serves the authenticated meal endpoints.
type MealHandler struct {
	meals    usecase.MealLogUsecase
	location *time.Location // Zone for meal times sent without an offset.
	logger   *slog.Logger
}

// NewMealHandler is the constructor for MealHandler.
func NewMealHandler(meals usecase.MealLogUsecase, cfg *config.Config, logger *slog.Logger) (*MealHandler, error) {
	loc, err := cfg.Storage.Location()
	if err != nil {
		return nil, errors.Wrap(err, "meal handler location")
	}

	return &MealHandler{meals: meals, location: loc, logger: logger}, nil
}

type mealCreatedResponse struct {
	Message string `json:"message"`
	MealID  string `json:"mealId"`
}

type mealResponse struct {
	ID            string   `json:"id"`
	UserID        string   `json:"userId"`
	Name          string   `json:"name"`
	IngredientIDs []string `json:"ingredientIds"`
	Calories      int      `json:"calories"`
	Image         *string  `json:"image"` // Base64, null when the meal has no photo.
	Time          string   `json:"time"`
}

type ingredientsResponse struct {
	Message       string   `json:"message"`
	IngredientIDs []string `json:"ingredientIds"`
	Calories      int      `json:"calories"`
}

func currentUser(c echo.Context) (string, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return "", domainerrors.ErrNotAuthenticated
	}

	return userID, nil
}

func (h *MealHandler) parseTime(raw string) (time.Time, error) {
	t, err := util.ParseTimestamp(raw, h.location)
	if err != nil {
		return time.Time{}, domainerrors.ErrValidationFailed.WithDetails("time: " + err.Error())
	}

	return t, nil
}

// AddMeal creates a meal from the name, calories and time query parameters and an optional photo.
func (h *MealHandler) AddMeal(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var (
		input   usecase.NewMealInput
		rawTime string
	)
	err = echo.QueryParamsBinder(c).
		MustString("name", &input.Name).
		MustInt("calories", &input.Calories).
		MustString("time", &rawTime).
		BindError()
	if err != nil {
		return bindingFailure(err)
	}
	if input.Time, err = h.parseTime(rawTime); err != nil {
		return err
	}
	if input.Image, err = readUpload(c); err != nil {
		return err
	}

	meal, err := h.meals.Create(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, mealCreatedResponse{Message: "Meal created successfully", MealID: meal.ID})
}

// ListMeals returns the caller's meals with Base64 photos.
func (h *MealHandler) ListMeals(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	meals, err := h.meals.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	body := make([]mealResponse, 0, len(meals))
	for _, meal := range meals {
		body = append(body, toMealResponse(meal))
	}

	return response.OK(c, body)
}

func toMealResponse(meal *entity.MealDocument) mealResponse {
	out := mealResponse{
		ID:            meal.ID,
		UserID:        meal.UserID,
		Name:          meal.Name,
		IngredientIDs: meal.IngredientIDs,
		Calories:      meal.Calories,
		Time:          meal.Time.Format(time.RFC3339Nano),
	}
	if out.IngredientIDs == nil {
		out.IngredientIDs = []string{}
	}
	if len(meal.Image) > 0 {
		encoded := base64.StdEncoding.EncodeToString(meal.Image)
		out.Image = &encoded
	}

	return out
}

// UpdateMeal replaces the fields present in the query and the photo when one is uploaded.
func (h *MealHandler) UpdateMeal(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var revision usecase.MealRevision
	params := c.QueryParams()
	if params.Has("name") {
		name := params.Get("name")
		revision.Name = &name
	}
	if params.Has("calories") {
		calories, err := strconv.Atoi(params.Get("calories"))
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("calories: must be an integer")
		}
		revision.Calories = &calories
	}
	if params.Has("time") {
		eaten, err := h.parseTime(params.Get("time"))
		if err != nil {
			return err
		}
		revision.Time = &eaten
	}
	if revision.Image, err = readUpload(c); err != nil {
		return err
	}

	if err := h.meals.Update(c.Request().Context(), userID, c.Param("id"), &revision); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Meal updated successfully")
}

// AddIngredients appends the JSON list of ingredients to a meal.
func (h *MealHandler) AddIngredients(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var ingredients []entity.Ingredient
	if err := c.Bind(&ingredients); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("body: expected a list of ingredients")
	}

	result, err := h.meals.AddIngredients(c.Request().Context(), userID, c.Param("id"), ingredients)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, ingredientsResponse{
		Message:       "Ingredients added successfully",
		IngredientIDs: result.IngredientIDs,
		Calories:      result.Calories,
	})
}

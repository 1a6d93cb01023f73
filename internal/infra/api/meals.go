package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"snapdish/internal/domain/entity"
	domainerrors "snapdish/internal/domain/errors"
	"snapdish/internal/domain/service"
	"snapdish/internal/errors"
	"snapdish/internal/util"
)

// AddMeal uploads a photo with its metadata.
// When the backend only acknowledges the upload, the record is built from the acknowledged ID and the submitted fields.
func (c *Client) AddMeal(ctx context.Context, token string, meal service.MealSubmission) (*entity.Meal, error) {
	form, contentType, err := photoForm(meal.Photo)
	if err != nil {
		return nil, domainerrors.ErrMealUploadFailed.WithCause(err)
	}

	query := url.Values{}
	query.Set("name", meal.Name)
	query.Set("calories", strconv.Itoa(meal.Calories))
	query.Set("time", util.FormatTimestamp(meal.Time))

	body, err := c.do(ctx, request{
		kind:        domainerrors.ErrMealUploadFailed,
		method:      http.MethodPost,
		path:        "/add-meal",
		query:       query,
		token:       token,
		body:        form,
		contentType: contentType,
	})
	if err != nil {
		return nil, err
	}

	created, full, err := decodeMealCreated(body, c.location)
	if err != nil {
		return nil, domainerrors.ErrMealUploadFailed.WithCause(err)
	}
	if !full {
		created.Name = meal.Name
		created.Calories = meal.Calories
		created.Time = meal.Time
		created.IngredientIDs = []string{}
	}

	return created, nil
}

// Meals lists the caller's meals with their photos still encoded in ImageData.
func (c *Client) Meals(ctx context.Context, token string) ([]*service.RemoteMeal, error) {
	body, err := c.do(ctx, request{
		kind:   domainerrors.ErrMealFetchFailed,
		method: http.MethodGet,
		path:   "/meals",
		token:  token,
	})
	if err != nil {
		return nil, err
	}

	meals, err := decodeMealList(body, c.location)
	if err != nil {
		return nil, domainerrors.ErrMealFetchFailed.WithCause(err)
	}

	return meals, nil
}

// UpdateMeal sends only the fields set in changes.
func (c *Client) UpdateMeal(ctx context.Context, token, mealID string, changes service.MealChanges) error {
	query := url.Values{}
	if changes.Name != nil {
		query.Set("name", *changes.Name)
	}
	if changes.Calories != nil {
		query.Set("calories", strconv.Itoa(*changes.Calories))
	}
	if changes.Time != nil {
		query.Set("time", util.FormatTimestamp(*changes.Time))
	}

	req := request{
		kind:   domainerrors.ErrMealUpdateFailed,
		method: http.MethodPut,
		path:   "/update-meal/" + url.PathEscape(mealID),
		query:  query,
		token:  token,
	}
	if changes.Photo != nil {
		form, contentType, err := photoForm(changes.Photo)
		if err != nil {
			return domainerrors.ErrMealUpdateFailed.WithCause(err)
		}
		req.body = form
		req.contentType = contentType
	}

	_, err := c.do(ctx, req)

	return err
}

// AddIngredients appends ingredients to a meal and returns the meal's new totals.
func (c *Client) AddIngredients(ctx context.Context, token, mealID string, ingredients []entity.Ingredient) (*entity.IngredientsResult, error) {
	payload, err := json.Marshal(ingredients)
	if err != nil {
		return nil, domainerrors.ErrIngredientsFailed.WithCause(errors.WithStack(err))
	}

	body, err := c.do(ctx, request{
		kind:        domainerrors.ErrIngredientsFailed,
		method:      http.MethodPost,
		path:        "/add-ingredients/" + url.PathEscape(mealID),
		token:       token,
		body:        bytes.NewReader(payload),
		contentType: "application/json",
	})
	if err != nil {
		return nil, err
	}

	result, err := decodeIngredientsResult(body)
	if err != nil {
		return nil, domainerrors.ErrIngredientsFailed.WithCause(err)
	}

	return result, nil
}

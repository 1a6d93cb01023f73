package service

import (
	"context"

	"snapdish/internal/errors"
)

// ErrNotAnImage is returned by DishClassifier.Predict for payloads that are not images.
var ErrNotAnImage = errors.New("payload is not an image")

// Prediction is the raw output of a dish classifier.
type Prediction struct {
	Class       string
	Probability float64
	Calories    float64 // Unrounded estimate.
}

// DishClassifier recognizes dishes on the development backend.
type DishClassifier interface {
	Predict(ctx context.Context, image []byte) (*Prediction, error)
}

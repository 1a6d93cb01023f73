package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "snapdish/internal/delivery/context"
	domainerrors "snapdish/internal/domain/errors"
	"snapdish/internal/domain/service"
	"snapdish/internal/errors"

	"github.com/labstack/echo/v4"
)

// ClassifyHandler serves the anonymous dish classifier.
type ClassifyHandler struct {
	classifier service.DishClassifier
	logger     *slog.Logger
}

// NewClassifyHandler is the constructor for ClassifyHandler.
func NewClassifyHandler(classifier service.DishClassifier, logger *slog.Logger) *ClassifyHandler {
	return &ClassifyHandler{classifier: classifier, logger: logger}
}

type classifyResponse struct {
	PredictedClass    string  `json:"predicted_class"`
	Probability       float64 `json:"probability"`
	EstimatedCalories float64 `json:"estimated_calories"`
}

// Classify predicts the dish and its calories from the uploaded photo.
func (h *ClassifyHandler) Classify(c echo.Context) error {
	image, err := readUpload(c)
	if err != nil {
		return err
	}
	if image == nil {
		return domainerrors.ErrValidationFailed.WithDetails("file is required")
	}

	prediction, err := h.classifier.Predict(c.Request().Context(), image)
	if errors.Is(err, service.ErrNotAnImage) {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Warn("Rejected classification payload", slog.Any("error", err))

		return domainerrors.ErrUnrecognizedImage
	}
	if err != nil {
		return errors.Wrap(err, "predict")
	}

	return c.JSON(http.StatusOK, classifyResponse{
		PredictedClass:    prediction.Class,
		Probability:       prediction.Probability,
		EstimatedCalories: prediction.Calories,
	})
}

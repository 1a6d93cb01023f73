package impl

import (
	"context"
	"log/slog"

	deliverycontext "snapdish/internal/delivery/context"
	"snapdish/internal/domain/entity"
	domainerrors "snapdish/internal/domain/errors"
	"snapdish/internal/domain/service"
	"snapdish/internal/errors"
	"snapdish/internal/usecase"
)

// classificationService implements the ClassificationUsecase interface.
type classificationService struct {
	backend service.BackendAPI
	images  service.ImageStore
	logger  *slog.Logger
}

// NewClassificationService is the constructor for classificationService.
func NewClassificationService(backend service.BackendAPI, images service.ImageStore, logger *slog.Logger) usecase.ClassificationUsecase {
	return &classificationService{
		backend: backend,
		images:  images,
		logger:  logger,
	}
}

// Classify reads the photo at photoAddress and sends it to the classifier.
func (srv *classificationService) Classify(ctx context.Context, photoAddress string) (*entity.ClassificationResult, error) {
	if photoAddress == "" {
		return nil, domainerrors.ErrClassificationFailed.WithDetails("photo address is required")
	}

	photo, err := srv.images.Read(ctx, photoAddress)
	if err != nil {
		return nil, domainerrors.ErrClassificationFailed.WithCause(errors.Wrap(err, "read photo"))
	}

	result, err := srv.backend.Classify(ctx, photo)
	if err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Classified photo",
		slog.String("predicted_class", result.PredictedClass),
		slog.Int("estimated_calories", result.EstimatedCalories),
	)

	return result, nil
}

package impl

import (
	"context"
	"log/slog"

	deliverycontext "snapdish/internal/delivery/context"
	domainerrors "snapdish/internal/domain/errors"
	"snapdish/internal/domain/service"
	"snapdish/internal/errors"
	"snapdish/internal/usecase"

	"github.com/google/uuid"
)

// captureDir groups photos not yet attached to a saved meal.
const captureDir = "captures/"

type photoService struct {
	images service.ImageStore
	logger *slog.Logger
	newID  func() string
}

func NewPhotoService(images service.ImageStore, logger *slog.Logger) usecase.PhotoUsecase {
	return &photoService{
		images: images,
		logger: logger,
		newID:  uuid.NewString,
	}
}

// Capture stores data under a fresh key in the capture directory.
func (srv *photoService) Capture(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", domainerrors.ErrValidationFailed.WithDetails("photo is empty")
	}

	address, err := srv.images.Write(ctx, captureDir+srv.newID()+".jpg", data)
	if err != nil {
		return "", errors.Wrap(err, "failed to store captured photo")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Captured photo", slog.String("address", address))

	return address, nil
}

// Discard removes a captured photo.
func (srv *photoService) Discard(ctx context.Context, address string) error {
	if address == "" {
		return domainerrors.ErrValidationFailed.WithDetails("photo address is required")
	}

	if err := srv.images.Delete(ctx, address); err != nil {
		return errors.Wrap(err, "failed to discard photo")
	}

	return nil
}

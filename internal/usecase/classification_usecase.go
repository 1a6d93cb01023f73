package usecase

import (
	"context"

	"snapdish/internal/domain/entity"
)

// ClassificationUsecase asks the backend what a photographed dish is.
type ClassificationUsecase interface {
	Classify(ctx context.Context, photoAddress string) (*entity.ClassificationResult, error)
}

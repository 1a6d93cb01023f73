package usecase

import "context"

// PhotoUsecase manages photos captured for a meal that is not yet saved.
type PhotoUsecase interface {
	// Capture stores image bytes and returns their local address.
	Capture(ctx context.Context, data []byte) (string, error)

	// Discard deletes a captured photo, e.g. when meal creation is cancelled.
	Discard(ctx context.Context, address string) error
}

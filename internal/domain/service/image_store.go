package service

import (
	"context"

	"snapdish/internal/errors"
)

// ErrImageNotFound is returned when an address has no stored image.
var ErrImageNotFound = errors.New("image not found")

// ImageStore materializes images as locally addressable resources.
// Addresses are filesystem paths owned by the caller once returned.
type ImageStore interface {
	// Write stores data under key and returns its local address.
	Write(ctx context.Context, key string, data []byte) (string, error)

	// Exists reports whether an image is stored under key.
	Exists(ctx context.Context, key string) (bool, error)

	// Read returns the bytes stored at address.
	Read(ctx context.Context, address string) ([]byte, error)

	// Delete removes the image at address. Deleting a missing image is not an error.
	Delete(ctx context.Context, address string) error
}

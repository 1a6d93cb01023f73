package impl

import (
	"context"
	"testing"

	domainerrors "snapdish/internal/domain/errors"
	"snapdish/internal/domain/service"
	"snapdish/internal/infra/imagestore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhotoService_CaptureAndDiscard(t *testing.T) {
	ctx := context.Background()
	images := imagestore.NewMemoryStore()
	t.Cleanup(func() { _ = images.Close() })

	srv := NewPhotoService(images, discardLogger()).(*photoService)
	srv.newID = func() string { return "fixed" }

	address, err := srv.Capture(ctx, testPhoto)
	require.NoError(t, err)
	assert.Equal(t, "/snapdish-memory/captures/fixed.jpg", address)

	data, err := images.Read(ctx, address)
	require.NoError(t, err)
	assert.Equal(t, testPhoto, data)

	require.NoError(t, srv.Discard(ctx, address))
	_, err = images.Read(ctx, address)
	assert.ErrorIs(t, err, service.ErrImageNotFound)
}

func TestPhotoService_RejectsEmptyInput(t *testing.T) {
	ctx := context.Background()
	images := imagestore.NewMemoryStore()
	t.Cleanup(func() { _ = images.Close() })
	srv := NewPhotoService(images, discardLogger())

	_, err := srv.Capture(ctx, nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	err = srv.Discard(ctx, "")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

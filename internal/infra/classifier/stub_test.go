package classifier

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"testing"

	"snapdish/internal/domain/service"
	"snapdish/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	jpegBytes = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}
)

func newTestStub() *stubClassifier {
	return &stubClassifier{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func TestStub_Deterministic(t *testing.T) {
	t.Parallel()

	stub := newTestStub()

	first, err := stub.Predict(context.Background(), jpegBytes)
	require.NoError(t, err)
	second, err := stub.Predict(context.Background(), slices.Clone(jpegBytes))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, dishes, first.Class)
	assert.GreaterOrEqual(t, first.Probability, 0.5)
	assert.Less(t, first.Probability, 1.0)
	assert.GreaterOrEqual(t, first.Calories, 50.0)
	assert.Less(t, first.Calories, 950.0)
}

func TestStub_AcceptsPNG(t *testing.T) {
	t.Parallel()

	_, err := newTestStub().Predict(context.Background(), pngHeader)
	assert.NoError(t, err)
}

func TestStub_RejectsNonImages(t *testing.T) {
	t.Parallel()

	stub := newTestStub()

	for _, payload := range [][]byte{nil, []byte("hello, world"), []byte(`{"name":"Salad"}`)} {
		_, err := stub.Predict(context.Background(), payload)
		assert.True(t, errors.Is(err, service.ErrNotAnImage), "payload %q", payload)
	}
}

func TestStub_HonoursCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestStub().Predict(ctx, jpegBytes)
	assert.ErrorIs(t, err, context.Canceled)
}

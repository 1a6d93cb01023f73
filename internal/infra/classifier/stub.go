// Package classifier provides the dish classifier used by the development backend.
package classifier

import (
	"context"
	"encoding/binary"
	"log/slog"
	"net/http"
	"strings"

	"snapdish/internal/domain/service"
	"snapdish/internal/errors"
	"snapdish/internal/util"

	"github.com/google/uuid"
)

var dishes = []string{
	"apple_pie",
	"caesar_salad",
	"chicken_curry",
	"dumplings",
	"french_fries",
	"hamburger",
	"omelette",
	"pancakes",
	"pizza",
	"ramen",
	"spaghetti_bolognese",
	"sushi",
}

// stubClassifier derives a stable prediction from the image digest.
// The same bytes always yield the same dish, probability and calories.
type stubClassifier struct {
	logger *slog.Logger
}

// NewStub returns the deterministic classifier.
func NewStub(logger *slog.Logger) service.DishClassifier {
	return &stubClassifier{logger: logger}
}

func (s *stubClassifier) Predict(ctx context.Context, image []byte) (*service.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	if len(image) == 0 {
		return nil, errors.Wrap(service.ErrNotAnImage, "empty payload")
	}
	if contentType := http.DetectContentType(image); !strings.HasPrefix(contentType, "image/") {
		return nil, errors.Wrapf(service.ErrNotAnImage, "detected %s", contentType)
	}

	seed := uuid.NewSHA1(uuid.NameSpaceOID, image)
	pick := binary.BigEndian.Uint64(seed[:8])
	spread := binary.BigEndian.Uint64(seed[8:])

	prediction := &service.Prediction{
		Class:       dishes[pick%uint64(len(dishes))],
		Probability: 0.5 + float64(spread%4900)/10000,
		Calories:    50 + float64(spread%90000)/100,
	}

	s.logger.Debug("Classified image",
		slog.String("class", prediction.Class),
		slog.String("digest", util.Checksum(image)[:12]),
		slog.String("size", util.FormatBytes(int64(len(image)))),
	)

	return prediction, nil
}

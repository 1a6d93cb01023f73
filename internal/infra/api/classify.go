package api

import (
	"context"
	"net/http"

	"snapdish/internal/domain/entity"
	domainerrors "snapdish/internal/domain/errors"
)

// Classify uploads a photo to the classifier. The endpoint is anonymous.
func (c *Client) Classify(ctx context.Context, photo []byte) (*entity.ClassificationResult, error) {
	form, contentType, err := photoForm(photo)
	if err != nil {
		return nil, domainerrors.ErrClassificationFailed.WithCause(err)
	}

	body, err := c.do(ctx, request{
		kind:        domainerrors.ErrClassificationFailed,
		method:      http.MethodPost,
		path:        "/classify",
		body:        form,
		contentType: contentType,
	})
	if err != nil {
		return nil, err
	}

	result, err := decodeClassification(body)
	if err != nil {
		return nil, domainerrors.ErrClassificationFailed.WithCause(err)
	}

	return result, nil
}

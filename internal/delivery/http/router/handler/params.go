package handler

import (
	"fmt"
	"io"
	"net/http"

	domainerrors "snapdish/internal/domain/errors"
	"snapdish/internal/errors"

	"github.com/labstack/echo/v4"
)

// maxUploadBytes caps a single photo upload.
const maxUploadBytes = 32 << 20

// bindingFailure turns a parameter binding error into a 422 validation error.
func bindingFailure(err error) error {
	var bindErr *echo.BindingError
	if errors.As(err, &bindErr) {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("%s: %v", bindErr.Field, bindErr.Message))
	}

	return domainerrors.ErrValidationFailed.WithDetails(err.Error())
}

// readUpload returns the bytes of the multipart "file" field, or nil when the request carries none.
func readUpload(c echo.Context) ([]byte, error) {
	header, err := c.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("file: " + err.Error())
	}

	file, err := header.Open()
	if err != nil {
		return nil, errors.Wrap(err, "open upload")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "read upload")
	}
	if len(data) > maxUploadBytes {
		return nil, echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file is too large")
	}

	return data, nil
}

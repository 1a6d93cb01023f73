package api

import (
	"bytes"
	"mime/multipart"
	"net/textproto"

	"snapdish/internal/errors"
)

const (
	photoField       = "file"
	photoFilename    = "photo.jpg"
	photoContentType = "image/jpeg"
)

// photoForm encodes photo as the single file part the backend expects.
func photoForm(photo []byte) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+photoField+`"; filename="`+photoFilename+`"`)
	header.Set("Content-Type", photoContentType)

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", errors.WithStack(err)
	}
	if _, err := part.Write(photo); err != nil {
		return nil, "", errors.WithStack(err)
	}
	if err := w.Close(); err != nil {
		return nil, "", errors.WithStack(err)
	}

	return &buf, w.FormDataContentType(), nil
}

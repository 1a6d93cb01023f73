package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"snapdish/internal/domain/entity"
	domainerrors "snapdish/internal/domain/errors"
)

// Token exchanges credentials for a bearer token through the OAuth2 password form.
func (c *Client) Token(ctx context.Context, creds entity.Credentials) (string, error) {
	form := url.Values{}
	form.Set("username", creds.Email)
	form.Set("password", creds.Password)

	body, err := c.do(ctx, request{
		kind:        domainerrors.ErrAuthenticationFailed,
		method:      http.MethodPost,
		path:        "/token",
		body:        strings.NewReader(form.Encode()),
		contentType: "application/x-www-form-urlencoded",
	})
	if err != nil {
		return "", err
	}

	token, err := decodeToken(body)
	if err != nil {
		return "", domainerrors.ErrAuthenticationFailed.WithCause(err)
	}

	return token, nil
}

// Register creates an account. The backend reads both fields from the query string.
func (c *Client) Register(ctx context.Context, creds entity.Credentials) (*entity.RegistrationAck, error) {
	query := url.Values{}
	query.Set("email", creds.Email)
	query.Set("password", creds.Password)

	body, err := c.do(ctx, request{
		kind:   domainerrors.ErrRegistrationFailed,
		method: http.MethodPost,
		path:   "/register",
		query:  query,
	})
	if err != nil {
		return nil, err
	}

	ack, err := decodeRegistration(body)
	if err != nil {
		return nil, domainerrors.ErrRegistrationFailed.WithCause(err)
	}

	return ack, nil
}

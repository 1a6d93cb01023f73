// Package api is the HTTP transport to the SnapDish meal backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"snapdish/config"
	deliverycontext "snapdish/internal/delivery/context"
	domainerrors "snapdish/internal/domain/errors"
	"snapdish/internal/errors"

	"go.uber.org/fx"
)

// maxResponseBytes bounds a single response body; meal listings embed Base64 photos.
const maxResponseBytes = 64 << 20

// ClientParams defines the dependencies of the backend client.
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	// HTTPClient overrides the default client built from api.timeout.
	HTTPClient *http.Client `optional:"true"`
}

// Client implements service.BackendAPI over HTTP.
// It never stores credentials: authenticated calls receive the token from the caller.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
	userAgent  string
	location   *time.Location
}

// NewClient creates a backend client from configuration.
func NewClient(params ClientParams) (*Client, error) {
	baseURL, err := url.Parse(strings.TrimRight(params.Config.API.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "parse api.baseUrl")
	}

	loc, err := params.Config.Storage.Location()
	if err != nil {
		return nil, err
	}

	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: params.Config.API.Timeout}
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     params.Logger,
		userAgent:  params.Config.API.UserAgent,
		location:   loc,
	}, nil
}

// request describes one backend call. kind is the error every failure of the call maps to.
type request struct {
	kind        *domainerrors.BaseError
	method      string
	path        string
	query       url.Values
	token       string
	body        io.Reader
	contentType string
}

// do sends req and returns the body of a 2xx response.
// Any other outcome is req.kind carrying either the response status or the transport cause.
func (c *Client) do(ctx context.Context, req request) ([]byte, error) {
	target := c.baseURL.JoinPath(req.path)
	if len(req.query) > 0 {
		target.RawQuery = req.query.Encode()
	}

	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	if requestID == "" {
		requestID = deliverycontext.NewRequestID()
	}
	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger).With(
		slog.String("request_id", requestID),
		slog.String("method", req.method),
		slog.String("path", req.path),
	)

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target.String(), req.body)
	if err != nil {
		return nil, req.kind.WithCause(errors.WithStack(err))
	}
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.Warn("Backend request failed", slog.Any("error", err))

		return nil, req.kind.WithCause(errors.Wrap(err, "send request"))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, req.kind.WithCause(errors.Wrap(err, "read response"))
	}

	logger = logger.With(slog.Int("status", resp.StatusCode), slog.Duration("latency", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Warn("Backend returned non-success status")

		return nil, req.kind.WithStatus(resp.StatusCode, serverText(body))
	}

	logger.Debug("Backend request completed")

	return body, nil
}

// serverText extracts the human-readable part of an error body.
// The backend reports errors as {"detail": "..."}; anything else is returned verbatim.
func serverText(body []byte) string {
	var doc struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(body, &doc); err == nil {
		if s, ok := doc.Detail.(string); ok && s != "" {
			return s
		}
	}

	return string(bytes.TrimSpace(body))
}

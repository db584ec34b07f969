// Package gateway performs authenticated JSON calls against the SIM API.
// Every verb returns either the decoded body or a typed error; an empty
// dataset is a nil error with a "null" or "[]" body, never a swallowed failure.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	simerrors "github.com/jrsteele09/go-sim-client/internal/errors"
	"github.com/jrsteele09/go-sim-client/session"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Client issues requests relative to a base URL through an HTTP client that
// is expected to attach the session token (see session.Manager.HTTPClient).
type Client struct {
	baseURL  string
	http     *http.Client
	logger   zerolog.Logger
	prettify bool
}

// ClientOption defines a function type to modify the Client instance.
type ClientOption func(*Client)

// WithLogger sets the logger
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithPrettify indents JSON payloads in debug logs
func WithPrettify(prettify bool) ClientOption {
	return func(c *Client) {
		c.prettify = prettify
	}
}

// New creates a Client
func New(baseURL string, httpClient *http.Client, options ...ClientOption) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.Wrap(simerrors.ErrInvalidArgument, "[gateway.New] baseURL is required")
	}
	if httpClient == nil {
		return nil, errors.Wrap(simerrors.ErrInvalidArgument, "[gateway.New] http client is required")
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  log.Logger,
	}
	for _, opt := range options {
		opt(c)
	}
	return c, nil
}

// Get fetches path
func (c *Client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, nil, false)
}

// Post sends body as JSON. A nil body is sent as {}.
func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	if body == nil {
		body = struct{}{}
	}
	return c.do(ctx, http.MethodPost, path, body, true)
}

// Delete sends an optional JSON body. A nil body sends no body.
func (c *Client) Delete(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, path, body, body != nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any, hasBody bool) (json.RawMessage, error) {
	var payload []byte
	if hasBody {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return nil, errors.Wrapf(err, "%s %s: encoding body", method, path)
		}
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s: building request", method, path)
	}
	requestID := uuid.NewString()
	req.Header.Set(session.RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger := c.logger.With().Str("method", method).Str("path", path).Str("request_id", requestID).Logger()
	c.logPayload(logger.Debug(), "request", payload).Msg(method)

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Error().Err(err).Msg("request failed")
		if errors.Is(err, simerrors.ErrTransport) {
			return nil, err
		}
		return nil, fmt.Errorf("%s %s: %w: %w", method, path, simerrors.ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error().Err(err).Msg("reading response failed")
		return nil, fmt.Errorf("%s %s: %w: %w", method, path, simerrors.ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &simerrors.StatusError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: data}
		logger.Error().Int("status", resp.StatusCode).Err(statusErr).Msg("unexpected status")
		return nil, statusErr
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	if !json.Valid(data) {
		logger.Error().Int("status", resp.StatusCode).Msg("response is not valid JSON")
		return nil, fmt.Errorf("%s %s: %w", method, path, simerrors.ErrDecode)
	}

	c.logPayload(logger.Debug(), "response", data).Int("status", resp.StatusCode).Msg(method)
	return json.RawMessage(data), nil
}

func (c *Client) logPayload(e *zerolog.Event, field string, payload []byte) *zerolog.Event {
	if e == nil || len(payload) == 0 {
		return e
	}
	if !c.prettify {
		return e.RawJSON(field, payload)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, payload, "", "  "); err != nil {
		return e.Bytes(field, payload)
	}
	return e.Str(field, buf.String())
}

package session

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	simerrors "github.com/jrsteele09/go-sim-client/internal/errors"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
)

// RequestIDHeader carries a per-request correlation id
const RequestIDHeader = "X-Request-ID"

// Transport decorates each outgoing request with the bearer token read from
// Source. The token is read exactly once per request, and only a clone of the
// request is modified. Requests without a stored token go out with no
// Authorization header. A failed token read rejects the request.
type Transport struct {
	Source func(ctx context.Context) oauth2.TokenSource
	Base   http.RoundTripper // Defaults to http.DefaultTransport
	Logger zerolog.Logger
}

var _ http.RoundTripper = (*Transport)(nil)

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	bodyClosed := false
	if req.Body != nil {
		defer func() {
			if !bodyClosed {
				req.Body.Close()
			}
		}()
	}

	tok, err := t.Source(req.Context()).Token()
	if err != nil && !errors.Is(err, simerrors.ErrNotFound) {
		t.Logger.Error().Err(err).Str("method", req.Method).Str("path", req.URL.Path).Msg("failed to set Authorization header")
		return nil, errors.Wrap(err, "[Transport]")
	}

	out := req.Clone(req.Context())
	out.Header.Del("Authorization")
	if tok != nil && tok.AccessToken != "" {
		tok.SetAuthHeader(out)
	}
	if out.Header.Get(RequestIDHeader) == "" {
		out.Header.Set(RequestIDHeader, uuid.NewString())
	}

	bodyClosed = true
	return t.base().RoundTrip(out)
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

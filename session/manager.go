package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/jrsteele09/go-sim-client/endpoints"
	simerrors "github.com/jrsteele09/go-sim-client/internal/errors"
	"github.com/jrsteele09/go-sim-client/tokenstore"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

// Manager owns the authentication token lifecycle: login, persistence,
// attachment to outgoing requests and logout.
type Manager struct {
	baseURL  string
	repo     tokenstore.Repo
	client   *http.Client     // Used for the login call only, never decorated
	logger   zerolog.Logger   // Diagnostics
	cacheTTL time.Duration    // Zero re-reads storage on every request
	nowTime  func() time.Time // nowTime function (injectable for testing)

	mu         sync.RWMutex
	session    Session
	cache      cachedToken
	generation uint64 // Bumped by Login and Logout; stale reads never refill the cache
}

type cachedToken struct {
	value   string
	present bool
	expires time.Time
}

// ManagerOption defines a function type to modify the Manager instance.
type ManagerOption func(*Manager)

// WithHTTPClient sets the client used for the login call and the base
// transport used by HTTPClient.
func WithHTTPClient(client *http.Client) ManagerOption {
	return func(m *Manager) {
		m.client = client
	}
}

// WithLogger sets the logger
func WithLogger(logger zerolog.Logger) ManagerOption {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithTokenCacheTTL caches the token read from storage for ttl. The cache is
// dropped on login and logout, and never outlives the token's own expiry.
func WithTokenCacheTTL(ttl time.Duration) ManagerOption {
	return func(m *Manager) {
		m.cacheTTL = ttl
	}
}

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) ManagerOption {
	return func(m *Manager) {
		m.nowTime = nowFunc
	}
}

// NewManager creates an unauthenticated Manager.
func NewManager(baseURL string, repo tokenstore.Repo, options ...ManagerOption) (*Manager, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.Wrap(simerrors.ErrInvalidArgument, "[NewManager] baseURL is required")
	}
	if repo == nil {
		return nil, errors.Wrap(simerrors.ErrInvalidArgument, "[NewManager] token repo is required")
	}

	m := &Manager{
		baseURL: strings.TrimRight(baseURL, "/"),
		repo:    repo,
		client:  http.DefaultClient,
		logger:  log.Logger,
		nowTime: time.Now,
	}
	for _, opt := range options {
		opt(m)
	}
	return m, nil
}

// BaseURL is the API root every path is relative to
func (m *Manager) BaseURL() string {
	return m.baseURL
}

// Current returns a snapshot of the session
func (m *Manager) Current() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

// Login exchanges credentials for an access token, persists it and marks the
// session authenticated. On any failure the session is left unchanged.
func (m *Manager) Login(ctx context.Context, creds Credentials) (string, error) {
	body, err := json.Marshal(creds)
	if err != nil {
		return "", errors.Wrap(err, "[Login] encoding credentials")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+endpoints.LoginPath, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "[Login] building request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		m.logger.Error().Err(err).Str("email", creds.Email).Msg("authentication failed")
		return "", fmt.Errorf("[Login] %w: %w", simerrors.ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("[Login] reading response: %w: %w", simerrors.ErrTransport, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		m.logger.Error().Int("status", resp.StatusCode).Str("email", creds.Email).Msg("authentication rejected")
		return "", simerrors.Wrapf(simerrors.ErrAuth, "[Login] status %d", resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		m.logger.Error().Int("status", resp.StatusCode).Str("email", creds.Email).Msg("authentication failed")
		return "", simerrors.Wrapf(&simerrors.StatusError{
			Method:     http.MethodPost,
			Path:       endpoints.LoginPath,
			StatusCode: resp.StatusCode,
			Body:       data,
		}, "[Login]")
	}

	var lr loginResponse
	if err := json.Unmarshal(data, &lr); err != nil {
		return "", fmt.Errorf("[Login] %w: %w: %w", simerrors.ErrAuth, simerrors.ErrDecode, err)
	}
	if lr.AccessToken == "" {
		m.logger.Error().Str("email", creds.Email).Msg("no access token in response")
		return "", simerrors.Wrapf(simerrors.ErrNoAccessToken, "[Login]")
	}

	if err := m.repo.Set(ctx, tokenstore.TokenKey, lr.AccessToken); err != nil {
		return "", errors.Wrap(err, "[Login] persisting token")
	}

	claims, _ := peekClaims(lr.AccessToken)

	m.mu.Lock()
	m.session = Session{
		Token:           lr.AccessToken,
		User:            lr.User,
		Email:           creds.Email,
		StoreContext:    creds.StoreName,
		Subject:         claims.Subject,
		ExpiresAt:       claims.ExpiresAt,
		AuthenticatedAt: m.nowTime(),
		Authenticated:   true,
	}
	m.cache = cachedToken{}
	m.generation++
	m.mu.Unlock()

	m.logger.Info().Str("user", lr.User).Str("store", creds.StoreName).Msg("logged in")
	return lr.AccessToken, nil
}

// Logout removes the persisted token and resets the session. Storage errors are
// logged and never returned: logout always succeeds for the caller.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.repo.Delete(ctx, tokenstore.TokenKey); err != nil {
		m.logger.Error().Err(err).Msg("failed to remove persisted token")
	}

	m.mu.Lock()
	m.session = Session{}
	m.cache = cachedToken{}
	m.generation++
	m.mu.Unlock()

	m.logger.Info().Msg("logged out")
}

// AccessToken reads the token from durable storage, or from the cache when a
// TTL is configured. Absent tokens return errors.ErrNotFound.
func (m *Manager) AccessToken(ctx context.Context) (string, error) {
	now := m.nowTime()
	var generation uint64
	if m.cacheTTL > 0 {
		m.mu.RLock()
		c := m.cache
		generation = m.generation
		m.mu.RUnlock()
		if now.Before(c.expires) {
			if !c.present {
				return "", simerrors.ErrNotFound
			}
			return c.value, nil
		}
	}

	value, err := m.repo.Get(ctx, tokenstore.TokenKey)
	present := err == nil && value != ""
	if err != nil && !errors.Is(err, simerrors.ErrNotFound) {
		m.logger.Error().Err(err).Msg("failed to read persisted token")
		return "", fmt.Errorf("%w: %w", simerrors.ErrTokenUnavailable, err)
	}

	if m.cacheTTL > 0 {
		expires := now.Add(m.cacheTTL)
		if claims, ok := peekClaims(value); present && ok && !claims.ExpiresAt.IsZero() && claims.ExpiresAt.Before(expires) {
			expires = claims.ExpiresAt
		}
		m.mu.Lock()
		if m.generation == generation {
			m.cache = cachedToken{value: value, present: present, expires: expires}
		}
		m.mu.Unlock()
	}

	if !present {
		return "", simerrors.ErrNotFound
	}
	return value, nil
}

// TokenSource adapts AccessToken to an oauth2.TokenSource bound to ctx.
func (m *Manager) TokenSource(ctx context.Context) oauth2.TokenSource {
	return tokenSource{ctx: ctx, m: m}
}

type tokenSource struct {
	ctx context.Context
	m   *Manager
}

func (ts tokenSource) Token() (*oauth2.Token, error) {
	value, err := ts.m.AccessToken(ts.ctx)
	if err != nil {
		return nil, err
	}
	tok := &oauth2.Token{AccessToken: value, TokenType: "Bearer"}
	if claims, ok := peekClaims(value); ok {
		tok.Expiry = claims.ExpiresAt
	}
	return tok, nil
}

// HTTPClient returns a client whose every request passes through the bearer
// Transport. A zero timeout blocks until the transport resolves.
func (m *Manager) HTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &Transport{
			Source: m.TokenSource,
			Base:   m.client.Transport,
			Logger: m.logger,
		},
		Timeout: timeout,
	}
}

package session_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	simerrors "github.com/jrsteele09/go-sim-client/internal/errors"
	"github.com/jrsteele09/go-sim-client/session"
	"github.com/jrsteele09/go-sim-client/tokenstore"
	"github.com/jrsteele09/go-sim-client/tokenstore/repofake"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const (
	testEmail    = "jane.doe@example.com"
	testPassword = "password123"
	testStore    = "Ambience Mall"
	testToken    = "tok-123"
	testUser     = "Jane Doe"
)

// backend is a fake SIM API that records the Authorization header of every
// non-login request.
type backend struct {
	server *httptest.Server

	mu           sync.Mutex
	loginStatus  int
	loginBody    string
	lastLogin    session.Credentials
	authHeaders  []string
	requestIDs   []string
	protectedHit int // guarded by mu
}

func newBackend(t *testing.T) *backend {
	t.Helper()
	b := &backend{
		loginStatus: http.StatusOK,
		loginBody:   `{"accessToken":"` + testToken + `","user":"` + testUser + `"}`,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		_ = json.NewDecoder(r.Body).Decode(&b.lastLogin)
		w.WriteHeader(b.loginStatus)
		_, _ = w.Write([]byte(b.loginBody))
	})
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.protectedHit++
		b.authHeaders = append(b.authHeaders, r.Header.Get("Authorization"))
		b.requestIDs = append(b.requestIDs, r.Header.Get(session.RequestIDHeader))
		_, _ = w.Write([]byte(`{}`))
	})
	b.server = httptest.NewServer(mux)
	t.Cleanup(b.server.Close)
	return b
}

func (b *backend) setLogin(status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.loginStatus = status
	b.loginBody = body
}

func (b *backend) lastAuth() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.authHeaders) == 0 {
		return "<none>"
	}
	return b.authHeaders[len(b.authHeaders)-1]
}

// testFixture holds all test dependencies
type testFixture struct {
	backend *backend
	repo    *repofake.FakeRepo
	manager *session.Manager
	client  *http.Client
}

func setupTestFixture(t *testing.T, options ...session.ManagerOption) *testFixture {
	t.Helper()

	b := newBackend(t)
	repo := repofake.NewFakeRepo()
	options = append([]session.ManagerOption{session.WithLogger(zerolog.Nop())}, options...)
	m, err := session.NewManager(b.server.URL, repo, options...)
	require.NoError(t, err)

	return &testFixture{
		backend: b,
		repo:    repo,
		manager: m,
		client:  m.HTTPClient(0),
	}
}

func (f *testFixture) get(t *testing.T) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, f.backend.server.URL+"/x", nil)
	require.NoError(t, err)
	resp, err := f.client.Do(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
}

func (f *testFixture) login(t *testing.T) {
	t.Helper()
	_, err := f.manager.Login(context.Background(), session.Credentials{Email: testEmail, Password: testPassword, StoreName: testStore})
	require.NoError(t, err)
}

func TestNewManager_Validation(t *testing.T) {
	_, err := session.NewManager("", repofake.NewFakeRepo())
	require.ErrorIs(t, err, simerrors.ErrInvalidArgument)
	_, err = session.NewManager("http://localhost", nil)
	require.ErrorIs(t, err, simerrors.ErrInvalidArgument)
}

func TestLogin_Success(t *testing.T) {
	f := setupTestFixture(t)
	require.False(t, f.manager.Current().Authenticated)

	tok, err := f.manager.Login(context.Background(), session.Credentials{Email: testEmail, Password: testPassword, StoreName: testStore})
	require.NoError(t, err)
	require.Equal(t, testToken, tok)

	f.backend.mu.Lock()
	require.Equal(t, session.Credentials{Email: testEmail, Password: testPassword, StoreName: testStore}, f.backend.lastLogin)
	f.backend.mu.Unlock()

	persisted, err := f.repo.Get(context.Background(), tokenstore.TokenKey)
	require.NoError(t, err)
	require.Equal(t, testToken, persisted)

	s := f.manager.Current()
	require.True(t, s.Authenticated)
	require.Equal(t, testToken, s.Token)
	require.Equal(t, testUser, s.User)
	require.Equal(t, testEmail, s.Email)
	require.Equal(t, testStore, s.StoreContext)
	require.True(t, s.ExpiresAt.IsZero())
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		errIs  []error
	}{
		{"missing access token", http.StatusOK, `{"user":"Jane Doe"}`, []error{simerrors.ErrAuth, simerrors.ErrNoAccessToken}},
		{"empty access token", http.StatusOK, `{"accessToken":"","user":"Jane Doe"}`, []error{simerrors.ErrAuth}},
		{"malformed body", http.StatusOK, `<html>`, []error{simerrors.ErrAuth, simerrors.ErrDecode}},
		{"unauthorized", http.StatusUnauthorized, `{"message":"bad credentials"}`, []error{simerrors.ErrAuth}},
		{"server error", http.StatusInternalServerError, `oops`, []error{simerrors.ErrTransport}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupTestFixture(t)
			f.backend.setLogin(tt.status, tt.body)

			_, err := f.manager.Login(context.Background(), session.Credentials{Email: testEmail, Password: "wrong", StoreName: testStore})
			for _, target := range tt.errIs {
				require.ErrorIs(t, err, target)
			}
			require.False(t, f.manager.Current().Authenticated)

			_, err = f.repo.Get(context.Background(), tokenstore.TokenKey)
			require.ErrorIs(t, err, simerrors.ErrNotFound)
		})
	}
}

func TestLogin_ServerErrorIsStatusError(t *testing.T) {
	f := setupTestFixture(t)
	f.backend.setLogin(http.StatusBadGateway, "")

	_, err := f.manager.Login(context.Background(), session.Credentials{Email: testEmail})
	var statusErr *simerrors.StatusError
	require.True(t, errors.As(err, &statusErr))
	require.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
}

func TestLogin_NetworkFailure(t *testing.T) {
	f := setupTestFixture(t)
	f.backend.server.Close()

	_, err := f.manager.Login(context.Background(), session.Credentials{Email: testEmail})
	require.ErrorIs(t, err, simerrors.ErrTransport)
	require.False(t, f.manager.Current().Authenticated)
}

func TestLogin_PersistFailureLeavesUnauthenticated(t *testing.T) {
	f := setupTestFixture(t)
	f.repo.SetErr = errors.New("disk full")

	_, err := f.manager.Login(context.Background(), session.Credentials{Email: testEmail})
	require.Error(t, err)
	require.False(t, f.manager.Current().Authenticated)
}

func TestLogin_JWTClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.MapClaims{
		"sub": "user-42",
		"exp": exp.Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	f := setupTestFixture(t)
	f.backend.setLogin(http.StatusOK, `{"accessToken":"`+raw+`","user":"Jane Doe"}`)
	f.login(t)

	s := f.manager.Current()
	require.Equal(t, "user-42", s.Subject)
	require.True(t, exp.Equal(s.ExpiresAt))
}

func TestTransport_CarriesPersistedToken(t *testing.T) {
	f := setupTestFixture(t)

	f.get(t)
	require.Equal(t, "", f.backend.lastAuth())

	f.login(t)
	f.get(t)
	require.Equal(t, "Bearer tok-123", f.backend.lastAuth())
}

func TestTransport_NoHeaderAfterLogout(t *testing.T) {
	f := setupTestFixture(t, session.WithTokenCacheTTL(time.Hour))
	f.login(t)
	f.get(t)
	require.Equal(t, "Bearer tok-123", f.backend.lastAuth())

	f.manager.Logout(context.Background())
	require.False(t, f.manager.Current().Authenticated)

	// A stale header set by the caller must not leak through either
	req, err := http.NewRequest(http.MethodGet, f.backend.server.URL+"/x", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer tok-123")
	resp, err := f.client.Do(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, "", f.backend.lastAuth())
}

func TestLogout_StorageErrorIsSwallowed(t *testing.T) {
	f := setupTestFixture(t)
	f.login(t)
	f.repo.DeleteErr = errors.New("storage unavailable")

	f.manager.Logout(context.Background())
	require.Equal(t, session.Session{}, f.manager.Current())
}

func TestTransport_TokenReadFailureRejectsRequest(t *testing.T) {
	f := setupTestFixture(t)
	f.login(t)
	f.repo.GetErr = errors.New("keychain locked")

	req, err := http.NewRequest(http.MethodGet, f.backend.server.URL+"/x", nil)
	require.NoError(t, err)
	_, err = f.client.Do(req)
	require.ErrorIs(t, err, simerrors.ErrTokenUnavailable)
	f.backend.mu.Lock()
	require.Equal(t, 0, f.backend.protectedHit)
	f.backend.mu.Unlock()
}

func TestTransport_ReadsStoragePerRequest(t *testing.T) {
	f := setupTestFixture(t)
	f.login(t)

	before := f.repo.Gets()
	f.get(t)
	f.get(t)
	require.Equal(t, before+2, f.repo.Gets())

	// A token written by another code path is picked up on the next request
	require.NoError(t, f.repo.Set(context.Background(), tokenstore.TokenKey, "tok-456"))
	f.get(t)
	require.Equal(t, "Bearer tok-456", f.backend.lastAuth())
}

func TestTransport_CacheTTL(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	f := setupTestFixture(t,
		session.WithTokenCacheTTL(time.Minute),
		session.WithNowTime(func() time.Time { return now }),
	)
	f.login(t)

	before := f.repo.Gets()
	f.get(t)
	f.get(t)
	require.Equal(t, before+1, f.repo.Gets())

	now = now.Add(2 * time.Minute)
	f.get(t)
	require.Equal(t, before+2, f.repo.Gets())
}

func TestTransport_CacheBoundedByTokenExpiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	raw, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.MapClaims{
		"exp": now.Add(10 * time.Second).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	f := setupTestFixture(t,
		session.WithTokenCacheTTL(time.Hour),
		session.WithNowTime(func() time.Time { return now }),
	)
	f.backend.setLogin(http.StatusOK, `{"accessToken":"`+raw+`","user":"Jane Doe"}`)
	f.login(t)

	f.get(t)
	before := f.repo.Gets()
	now = now.Add(30 * time.Second)
	f.get(t)
	require.Equal(t, before+1, f.repo.Gets())
}

func TestTransport_RequestID(t *testing.T) {
	f := setupTestFixture(t)
	f.get(t)
	f.get(t)

	f.backend.mu.Lock()
	defer f.backend.mu.Unlock()
	require.Len(t, f.backend.requestIDs, 2)
	require.NotEmpty(t, f.backend.requestIDs[0])
	require.NotEqual(t, f.backend.requestIDs[0], f.backend.requestIDs[1])
}

func TestTokenSource(t *testing.T) {
	f := setupTestFixture(t)

	_, err := f.manager.TokenSource(context.Background()).Token()
	require.ErrorIs(t, err, simerrors.ErrNotFound)

	f.login(t)
	tok, err := f.manager.TokenSource(context.Background()).Token()
	require.NoError(t, err)
	require.Equal(t, testToken, tok.AccessToken)
	require.Equal(t, "Bearer", tok.Type())
}

// stallingRepo holds the first Get after it has read the stored value, so a
// request can be left in flight across a logout.
type stallingRepo struct {
	*repofake.FakeRepo
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func (r *stallingRepo) Get(ctx context.Context, key string) (string, error) {
	value, err := r.FakeRepo.Get(ctx, key)
	r.once.Do(func() {
		close(r.entered)
		<-r.release
	})
	return value, err
}

func TestTransport_InFlightReadDoesNotRefillCacheAfterLogout(t *testing.T) {
	b := newBackend(t)
	repo := &stallingRepo{
		FakeRepo: repofake.NewFakeRepo(),
		entered:  make(chan struct{}),
		release:  make(chan struct{}),
	}
	m, err := session.NewManager(b.server.URL, repo,
		session.WithLogger(zerolog.Nop()),
		session.WithTokenCacheTTL(time.Hour),
	)
	require.NoError(t, err)
	f := &testFixture{backend: b, manager: m, client: m.HTTPClient(0)}
	f.login(t)

	done := make(chan struct{})
	go func() {
		defer close(done)
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, b.server.URL+"/x", nil)
		if err != nil {
			return
		}
		if resp, err := f.client.Do(req); err == nil {
			_ = resp.Body.Close()
		}
	}()

	<-repo.entered
	m.Logout(context.Background())
	close(repo.release)
	<-done
	require.Equal(t, "Bearer "+testToken, b.lastAuth())

	f.get(t)
	require.Empty(t, b.lastAuth())
}

func TestLogin_MalformedBodyKeepsCause(t *testing.T) {
	f := setupTestFixture(t)
	f.backend.setLogin(http.StatusOK, `<html>`)

	_, err := f.manager.Login(context.Background(), session.Credentials{Email: testEmail, Password: testPassword, StoreName: testStore})
	require.ErrorIs(t, err, simerrors.ErrDecode)
	var syntaxErr *json.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	require.Contains(t, err.Error(), "invalid character")
}

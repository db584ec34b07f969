package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	simerrors "github.com/jrsteele09/go-sim-client/internal/errors"
	"github.com/stretchr/testify/require"
)

type cliFixture struct {
	server    *httptest.Server
	tokenFile string

	mu    sync.Mutex
	auths map[string]string // path -> Authorization header
}

func newCLIFixture(t *testing.T) *cliFixture {
	t.Helper()
	f := &cliFixture{auths: map[string]string{}}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"accessToken":"cli-token","user":"Jane Doe"}`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.auths[r.URL.EscapedPath()] = r.Header.Get("Authorization")
		f.mu.Unlock()
		_, _ = w.Write([]byte(`[{"id":1}]`))
	})
	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)

	dir := t.TempDir()
	f.tokenFile = filepath.Join(dir, "store.json")
	t.Setenv("HOME", dir)
	t.Setenv("ENV", "TEST")
	t.Setenv("SIM_LOG_LEVEL", "error")
	t.Setenv("SIM_BASE_URL", f.server.URL)
	t.Setenv("SIM_STORE_NAME", "Ambience Mall")
	t.Setenv("SIM_TOKEN_STORE", "file")
	t.Setenv("SIM_TOKEN_FILE", f.tokenFile)
	t.Setenv("SIM_TOKEN_KEY", "")
	return f
}

func (f *cliFixture) auth(path string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.auths[path]
	return v, ok
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), err
}

func TestLoginPersistsTokenAcrossInvocations(t *testing.T) {
	f := newCLIFixture(t)

	out, err := runCLI(t, "login", "--email", "jane@example.com", "--password", "secret")
	require.NoError(t, err)
	require.Contains(t, out, "Logged in as Jane Doe at Ambience Mall")

	data, err := os.ReadFile(f.tokenFile)
	require.NoError(t, err)
	require.Contains(t, string(data), "cli-token")

	out, err = runCLI(t, "docs", "list", "IA")
	require.NoError(t, err)
	require.JSONEq(t, `[{"id":1}]`, out)

	auth, ok := f.auth("/inventoryadjustment/all/adjustments")
	require.True(t, ok)
	require.Equal(t, "Bearer cli-token", auth)
}

func TestLogoutDropsBearer(t *testing.T) {
	f := newCLIFixture(t)

	_, err := runCLI(t, "login", "-e", "jane@example.com", "-p", "secret")
	require.NoError(t, err)
	_, err = runCLI(t, "logout")
	require.NoError(t, err)

	_, err = runCLI(t, "get", "fetchMyTasks", "Ambience Mall")
	require.NoError(t, err)

	auth, ok := f.auth("/sim/dashboard/getMyTasks/Ambience%20Mall")
	require.True(t, ok)
	require.Empty(t, auth)
}

func TestLoginRequiresPassword(t *testing.T) {
	newCLIFixture(t)
	t.Setenv("SIM_PASSWORD", "")

	_, err := runCLI(t, "login", "--email", "jane@example.com")
	require.Error(t, err)
}

func TestUnsupportedDocumentOperation(t *testing.T) {
	newCLIFixture(t)

	_, err := runCLI(t, "docs", "search", "SC", "anything")
	require.ErrorIs(t, err, simerrors.ErrUnsupportedOperation)

	_, err = runCLI(t, "docs", "list", "XYZ")
	require.ErrorIs(t, err, simerrors.ErrUnknownDocumentType)
}

func TestDashboardCommand(t *testing.T) {
	newCLIFixture(t)

	out, err := runCLI(t, "dashboard")
	require.NoError(t, err)
	require.JSONEq(t, `{"task":[{"id":1}],"discrepancy":[{"id":1}],"variance":[{"id":1}],"transfer":[{"id":1}]}`, out)
}

func TestOfflineCommands(t *testing.T) {
	t.Setenv("SIM_TOKEN_STORE", "bogus") // offline commands never build the app

	out, err := runCLI(t, "endpoints", "fetchItemsDSD", "12")
	require.NoError(t, err)
	require.Equal(t, "/dsd/products/DsdNumber/12\n", out)

	out, err = runCLI(t, "endpoints")
	require.NoError(t, err)
	require.Contains(t, out, "fetchIa")

	_, err = runCLI(t, "endpoints", "nope")
	require.ErrorIs(t, err, simerrors.ErrUnknownOperation)

	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.json")
	require.NoError(t, os.WriteFile(a, []byte(`{"x":{"y":1}}`), 0o600))
	require.NoError(t, os.WriteFile(b, []byte(`{"x":{"z":1}}`), 0o600))
	out, err = runCLI(t, "compare", a, b)
	require.NoError(t, err)
	require.Equal(t, "false\n", out)

	out, err = runCLI(t, "version")
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(out, version+"\n"))
}

func TestParseData(t *testing.T) {
	body, err := parseData("")
	require.NoError(t, err)
	require.Nil(t, body)

	_, err = parseData("{not json")
	require.ErrorIs(t, err, simerrors.ErrInvalidArgument)

	path := filepath.Join(t.TempDir(), "body.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a":1}`), 0o600))
	body, err = parseData("@" + path)
	require.NoError(t, err)
	require.JSONEq(t, `{"a":1}`, string(body.(json.RawMessage)))
}

func TestCloseReleasesAppAfterFailedCommand(t *testing.T) {
	newCLIFixture(t)

	var stdout, stderr bytes.Buffer
	root, opts := newRootCmd(&stdout, &stderr)
	root.SetArgs([]string{"docs", "search", "SC", "anything"})
	require.Error(t, root.Execute())
	require.NotNil(t, opts.app)

	closed := 0
	opts.app.closers = append(opts.app.closers, func() error {
		closed++
		return nil
	})
	opts.close()
	require.Equal(t, 1, closed)
	require.Nil(t, opts.app)

	opts.close()
	require.Equal(t, 1, closed)
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jrsteele09/go-sim-client/internal/config"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("SIM_BASE_URL", "")
	t.Setenv("SIM_TOKEN_STORE", "")
	t.Setenv("SIM_TOKEN_CACHE_TTL", "")
	t.Setenv("SIM_PRETTIFY", "")

	c := config.New()
	require.Equal(t, "http://192.168.1.6:9029", c.GetBaseURL())
	require.Equal(t, config.TokenStoreFile, c.GetTokenStore())
	require.Equal(t, time.Duration(0), c.GetTokenCacheTTL())
	require.Equal(t, time.Duration(0), c.GetRequestTimeout())
	require.True(t, c.GetPrettify())
	require.Equal(t, "sim:", c.GetRedisPrefix())
}

func TestLoad_FileUnderEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
base_url: http://file.example:9029
store_name: Ambience Mall
prettify: false
token_cache_ttl: 30s
redis_db: 3
`), 0o600))

	t.Setenv("SIM_BASE_URL", "")
	t.Setenv("SIM_STORE_NAME", "")
	t.Setenv("SIM_PRETTIFY", "")
	t.Setenv("SIM_TOKEN_CACHE_TTL", "")
	t.Setenv("SIM_REDIS_DB", "")

	c, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "http://file.example:9029", c.GetBaseURL())
	require.Equal(t, "Ambience Mall", c.GetStoreName())
	require.False(t, c.GetPrettify())
	require.Equal(t, 30*time.Second, c.GetTokenCacheTTL())
	require.Equal(t, 3, c.GetRedisDB())

	t.Setenv("SIM_BASE_URL", "http://env.example:9029")
	t.Setenv("SIM_TOKEN_CACHE_TTL", "not-a-duration")
	require.Equal(t, "http://env.example:9029", c.GetBaseURL())
	require.Equal(t, time.Duration(0), c.GetTokenCacheTTL())
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: [unterminated"), 0o600))
	_, err := config.Load(path)
	require.Error(t, err)
}

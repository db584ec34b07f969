package redisrepo_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	simerrors "github.com/jrsteele09/go-sim-client/internal/errors"
	"github.com/jrsteele09/go-sim-client/tokenstore/redisrepo"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresAddr(t *testing.T) {
	_, _, err := redisrepo.New(redisrepo.Config{Addr: "  "})
	require.ErrorIs(t, err, simerrors.ErrInvalidArgument)
}

func TestRedisRepo_RoundTrip(t *testing.T) {
	addr := os.Getenv("SIM_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("SIM_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()

	repo, client, err := redisrepo.New(redisrepo.Config{Addr: addr, Prefix: "simtest:" + uuid.NewString() + ":"})
	require.NoError(t, err)
	defer client.Close()

	_, err = repo.Get(ctx, "token")
	require.ErrorIs(t, err, simerrors.ErrNotFound)

	require.NoError(t, repo.Set(ctx, "token", "tok-123"))
	v, err := repo.Get(ctx, "token")
	require.NoError(t, err)
	require.Equal(t, "tok-123", v)

	require.NoError(t, repo.Delete(ctx, "token"))
	_, err = repo.Get(ctx, "token")
	require.ErrorIs(t, err, simerrors.ErrNotFound)
}

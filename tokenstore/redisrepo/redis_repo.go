package redisrepo

import (
	"context"
	"strings"

	simerrors "github.com/jrsteele09/go-sim-client/internal/errors"
	"github.com/jrsteele09/go-sim-client/tokenstore"
	"github.com/pkg/errors"
	redis "github.com/redis/go-redis/v9"
)

var _ tokenstore.Repo = (*RedisRepo)(nil)

// RedisRepo stores keys under a common prefix, e.g. "sim:token".
type RedisRepo struct {
	client redis.Cmdable
	prefix string
}

// Config configures a Redis connection for New
type Config struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// New connects a RedisRepo. The caller owns closing the returned client.
func New(cfg Config) (*RedisRepo, *redis.Client, error) {
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, nil, errors.Wrap(simerrors.ErrInvalidArgument, "redis addr is required")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return NewWithClient(client, cfg.Prefix), client, nil
}

// NewWithClient wraps an existing client
func NewWithClient(client redis.Cmdable, prefix string) *RedisRepo {
	return &RedisRepo{client: client, prefix: prefix}
}

func (rr *RedisRepo) Get(ctx context.Context, key string) (string, error) {
	v, err := rr.client.Get(ctx, rr.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", simerrors.ErrNotFound
	}
	if err != nil {
		return "", errors.Wrapf(err, "redis get %s", key)
	}
	return v, nil
}

func (rr *RedisRepo) Set(ctx context.Context, key, value string) error {
	return errors.Wrapf(rr.client.Set(ctx, rr.prefix+key, value, 0).Err(), "redis set %s", key)
}

func (rr *RedisRepo) Delete(ctx context.Context, key string) error {
	return errors.Wrapf(rr.client.Del(ctx, rr.prefix+key).Err(), "redis del %s", key)
}

package main

import (
	"io"
	"strings"

	"github.com/jrsteele09/go-sim-client/gateway"
	"github.com/jrsteele09/go-sim-client/internal/config"
	"github.com/jrsteele09/go-sim-client/inventory"
	"github.com/jrsteele09/go-sim-client/session"
	"github.com/jrsteele09/go-sim-client/tokenstore"
	"github.com/jrsteele09/go-sim-client/tokenstore/filerepo"
	"github.com/jrsteele09/go-sim-client/tokenstore/memrepo"
	"github.com/jrsteele09/go-sim-client/tokenstore/redisrepo"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// app wires one CLI invocation: config, logging, storage, session, gateway.
type app struct {
	cfg     config.Config
	logger  zerolog.Logger
	manager *session.Manager
	gateway *gateway.Client
	service *inventory.Service
	closers []func() error
}

func newApp(cfg config.Config, stderr io.Writer) (*app, error) {
	logger := newLogger(cfg, stderr)

	repo, closer, err := newTokenRepo(cfg)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, logger: logger}
	if closer != nil {
		a.closers = append(a.closers, closer)
	}

	a.manager, err = session.NewManager(cfg.GetBaseURL(), repo,
		session.WithLogger(logger.With().Str("component", "session").Logger()),
		session.WithTokenCacheTTL(cfg.GetTokenCacheTTL()),
	)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.gateway, err = gateway.New(cfg.GetBaseURL(), a.manager.HTTPClient(cfg.GetRequestTimeout()),
		gateway.WithLogger(logger.With().Str("component", "gateway").Logger()),
		gateway.WithPrettify(cfg.GetPrettify()),
	)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.service, err = inventory.NewService(a.gateway)
	if err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *app) Close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.logger.Warn().Err(err).Msg("close failed")
		}
	}
	a.closers = nil
}

func newLogger(cfg config.EnvConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.GetLogLevel()))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if cfg.GetEnv() == "DEV" {
		w = zerolog.ConsoleWriter{Out: w}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func newTokenRepo(cfg config.StorageConfig) (tokenstore.Repo, func() error, error) {
	switch backend := cfg.GetTokenStore(); backend {
	case config.TokenStoreFile:
		var options []filerepo.Option
		if hexKey := cfg.GetTokenKey(); hexKey != "" {
			key, err := filerepo.ParseKey(hexKey)
			if err != nil {
				return nil, nil, err
			}
			options = append(options, filerepo.WithSealingKey(key))
		}
		repo, err := filerepo.New(cfg.GetTokenFile(), options...)
		return repo, nil, err
	case config.TokenStoreRedis:
		repo, client, err := redisrepo.New(redisrepo.Config{
			Addr:     cfg.GetRedisAddr(),
			Password: cfg.GetRedisPassword(),
			DB:       cfg.GetRedisDB(),
			Prefix:   cfg.GetRedisPrefix(),
		})
		if err != nil {
			return nil, nil, err
		}
		return repo, client.Close, nil
	case config.TokenStoreMemory:
		return memrepo.NewInMemoryRepo(), nil, nil
	default:
		return nil, nil, errors.Errorf("unknown token store %q", backend)
	}
}

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config interface {
	EnvConfig
	ClientConfig
	StorageConfig
}

type EnvConfig interface {
	GetAppName() string
	GetEnv() string
	GetLogLevel() string
}

type ClientConfig interface {
	GetBaseURL() string
	GetStoreName() string
	GetPrettify() bool
	GetRequestTimeout() time.Duration
	GetTokenCacheTTL() time.Duration
}

type mainConfig struct {
	EnvVars
	Client
	Storage
}

// New returns a Config backed by environment variables and defaults only.
func New() Config {
	return newMainConfig(&fileValues{})
}

// Load returns a Config that layers the YAML file at path underneath the
// environment variables. An empty path falls back to the default location,
// which is allowed to be missing.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	values := &fileValues{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, values); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
	default:
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return newMainConfig(values), nil
}

func newMainConfig(values *fileValues) mainConfig {
	return mainConfig{
		EnvVars: EnvVars{file: values},
		Client:  Client{file: values},
		Storage: Storage{file: values},
	}
}

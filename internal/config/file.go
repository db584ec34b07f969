package config

import (
	"os"
	"path/filepath"
)

// fileValues mirrors the YAML config file. Zero values mean "not set".
type fileValues struct {
	AppName        string `yaml:"app_name"`
	Env            string `yaml:"env"`
	LogLevel       string `yaml:"log_level"`
	BaseURL        string `yaml:"base_url"`
	StoreName      string `yaml:"store_name"`
	Prettify       *bool  `yaml:"prettify"`
	RequestTimeout string `yaml:"request_timeout"`
	TokenCacheTTL  string `yaml:"token_cache_ttl"`
	TokenStore     string `yaml:"token_store"`
	TokenFile      string `yaml:"token_file"`
	TokenKey       string `yaml:"token_key"`
	RedisAddr      string `yaml:"redis_addr"`
	RedisPassword  string `yaml:"redis_password"`
	RedisDB        *int   `yaml:"redis_db"`
	RedisPrefix    string `yaml:"redis_prefix"`
}

// DefaultConfigPath is ~/.config/simctl/config.yaml
func DefaultConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "simctl")
}

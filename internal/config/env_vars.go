package config

import (
	"os"
	"strconv"
	"time"
)

const (
	appNameVar        = "APP_NAME"
	envVar            = "ENV"
	logLevelVar       = "SIM_LOG_LEVEL"
	baseURLVar        = "SIM_BASE_URL"
	storeNameVar      = "SIM_STORE_NAME"
	prettifyVar       = "SIM_PRETTIFY"
	requestTimeoutVar = "SIM_REQUEST_TIMEOUT"
	tokenCacheTTLVar  = "SIM_TOKEN_CACHE_TTL"
)

type EnvVars struct {
	file *fileValues
}

var _ EnvConfig = EnvVars{}

func (e EnvVars) GetAppName() string {
	return GetEnv(appNameVar, orDefault(e.file.AppName, "SIM Client"))
}

func (e EnvVars) GetEnv() string {
	return GetEnv(envVar, orDefault(e.file.Env, "DEV"))
}

func (e EnvVars) GetLogLevel() string {
	return GetEnv(logLevelVar, orDefault(e.file.LogLevel, "info"))
}

type Client struct {
	file *fileValues
}

var _ ClientConfig = Client{}

// GetBaseURL returns the API base URL, e.g. "http://192.168.1.6:9029"
func (c Client) GetBaseURL() string {
	return GetEnv(baseURLVar, orDefault(c.file.BaseURL, "http://192.168.1.6:9029"))
}

func (c Client) GetStoreName() string {
	return GetEnv(storeNameVar, c.file.StoreName)
}

func (c Client) GetPrettify() bool {
	def := true
	if c.file.Prettify != nil {
		def = *c.file.Prettify
	}
	return getBool(prettifyVar, def)
}

// GetRequestTimeout of zero means calls block until the transport resolves.
func (c Client) GetRequestTimeout() time.Duration {
	return getDuration(requestTimeoutVar, c.file.RequestTimeout)
}

// GetTokenCacheTTL of zero means the token is re-read from storage on every request.
func (c Client) GetTokenCacheTTL() time.Duration {
	return getDuration(tokenCacheTTLVar, c.file.TokenCacheTTL)
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}

func orDefault(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

func getBool(envVar string, defaultValue bool) bool {
	b, err := strconv.ParseBool(os.Getenv(envVar))
	if err != nil {
		return defaultValue
	}
	return b
}

func getInt(envVar string, defaultValue int) int {
	i, err := strconv.Atoi(os.Getenv(envVar))
	if err != nil {
		return defaultValue
	}
	return i
}

// getDuration prefers the env var, then the file value. Unparseable values count as zero.
func getDuration(envVar, fileValue string) time.Duration {
	d, err := time.ParseDuration(GetEnv(envVar, fileValue))
	if err != nil || d < 0 {
		return 0
	}
	return d
}

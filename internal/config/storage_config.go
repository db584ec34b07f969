package config

import "path/filepath"

const (
	tokenStoreVar    = "SIM_TOKEN_STORE"
	tokenFileVar     = "SIM_TOKEN_FILE"
	tokenKeyVar      = "SIM_TOKEN_KEY"
	redisAddrVar     = "SIM_REDIS_ADDR"
	redisPasswordVar = "SIM_REDIS_PASSWORD"
	redisDBVar       = "SIM_REDIS_DB"
	redisPrefixVar   = "SIM_REDIS_PREFIX"
)

// Token store backends
const (
	TokenStoreFile   = "file"
	TokenStoreRedis  = "redis"
	TokenStoreMemory = "memory"
)

type StorageConfig interface {
	GetTokenStore() string
	GetTokenFile() string
	GetTokenKey() string
	GetRedisAddr() string
	GetRedisPassword() string
	GetRedisDB() int
	GetRedisPrefix() string
}

type Storage struct {
	file *fileValues
}

var _ StorageConfig = Storage{}

func (s Storage) GetTokenStore() string {
	return GetEnv(tokenStoreVar, orDefault(s.file.TokenStore, TokenStoreFile))
}

func (s Storage) GetTokenFile() string {
	return GetEnv(tokenFileVar, orDefault(s.file.TokenFile, filepath.Join(configDir(), "store.json")))
}

// GetTokenKey is a hex encoded 32 byte key. Empty disables sealing.
func (s Storage) GetTokenKey() string {
	return GetEnv(tokenKeyVar, s.file.TokenKey)
}

func (s Storage) GetRedisAddr() string {
	return GetEnv(redisAddrVar, orDefault(s.file.RedisAddr, "localhost:6379"))
}

func (s Storage) GetRedisPassword() string {
	return GetEnv(redisPasswordVar, s.file.RedisPassword)
}

func (s Storage) GetRedisDB() int {
	def := 0
	if s.file.RedisDB != nil {
		def = *s.file.RedisDB
	}
	return getInt(redisDBVar, def)
}

func (s Storage) GetRedisPrefix() string {
	return GetEnv(redisPrefixVar, orDefault(s.file.RedisPrefix, "sim:"))
}

package internal

import (
	"fmt"
	"time"
)

type StoreBackend string

const (
	BackendBadger StoreBackend = "badger"
	BackendRedis  StoreBackend = "redis"
	BackendMemory StoreBackend = "memory"
)

// Config of the timebank server, read from the environment (and .env files).
type Config struct {
	Host     string `env:"HOST,default=0.0.0.0"`
	Port     int    `env:"PORT,required=true"`
	LogLevel string `env:"LOG_LEVEL,default=INFO"`

	StoreBackend   string `env:"STORE_BACKEND,default=badger"`
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath  string `env:"BLUGE_FILEPATH,required=true"`
	RedisAddr      string `env:"REDIS_ADDR"`
	RedisPassword  string `env:"REDIS_PASSWORD"`
	RedisDB        int    `env:"REDIS_DB,default=0"`

	AuthSecret        string        `env:"AUTH_SECRET,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`

	HeartbeatInterval    time.Duration `env:"HEARTBEAT_INTERVAL,default=30s"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	DebugPort            int           `env:"DEBUG_PORT,default=8081"`
	DirectorySearchLimit int           `env:"DIRECTORY_SEARCH_LIMIT,default=50"`
}

// Validate checks the cross-field rules go-env cannot express.
func (c Config) Validate() error {
	switch StoreBackend(c.StoreBackend) {
	case BackendBadger, BackendMemory:
	case BackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when STORE_BACKEND=redis")
		}
	default:
		return fmt.Errorf("STORE_BACKEND must be one of badger, redis, memory, got %q", c.StoreBackend)
	}
	if len(c.AuthSecret) < 32 {
		return fmt.Errorf("AUTH_SECRET must be at least 32 characters")
	}
	if c.DirectorySearchLimit <= 0 {
		return fmt.Errorf("DIRECTORY_SEARCH_LIMIT must be positive, got %d", c.DirectorySearchLimit)
	}
	if c.HeartbeatInterval <= 0 {
		return fmt.Errorf("HEARTBEAT_INTERVAL must be positive, got %s", c.HeartbeatInterval)
	}
	return nil
}

package internal

import (
	"strings"
	"testing"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_FromEnviron(t *testing.T) {
	req := require.New(t)
	t.Setenv("PORT", "50051")
	t.Setenv("BADGER_FILEPATH", "/tmp/timebank/badger")
	t.Setenv("BLUGE_FILEPATH", "/tmp/timebank/bluge")
	t.Setenv("AUTH_SECRET", strings.Repeat("s", 32))
	t.Setenv("AUTH_TOKEN_DURATION", "2h")

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)

	req.NoError(err)
	req.Equal(50051, config.Port)
	req.Equal("0.0.0.0", config.Host)
	req.Equal("badger", config.StoreBackend)
	req.Equal(2*time.Hour, config.AuthTokenDuration)
	req.Equal(30*time.Second, config.HeartbeatInterval)
	req.Equal(50, config.DirectorySearchLimit)
	req.NoError(config.Validate())
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		StoreBackend:         "memory",
		AuthSecret:           strings.Repeat("s", 32),
		DirectorySearchLimit: 10,
		HeartbeatInterval:    time.Second,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown backend", func(c *Config) { c.StoreBackend = "mongo" }},
		{"redis without address", func(c *Config) { c.StoreBackend = "redis" }},
		{"short secret", func(c *Config) { c.AuthSecret = "secret" }},
		{"no search limit", func(c *Config) { c.DirectorySearchLimit = 0 }},
		{"no heartbeat", func(c *Config) { c.HeartbeatInterval = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			require.Error(t, c.Validate())
		})
	}
}

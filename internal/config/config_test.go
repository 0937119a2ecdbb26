package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "http://localhost:9090", cfg.Upstream.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 30*24*time.Hour, cfg.Redis.TTL)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "development", cfg.App.Env)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("UPSTREAM_BASE_URL", "https://api.example.com")
	t.Setenv("UPSTREAM_API_KEY", "secret")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "https://api.example.com", cfg.Upstream.BaseURL)
	assert.Equal(t, "secret", cfg.Upstream.APIKey)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "port too large", key: "SERVER_PORT", value: "70000"},
		{name: "port zero", key: "SERVER_PORT", value: "0"},
		{name: "negative read timeout", key: "SERVER_READ_TIMEOUT", value: "-1s"},
		{name: "unknown log level", key: "LOG_LEVEL", value: "verbose"},
		{name: "unknown log format", key: "LOG_FORMAT", value: "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_RedisValidationOnlyWhenEnabled(t *testing.T) {
	t.Run("blank addr rejected when enabled", func(t *testing.T) {
		t.Setenv("REDIS_ENABLED", "true")
		t.Setenv("REDIS_ADDR", "")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("blank addr ignored when disabled", func(t *testing.T) {
		t.Setenv("REDIS_ENABLED", "false")
		t.Setenv("REDIS_ADDR", "")

		_, err := Load()
		assert.NoError(t, err)
	})
}

func TestMustLoad_PanicsOnInvalid(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")

	assert.Panics(t, func() {
		MustLoad()
	})
}

func TestIsDevelopment(t *testing.T) {
	cfg := &Config{}
	cfg.App.Env = "development"
	assert.True(t, cfg.IsDevelopment())

	cfg.App.Env = "staging"
	assert.False(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jwtsession/pkg/config"
	"github.com/dmitrymomot/jwtsession/pkg/session"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := session.DefaultConfig()
	assert.Empty(t, cfg.Key)
	assert.Equal(t, "HS256", cfg.Algorithm)
	assert.Equal(t, 900*time.Second, cfg.Lifetime)
	assert.Equal(t, "X-Token", cfg.TokenName)
	assert.Empty(t, cfg.Issuer)
	assert.Zero(t, cfg.Leeway)
	assert.False(t, cfg.SecureCookie)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*session.Config)
		wantErr error
	}{
		{"valid", func(*session.Config) {}, nil},
		{"missing key", func(c *session.Config) { c.Key = "" }, session.ErrMissingKey},
		{"missing key wins", func(c *session.Config) { c.Key = ""; c.Leeway = -time.Second }, session.ErrMissingKey},
		{"zero lifetime uses default", func(c *session.Config) { c.Lifetime = 0 }, nil},
		{"sub-second lifetime", func(c *session.Config) { c.Lifetime = 500 * time.Millisecond }, session.ErrInvalidLifetime},
		{"negative lifetime", func(c *session.Config) { c.Lifetime = -time.Minute }, session.ErrInvalidLifetime},
		{"negative leeway", func(c *session.Config) { c.Leeway = -time.Second }, session.ErrInvalidLeeway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	key := randomKey(t)
	t.Setenv("SESSION_KEY", key)
	t.Setenv("SESSION_ALGORITHM", "HS512")
	t.Setenv("SESSION_LIFETIME", "30m")
	t.Setenv("SESSION_TOKEN_NAME", "auth")
	t.Setenv("SESSION_ISSUER", "auth.example.com")
	t.Setenv("SESSION_LEEWAY", "5s")
	t.Setenv("SESSION_SECURE_COOKIE", "true")

	var cfg session.Config
	require.NoError(t, config.LoadNoCache(&cfg))

	assert.Equal(t, key, cfg.Key)
	assert.Equal(t, "HS512", cfg.Algorithm)
	assert.Equal(t, 30*time.Minute, cfg.Lifetime)
	assert.Equal(t, "auth", cfg.TokenName)
	assert.Equal(t, "auth.example.com", cfg.Issuer)
	assert.Equal(t, 5*time.Second, cfg.Leeway)
	assert.True(t, cfg.SecureCookie)
}

func TestConfigFromEnvWithoutKey(t *testing.T) {
	t.Setenv("SESSION_KEY", "")

	var cfg session.Config
	err := config.LoadNoCache(&cfg)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorIs(t, err, session.ErrMissingKey)
}

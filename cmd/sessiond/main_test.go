package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jwtsession/pkg/secrets"
	"github.com/dmitrymomot/jwtsession/pkg/session"
)

func TestSessionConfig(t *testing.T) {
	t.Parallel()

	master := strings.Repeat("ab", 32)

	t.Run("explicit key wins", func(t *testing.T) {
		cfg, err := sessionConfig(appConfig{Key: master}, sessionSettings{Key: "explicit"})
		require.NoError(t, err)
		assert.Equal(t, "explicit", cfg.Key)
	})

	t.Run("derived from app key", func(t *testing.T) {
		cfg, err := sessionConfig(appConfig{Key: master}, sessionSettings{})
		require.NoError(t, err)
		assert.Len(t, cfg.Key, 64)

		again, err := sessionConfig(appConfig{Key: master}, sessionSettings{})
		require.NoError(t, err)
		assert.Equal(t, cfg.Key, again.Key)
	})

	t.Run("no key at all", func(t *testing.T) {
		_, err := sessionConfig(appConfig{}, sessionSettings{})
		require.ErrorIs(t, err, errNoKey)
	})

	t.Run("bad hex", func(t *testing.T) {
		_, err := sessionConfig(appConfig{Key: "zz"}, sessionSettings{})
		require.Error(t, err)
	})

	t.Run("short master", func(t *testing.T) {
		_, err := sessionConfig(appConfig{Key: "abcd"}, sessionSettings{})
		require.ErrorIs(t, err, secrets.ErrInvalidMasterKey)
	})

	t.Run("invalid settings", func(t *testing.T) {
		_, err := sessionConfig(appConfig{Key: master}, sessionSettings{Leeway: -1})
		require.ErrorIs(t, err, session.ErrInvalidLeeway)
	})
}

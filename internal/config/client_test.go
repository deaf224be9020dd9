package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig(t *testing.T) {
	t.Run("env with flag override", func(t *testing.T) {
		t.Setenv("TABLECTL_SERVER_URL", "http://env:3000")
		t.Setenv("TABLECTL_USERNAME", "admin")
		t.Setenv("TABLECTL_PASSWORD", "from-env")

		cfg, rest, err := GetClientConfig([]string{"-s", "http://flag:4000", "qr", "3"})

		require.NoError(t, err)
		assert.Equal(t, "http://flag:4000", cfg.ServerURL)
		assert.Equal(t, "admin", cfg.Username)
		assert.Equal(t, "from-env", cfg.Password)
		assert.Equal(t, DefaultClientTimeout, cfg.Timeout)
		assert.Equal(t, []string{"qr", "3"}, rest)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, _, err := GetClientConfig([]string{"-u", "admin", "-p", "pw", "-timeout", "3s", "summary"})

		require.NoError(t, err)
		assert.Equal(t, DefaultClientServerURL, cfg.ServerURL)
		assert.Equal(t, 3*time.Second, cfg.Timeout)
		assert.Equal(t, DefaultClientLogLevel, cfg.LogLevel)
	})

	t.Run("missing credentials", func(t *testing.T) {
		_, _, err := GetClientConfig([]string{"tables"})

		assert.ErrorIs(t, err, ErrInvalidClientConfigs)
	})

	t.Run("bad flag", func(t *testing.T) {
		_, _, err := GetClientConfig([]string{"-timeout", "soon"})

		assert.Error(t, err)
	})
}

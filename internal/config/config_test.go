package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// run from an empty directory so no .env file is picked up
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Server.Address)
	assert.Equal(t, 30*time.Second, cfg.Client.Timeout)
	assert.Equal(t, 10, cfg.Query.Limit)
	assert.Equal(t, 600*time.Millisecond, cfg.Query.Debounce)
	assert.Equal(t, 128, cfg.Cache.Size)
	assert.Equal(t, "session.toml", filepath.Base(cfg.Session.Path))
	assert.True(t, cfg.Fixture.Seed)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("LUNCHDESK_SERVER_ADDRESS", "http://dashboard.internal:9000")
	t.Setenv("LUNCHDESK_PAGE_SIZE", "25")
	t.Setenv("LUNCHDESK_SEARCH_DEBOUNCE", "250ms")
	t.Setenv("LUNCHDESK_SESSION_FILE", "/tmp/lunchdesk-session.toml")
	t.Setenv("FIXTURE_TOKEN", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://dashboard.internal:9000", cfg.Server.Address)
	assert.Equal(t, 25, cfg.Query.Limit)
	assert.Equal(t, 250*time.Millisecond, cfg.Query.Debounce)
	assert.Equal(t, "/tmp/lunchdesk-session.toml", cfg.Session.Path)
	assert.Equal(t, "secret", cfg.Fixture.Token)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	chdir(t, t.TempDir())

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("LUNCHDESK_SEARCH_DEBOUNCE", "soon")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("non-positive page size", func(t *testing.T) {
		t.Setenv("LUNCHDESK_PAGE_SIZE", "0")
		_, err := Load()
		assert.ErrorContains(t, err, "page size must be positive")
	})
}

func TestDefaultsIgnoreEnvironment(t *testing.T) {
	t.Setenv("LUNCHDESK_PAGE_SIZE", "25")

	cfg := Defaults()
	assert.Equal(t, 10, cfg.Query.Limit)
	assert.Equal(t, "http://localhost:8080", cfg.Server.Address)
	assert.Equal(t, 30*time.Second, cfg.Client.Timeout)
	assert.NotEmpty(t, cfg.Session.Path)
	assert.NoError(t, cfg.Validate())
}

// chdir switches to dir for the duration of the test
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

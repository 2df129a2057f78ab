package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "session.toml"))
	require.NoError(t, err)
	assert.False(t, s.LoggedIn())
	assert.Equal(t, DefaultTheme, s.Theme)
	assert.Equal(t, DefaultLanguage, s.Language)
}

func TestSaveLoadClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.toml")

	s := New()
	s.Token = "tok-123"
	s.Admin = Admin{ID: "1", Name: "Dana Admin", Email: "dana@example.com"}
	s.Language = "bn"
	require.NoError(t, s.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.True(t, loaded.LoggedIn())
	assert.Equal(t, "tok-123", loaded.Token)
	assert.Equal(t, "Dana Admin", loaded.Admin.Name)
	assert.Equal(t, "bn", loaded.Language)
	assert.Equal(t, DefaultTheme, loaded.Theme)

	require.NoError(t, loaded.Clear(path))
	assert.False(t, loaded.LoggedIn())
	assert.Empty(t, loaded.Admin.Name)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// clearing twice is fine
	require.NoError(t, loaded.Clear(path))
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.toml")
	require.NoError(t, os.WriteFile(path, []byte("token = [unterminated"), 0o600))

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to decode session file")
}

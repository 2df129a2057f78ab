// Package session holds the signed-in operator's context: the API token, the
// admin profile and display preferences. It is hydrated from a TOML file when
// a command starts and cleared on logout; nothing about it is global.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Default display preferences
const (
	DefaultTheme    = "light"
	DefaultLanguage = "en"
)

// Admin is the profile of the signed-in operator
type Admin struct {
	ID    string `toml:"id"`
	Name  string `toml:"name"`
	Email string `toml:"email"`
}

// Session is the application context passed to commands and views
type Session struct {
	Token    string `toml:"token"`
	Admin    Admin  `toml:"admin"`
	Theme    string `toml:"theme"`
	Language string `toml:"language"`
}

// New returns an empty session with default preferences
func New() *Session {
	return &Session{
		Theme:    DefaultTheme,
		Language: DefaultLanguage,
	}
}

// Load hydrates a session from path. A missing file yields an empty session.
func Load(path string) (*Session, error) {
	s := New()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to decode session file %s: %w", path, err)
	}
	if s.Theme == "" {
		s.Theme = DefaultTheme
	}
	if s.Language == "" {
		s.Language = DefaultLanguage
	}
	return s, nil
}

// Save persists the session to path, readable only by the current user
func (s *Session) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Clear forgets the token and profile and removes the persisted file
func (s *Session) Clear(path string) error {
	s.Token = ""
	s.Admin = Admin{}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// LoggedIn reports whether the session carries a token
func (s *Session) LoggedIn() bool {
	return s != nil && s.Token != ""
}

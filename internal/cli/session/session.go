package session

import (
	"errors"
	"os"
	"path/filepath"
)

// Store holds the current auth token and persists it to a single file on
// disk. An empty token means "not authenticated"; callers treat presence of
// a token as the sole authentication signal. The token value itself is never
// logged or printed.
type Store struct {
	path  string
	token string
}

// NewStore creates a session store backed by the given token file path.
// When path is empty the default location under the user config dir is used.
func NewStore(path string) *Store {
	if path == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			path = filepath.Join(dir, "PassVault", "jwt_token")
		}
	}
	return &Store{path: path}
}

// Load reads the persisted token into memory. Any read error is treated as
// "no session": startup must never fail because of a missing or unreadable
// token file.
func (s *Store) Load() string {
	b, err := os.ReadFile(s.path)
	if err != nil {
		s.token = ""
		return ""
	}
	// Trim trailing newlines/spaces
	for len(b) > 0 {
		c := b[len(b)-1]
		if c == '\n' || c == '\r' || c == ' ' || c == '\t' {
			b = b[:len(b)-1]
			continue
		}
		break
	}
	s.token = string(b)
	return s.token
}

// Save persists the token and only then makes it the current one, so an
// authenticated request is never issued with a token that would not survive
// a restart.
func (s *Store) Save(token string) error {
	if token == "" {
		return errors.New("empty token")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return err
	}
	s.token = token
	return nil
}

// Current returns the in-memory token, empty when absent.
func (s *Store) Current() string { return s.token }

// Clear drops the session both in memory and on disk. Used on explicit
// logout and when the server rejects the token.
func (s *Store) Clear() error {
	s.token = ""
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Package store persists the session token between runs.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"ai-health-assistant/internal/domain"
	"ai-health-assistant/internal/domain/ports/repository"
)

// Compile-time check
var _ repository.TokenStore = (*FileTokenStore)(nil)

// FileTokenStore keeps the access token and its expiry in a small JSON
// file. The expiry is stored as a string-encoded millisecond epoch.
type FileTokenStore struct {
	path string
}

func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

type sessionFile struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   string `json:"expires_at"`
}

// Load reads the persisted token. A missing file maps to domain.ErrNotFound.
func (s *FileTokenStore) Load() (string, time.Time, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", time.Time{}, domain.ErrNotFound
	}
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to read session file: %w", err)
	}

	var f sessionFile
	if err := json.Unmarshal(data, &f); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to parse session file: %w", err)
	}
	if f.AccessToken == "" || f.ExpiresAt == "" {
		return "", time.Time{}, domain.ErrNotFound
	}

	ms, err := strconv.ParseInt(f.ExpiresAt, 10, 64)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to parse session expiry: %w", err)
	}
	return f.AccessToken, time.UnixMilli(ms), nil
}

// Save writes the token atomically via a temp file rename, 0600 perms.
func (s *FileTokenStore) Save(token string, expiresAt time.Time) error {
	data, err := json.Marshal(sessionFile{
		AccessToken: token,
		ExpiresAt:   strconv.FormatInt(expiresAt.UnixMilli(), 10),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal session file: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace session file: %w", err)
	}
	return nil
}

// Clear removes the session file; already absent counts as cleared.
func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

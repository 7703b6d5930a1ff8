package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// tokenFile is the on-disk shape of the persisted session.
type tokenFile struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// FileStore persists the token pair as a JSON file with owner-only
// permissions. Safe for concurrent use.
type FileStore struct {
	path string

	mu     sync.RWMutex
	tokens tokenFile
}

// NewFileStore loads any previously persisted tokens from path. A missing
// file means a logged-out session, not an error.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read token file: %w", err)
	}
	if err := json.Unmarshal(data, &s.tokens); err != nil {
		// A corrupt token file is treated as logged out rather than wedging
		// the client on startup.
		s.tokens = tokenFile{}
	}
	return s, nil
}

func (s *FileStore) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens.AccessToken
}

func (s *FileStore) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens.RefreshToken
}

// SetTokens persists a new token pair. An empty refresh token keeps the
// previously stored one, matching the backend's refresh response which may
// omit it.
func (s *FileStore) SetTokens(access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens.AccessToken = access
	if refresh != "" {
		s.tokens.RefreshToken = refresh
	}
	return s.persistLocked()
}

// Clear removes all persisted tokens and deletes the token file.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens = tokenFile{}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}

func (s *FileStore) persistLocked() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create token directory: %w", err)
	}
	data, err := json.Marshal(s.tokens)
	if err != nil {
		return fmt.Errorf("marshal tokens: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

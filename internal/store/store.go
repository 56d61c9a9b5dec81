// Package store persists the session record under the user's home directory.
//
// The record (token, role, user profile) is written as one JSON document
// under a single key so a crash mid-write cannot leave the three values
// desynchronized. Earlier builds persisted them as three independent entries
// (userToken, userRole, userInfo); Load migrates that layout on first read.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dvsdigi/dvsapp/pkg/sdk"
)

const (
	appDir      = ".dvsapp"
	sessionFile = "session.json"

	legacyTokenFile = "userToken"
	legacyRoleFile  = "userRole"
	legacyUserFile  = "userInfo"
)

// FileStore implements sdk.CredentialStore using a JSON file.
type FileStore struct {
	dir string
}

var _ sdk.CredentialStore = (*FileStore)(nil)

// NewFileStore creates a FileStore rooted at ~/.dvsapp.
func NewFileStore() (*FileStore, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	return NewFileStoreAt(filepath.Join(home, appDir))
}

// NewFileStoreAt creates a FileStore rooted at dir, creating it when absent.
func NewFileStoreAt(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create %s directory: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path() string { return filepath.Join(s.dir, sessionFile) }

// Load reads the session record. A missing record is (nil, nil), not an
// error. When no record exists but the legacy three-file layout does, it is
// migrated to a single record and the legacy files removed.
func (s *FileStore) Load() (*sdk.Credentials, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return s.loadLegacy()
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	var creds sdk.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session file: %w", err)
	}
	if creds.Token == "" {
		return nil, nil
	}
	return &creds, nil
}

// Save writes the session record atomically (write temp file, then rename).
func (s *FileStore) Save(creds *sdk.Credentials) error {
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session record: %w", err)
	}
	tmp := s.path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := os.Rename(tmp, s.path()); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to commit session file: %w", err)
	}
	return nil
}

// Clear removes the session record and any legacy entries. Best effort:
// already-absent files are not an error.
func (s *FileStore) Clear() error {
	var firstErr error
	for _, name := range []string{sessionFile, legacyTokenFile, legacyRoleFile, legacyUserFile} {
		err := os.Remove(filepath.Join(s.dir, name))
		if err != nil && !os.IsNotExist(err) && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// loadLegacy assembles a record from the old three-entry layout. The token
// entry decides authentication; role and user ride along if readable, same as
// the original client behaved.
func (s *FileStore) loadLegacy() (*sdk.Credentials, error) {
	token, err := os.ReadFile(filepath.Join(s.dir, legacyTokenFile))
	if err != nil || len(token) == 0 {
		return nil, nil
	}

	creds := &sdk.Credentials{Token: string(token), SavedAt: time.Now()}
	if role, err := os.ReadFile(filepath.Join(s.dir, legacyRoleFile)); err == nil {
		creds.Role = string(role)
	}
	if user, err := os.ReadFile(filepath.Join(s.dir, legacyUserFile)); err == nil && json.Valid(user) {
		creds.User = json.RawMessage(user)
	}

	// Rewrite as a single record; the legacy files go away on success.
	if err := s.Save(creds); err == nil {
		for _, name := range []string{legacyTokenFile, legacyRoleFile, legacyUserFile} {
			os.Remove(filepath.Join(s.dir, name))
		}
	}
	return creds, nil
}

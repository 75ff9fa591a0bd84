// Package credstore provides the durable credential store holding the
// current session. Two backends implement the same contract: a JSON
// file for workstations and a Redis record for ephemeral filesystems.
//
// No cross-process locking is provided. Concurrent writers follow
// last-writer-wins, and a process holding a stale in-memory identity
// will not observe another writer's logout until its own next
// Initialize. Decode failures are always normalized to absence.
package credstore

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/intelligrievance/grievance-client/internal/core/domain"
)

// DefaultFileName is the fixed record name under the user home directory.
const DefaultFileName = ".intelligrievance/session.json"

// FileStore persists the session as a single JSON document.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given path. An empty path
// resolves to DefaultFileName under the user home directory.
func NewFileStore(path string) *FileStore {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		path = filepath.Join(home, DefaultFileName)
	}
	return &FileStore{path: path}
}

// Save writes the session durably. The parent directory is created on
// first use; the file is written 0600 since it holds a bearer token.
func (s *FileStore) Save(session domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Load returns the persisted session. Absence, unreadable content, and
// records missing required fields all report ok == false — never an error.
func (s *FileStore) Load() (domain.Session, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return domain.Session{}, false
	}
	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return domain.Session{}, false
	}
	if !session.Valid() {
		return domain.Session{}, false
	}
	return session, true
}

// Clear removes the persisted session. Clearing an empty store is a no-op.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Package session persists the currently-logged-in-user snapshot in a
// lightweight file store outside the main relations, so the UI can
// restore a session on restart. The snapshot is written through on
// every successful login, logout and profile update.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/flashdeck/internal/errs"
	"github.com/example/flashdeck/pkg/models"
)

// Store reads and writes the session snapshot file.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save writes the account snapshot, replacing any previous one.
func (s *Store) Save(account *models.Account) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create session directory: %w", err)
		}
	}
	data, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Load returns the stored snapshot. Returns errs.ErrNotFound when no
// session has been saved.
func (s *Store) Load() (*models.Account, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	var account models.Account
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &account, nil
}

// Clear removes the snapshot. Clearing an absent session is a no-op.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

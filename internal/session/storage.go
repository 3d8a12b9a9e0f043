package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"admin-console/internal/models"
)

// State is the persisted session payload
type State struct {
	Token     string            `json:"token"`
	Principal *models.Principal `json:"user"`
}

// Storage persists the session across process restarts. Load returns
// (nil, nil) when no session has been saved.
type Storage interface {
	Load() (*State, error)
	Save(state *State) error
	Clear() error
}

// FileStorage keeps the session in a JSON file, the closest analogue to the
// browser's local storage.
type FileStorage struct {
	path string
}

// NewFileStorage creates a file-backed session storage
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (f *FileStorage) Load() (*State, error) {
	raw, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("decode session file: %w", err)
	}
	return &state, nil
}

func (f *FileStorage) Save(state *State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	// The file holds a live credential, keep it owner-only.
	if err := os.WriteFile(f.path, raw, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

func (f *FileStorage) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

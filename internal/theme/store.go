package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Store persists the preference.
type Store interface {
	// Load returns the saved mode; ok is false when nothing was saved.
	Load() (mode Mode, ok bool, err error)
	Save(mode Mode) error
}

type themeFile struct {
	Theme Mode `json:"theme"`
}

// FileStore keeps the preference in a small JSON file.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by path. The file and its directory are
// created on first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path is the backing file.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the saved mode. A missing file is not an error.
func (s *FileStore) Load() (Mode, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read theme file: %w", err)
	}

	var file themeFile
	if err := json.Unmarshal(data, &file); err != nil {
		return "", false, fmt.Errorf("failed to parse theme file: %w", err)
	}
	if file.Theme == "" {
		return "", false, nil
	}

	mode, err := ParseMode(string(file.Theme))
	if err != nil {
		return "", false, err
	}
	return mode, true, nil
}

// Save writes the mode atomically.
func (s *FileStore) Save(mode Mode) error {
	if _, err := ParseMode(string(mode)); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(themeFile{Theme: mode}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal theme: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}

// MemoryStore keeps the preference in memory.
type MemoryStore struct {
	mode Mode
}

// Load returns the stored mode; ok is false while none is stored.
func (s *MemoryStore) Load() (Mode, bool, error) {
	return s.mode, s.mode != "", nil
}

// Save replaces the stored mode.
func (s *MemoryStore) Save(mode Mode) error {
	s.mode = mode
	return nil
}

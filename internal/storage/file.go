package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"chosenoffset.com/tombs/internal/game"
)

// FileStore keeps the snapshot in a single file
type FileStore struct {
	path string
}

// NewFileStore creates a store writing to path
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("save path is required")
	}
	return &FileStore{path: path}, nil
}

// Path returns the snapshot file path
func (s *FileStore) Path() string {
	return s.path
}

// Save writes the world to the file. The snapshot is written to a
// temporary file first and renamed over the old one.
func (s *FileStore) Save(_ context.Context, world *game.World) error {
	data, err := Encode(world)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create save file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write save file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write save file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace save file: %w", err)
	}
	return nil
}

// Load reads the world from the file
func (s *FileStore) Load(_ context.Context) (*game.World, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoSavedGame
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read save file: %w", err)
	}
	return Decode(data)
}

// Delete removes the file. A missing file is not an error.
func (s *FileStore) Delete(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete save file: %w", err)
	}
	return nil
}

// Close is a no-op
func (s *FileStore) Close() error {
	return nil
}

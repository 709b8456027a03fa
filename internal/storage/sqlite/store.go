// Package sqlite keeps save games in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"chosenoffset.com/tombs/internal/game"
	"chosenoffset.com/tombs/internal/storage"
	"chosenoffset.com/tombs/internal/storage/sqlite/migrations"
)

// DefaultSlot is the save slot used by Open
const DefaultSlot = "default"

// Store persists one save slot in SQLite
type Store struct {
	sqlDB *sql.DB
	slot  string
}

// Open opens a SQLite save store and applies embedded migrations.
func Open(path string) (*Store, error) {
	return OpenSlot(path, DefaultSlot)
}

// OpenSlot opens a store for a named save slot
func OpenSlot(path, slot string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	if strings.TrimSpace(slot) == "" {
		return nil, fmt.Errorf("save slot is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(context.Background(), sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, slot: slot}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Save writes the world into the slot, replacing any previous save
func (s *Store) Save(ctx context.Context, world *game.World) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := storage.Encode(world)
	if err != nil {
		return err
	}
	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO saves (slot, version, depth, snapshot, saved_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(slot) DO UPDATE SET
    version = excluded.version,
    depth = excluded.depth,
    snapshot = excluded.snapshot,
    saved_at = excluded.saved_at`,
		s.slot, storage.SnapshotVersion, world.Depth, data, time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Load reads the world from the slot
func (s *Store) Load(ctx context.Context) (*game.World, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var data []byte
	err := s.sqlDB.QueryRowContext(ctx, "SELECT snapshot FROM saves WHERE slot = ?", s.slot).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNoSavedGame
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return storage.Decode(data)
}

// Delete removes the slot
func (s *Store) Delete(ctx context.Context) error {
	if _, err := s.sqlDB.ExecContext(ctx, "DELETE FROM saves WHERE slot = ?", s.slot); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}

var _ storage.Store = (*Store)(nil)

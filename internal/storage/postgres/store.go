// Package postgres keeps save games in a PostgreSQL database.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/lib/pq" // PostgreSQL driver

	"chosenoffset.com/tombs/internal/game"
	"chosenoffset.com/tombs/internal/storage"
)

// DefaultSlot is the save slot used by Open
const DefaultSlot = "default"

// Store persists one save slot in PostgreSQL
type Store struct {
	db   *sql.DB
	slot string
}

// Open connects to the database and initializes the schema
func Open(ctx context.Context, connectionString string) (*Store, error) {
	return OpenSlot(ctx, connectionString, DefaultSlot)
}

// OpenSlot connects for a named save slot
func OpenSlot(ctx context.Context, connectionString, slot string) (*Store, error) {
	if strings.TrimSpace(connectionString) == "" {
		return nil, fmt.Errorf("connection string is required")
	}
	if strings.TrimSpace(slot) == "" {
		return nil, fmt.Errorf("save slot is required")
	}

	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &Store{db: db, slot: slot}
	if err := store.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

func (s *Store) initSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS saves (
		slot TEXT PRIMARY KEY,
		version INTEGER NOT NULL,
		depth INTEGER NOT NULL,
		snapshot BYTEA NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	`
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// Close closes the database connection
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save writes the world into the slot, replacing any previous save
func (s *Store) Save(ctx context.Context, world *game.World) error {
	data, err := storage.Encode(world)
	if err != nil {
		return err
	}

	query := `
	INSERT INTO saves (slot, version, depth, snapshot)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (slot)
	DO UPDATE SET
		version = $2, depth = $3, snapshot = $4,
		updated_at = NOW()
	`
	if _, err := s.db.ExecContext(ctx, query, s.slot, storage.SnapshotVersion, world.Depth, data); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Load reads the world from the slot
func (s *Store) Load(ctx context.Context) (*game.World, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT snapshot FROM saves WHERE slot = $1`, s.slot).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNoSavedGame
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return storage.Decode(data)
}

// Delete removes the slot
func (s *Store) Delete(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM saves WHERE slot = $1`, s.slot); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}

var _ storage.Store = (*Store)(nil)

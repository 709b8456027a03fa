// Package storage persists whole-world snapshots. A snapshot is the world
// encoded as one opaque CBOR blob; the stores only move blobs around.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"chosenoffset.com/tombs/internal/game"
)

// SnapshotVersion is written into every snapshot
const SnapshotVersion = 1

// ErrNoSavedGame is returned when there is no snapshot or it cannot be read
var ErrNoSavedGame = errors.New("no saved game")

// Store saves and loads a single world snapshot
type Store interface {
	Save(ctx context.Context, world *game.World) error
	Load(ctx context.Context) (*game.World, error)
	Delete(ctx context.Context) error
	Close() error
}

type envelope struct {
	Version int         `cbor:"1,keyasint"`
	World   *game.World `cbor:"2,keyasint"`
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("storage: cbor encoder: %v", err))
	}
	decMode, err = cbor.DecOptions{MaxArrayElements: 1 << 20}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("storage: cbor decoder: %v", err))
	}
}

// Encode serializes the world into a snapshot
func Encode(world *game.World) ([]byte, error) {
	if world == nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", game.ErrInvalidWorld)
	}
	data, err := encMode.Marshal(envelope{Version: SnapshotVersion, World: world})
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// Decode restores a world from a snapshot. Any unreadable snapshot is
// reported as ErrNoSavedGame.
func Decode(data []byte) (*game.World, error) {
	if len(data) == 0 {
		return nil, ErrNoSavedGame
	}

	var env envelope
	if err := decMode.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoSavedGame, err)
	}
	if env.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: unsupported snapshot version %d", ErrNoSavedGame, env.Version)
	}
	w := env.World
	if w == nil || w.Grid == nil || w.Store == nil || w.Store.Len() == 0 {
		return nil, fmt.Errorf("%w: incomplete snapshot", ErrNoSavedGame)
	}
	return w, nil
}

package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"chosenoffset.com/tombs/internal/entity"
	"chosenoffset.com/tombs/internal/game"
	"chosenoffset.com/tombs/internal/world/dungeon"
)

// newTestWorld plays a few moves into a fresh game so the snapshot carries
// every component: a confused monster, an equipped and a carried item, an
// explored map and some messages.
func newTestWorld(t *testing.T) *game.World {
	t.Helper()
	g, err := game.New(game.Options{Seed: 2024})
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	w := g.World
	scene := w.Scene()
	catalog := dungeon.DefaultCatalog()

	for i := 1; i < w.Store.Len(); i++ {
		if e := w.Store.At(i); e.AI != nil {
			e.AI = entity.ConfusedAI(entity.ConfusedAI(e.AI, 3), 2)
			break
		}
	}

	px, py := w.Player().Pos()
	for _, id := range []string{"sword", "heal"} {
		item := catalog.Item(id).Spawn(px, py)
		idx := w.Store.Push(item)
		if err := g.Engine.PickUpIndex(scene, idx); err != nil {
			t.Fatalf("Failed to pick up %s: %v", id, err)
		}
	}
	w.Player().Fighter.XP = 17
	return w
}

func TestCodecRoundTrip(t *testing.T) {
	want := newTestWorld(t)

	data, err := Encode(want)
	if err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}

	if !reflect.DeepEqual(got, want) {
		t.Error("Expected the decoded world to equal the original")
	}
	if got.Inventory.Len() != 2 || !got.Inventory.At(0).IsEquipped() {
		t.Errorf("Expected an equipped sword and a potion, got %d items", got.Inventory.Len())
	}

	again, err := Encode(got)
	if err != nil {
		t.Fatal(err)
	}
	if string(again) != string(data) {
		t.Error("Expected re-encoding to produce identical bytes")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"garbage", []byte("definitely not cbor")},
		{"truncated", func() []byte {
			data, _ := Encode(newTestWorld(t))
			return data[:len(data)/2]
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.data); !errors.Is(err, ErrNoSavedGame) {
				t.Errorf("Expected ErrNoSavedGame, got %v", err)
			}
		})
	}
}

func TestDecodeRejectsOtherVersions(t *testing.T) {
	data, err := encMode.Marshal(envelope{Version: SnapshotVersion + 1, World: newTestWorld(t)})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Decode(data); !errors.Is(err, ErrNoSavedGame) {
		t.Errorf("Expected ErrNoSavedGame, got %v", err)
	}
}

func TestEncodeNilWorld(t *testing.T) {
	if _, err := Encode(nil); !errors.Is(err, game.ErrInvalidWorld) {
		t.Errorf("Expected ErrInvalidWorld, got %v", err)
	}
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "savegame.dat")
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	if _, err := store.Load(ctx); !errors.Is(err, ErrNoSavedGame) {
		t.Fatalf("Expected ErrNoSavedGame before saving, got %v", err)
	}

	want := newTestWorld(t)
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Error("Expected the loaded world to equal the saved one")
	}

	// A second save replaces the first
	want.Depth = 4
	if err := store.Save(ctx, want); err != nil {
		t.Fatal(err)
	}
	got, _ = store.Load(ctx)
	if got.Depth != 4 {
		t.Errorf("Expected depth 4 after overwrite, got %d", got.Depth)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("Expected only the save file in the directory, got %d entries", len(entries))
	}

	if err := store.Delete(ctx); err != nil {
		t.Fatalf("Failed to delete: %v", err)
	}
	if _, err := store.Load(ctx); !errors.Is(err, ErrNoSavedGame) {
		t.Errorf("Expected ErrNoSavedGame after delete, got %v", err)
	}
	if err := store.Delete(ctx); err != nil {
		t.Errorf("Expected deleting twice to succeed, got %v", err)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "savegame.dat")
	if err := os.WriteFile(path, []byte{0xff, 0x00, 0x13}, 0o644); err != nil {
		t.Fatal(err)
	}
	store, _ := NewFileStore(path)
	if _, err := store.Load(context.Background()); !errors.Is(err, ErrNoSavedGame) {
		t.Errorf("Expected ErrNoSavedGame for a corrupt file, got %v", err)
	}
}

func TestNewFileStoreRequiresPath(t *testing.T) {
	if _, err := NewFileStore(""); err == nil {
		t.Error("Expected an error for an empty path")
	}
}

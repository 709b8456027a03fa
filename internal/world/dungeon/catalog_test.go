package dungeon

import (
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/tombs/internal/entity"
)

func TestFromDungeonLevel(t *testing.T) {
	table := Table{{Level: 1, Value: 2}, {Level: 4, Value: 3}, {Level: 6, Value: 5}}

	tests := []struct {
		depth int
		want  int
	}{
		{0, 0},
		{1, 2},
		{3, 2},
		{4, 3},
		{5, 3},
		{6, 5},
		{40, 5},
	}
	for _, tt := range tests {
		if got := FromDungeonLevel(table, tt.depth); got != tt.want {
			t.Errorf("depth %d: expected %d, got %d", tt.depth, tt.want, got)
		}
	}

	if got := FromDungeonLevel(nil, 3); got != 0 {
		t.Errorf("Expected 0 from an empty table, got %d", got)
	}
	if got := Constant(7).At(9); got != 7 {
		t.Errorf("Expected constant 7, got %d", got)
	}
}

func TestDefaultCatalog(t *testing.T) {
	cat := DefaultCatalog()

	troll := cat.Monster("troll")
	if troll == nil {
		t.Fatal("Expected a troll definition")
	}
	if troll.HP != 16 || troll.Defense != 1 || troll.Power != 4 || troll.XP != 100 {
		t.Errorf("Unexpected troll stats: %+v", troll)
	}
	if got := troll.Weight.At(1); got != 20 {
		t.Errorf("Expected troll weight 20 at depth 1, got %d", got)
	}
	if got := troll.Weight.At(5); got != 30 {
		t.Errorf("Expected troll weight 30 at depth 5, got %d", got)
	}

	if got := cat.MaxRoomMonsters.At(1); got != 3 {
		t.Errorf("Expected 3 monsters per room at depth 1, got %d", got)
	}
	if got := cat.MaxRoomItems.At(1); got != 2 {
		t.Errorf("Expected 2 items per room at depth 1, got %d", got)
	}
	if got := cat.MaxRoomMonsters.At(6); got != 5 {
		t.Errorf("Expected 5 monsters per room at depth 6, got %d", got)
	}

	sword := cat.Item("sword")
	if sword == nil || sword.Equipment == nil {
		t.Fatal("Expected a sword with equipment")
	}
	e := sword.Spawn(3, 4)
	if e.Item != entity.ItemSword || e.Equipment.Slot != entity.SlotRightHand || e.Equipment.PowerBonus != 3 {
		t.Errorf("Unexpected sword entity: %+v %+v", e, e.Equipment)
	}
	if !e.AlwaysVisible || e.Blocks {
		t.Error("Expected items to be always visible and non-blocking")
	}
}

func TestDepthOneWeights(t *testing.T) {
	cat := DefaultCatalog()

	monsters := map[string]int{}
	for i, w := range cat.MonsterWeights(1) {
		monsters[cat.Monsters[i].ID] = w
	}
	if monsters["orc"] != 80 || monsters["troll"] != 20 {
		t.Errorf("Expected orcs 80 and trolls 20 at depth 1, got %v", monsters)
	}

	items := map[string]int{}
	for i, w := range cat.ItemWeights(1) {
		items[cat.Items[i].ID] = w
	}
	want := map[string]int{"heal": 70, "lightning": 10, "fireball": 10, "confuse": 10, "sword": 0, "shield": 0, "dagger": 0}
	for id, w := range want {
		if items[id] != w {
			t.Errorf("Expected %s weight %d at depth 1, got %d", id, w, items[id])
		}
	}
}

func TestMonsterSpawn(t *testing.T) {
	orc := DefaultCatalog().Monster("orc").Spawn(2, 2)
	if orc.Glyph != 'o' || !orc.Blocks || !orc.Alive {
		t.Errorf("Unexpected orc entity: %+v", orc)
	}
	if orc.Fighter.HP != 10 || orc.Fighter.BaseMaxHP != 10 || orc.Fighter.OnDeath != entity.DeathMonster {
		t.Errorf("Unexpected orc fighter: %+v", orc.Fighter)
	}
	if orc.AI == nil || orc.AI.Kind != entity.AIBasic {
		t.Error("Expected orc to have a basic AI")
	}
}

func TestParseCatalogSortsTables(t *testing.T) {
	data := `{
		"name": "unsorted",
		"max_room_monsters": [{"level": 5, "value": 4}, {"level": 1, "value": 1}],
		"monsters": [{"id": "rat", "name": "rat", "glyph": "r", "color": [10, 10, 10], "hp": 2, "weight": [{"level": 1, "value": 1}]}]
	}`
	cat, err := ParseCatalog([]byte(data))
	if err != nil {
		t.Fatalf("Failed to parse catalog: %v", err)
	}
	if got := cat.MaxRoomMonsters.At(6); got != 4 {
		t.Errorf("Expected 4 after sorting, got %d", got)
	}
	if got := cat.MaxRoomMonsters.At(2); got != 1 {
		t.Errorf("Expected 1 after sorting, got %d", got)
	}
}

func TestParseCatalogRejectsBadData(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{`},
		{"no monsters", `{"name": "empty"}`},
		{"bad item kind", `{
			"monsters": [{"id": "rat", "name": "rat", "glyph": "r", "hp": 2}],
			"items": [{"id": "wand", "name": "wand", "glyph": "-", "kind": "teleport"}]
		}`},
		{"bad slot", `{
			"monsters": [{"id": "rat", "name": "rat", "glyph": "r", "hp": 2}],
			"items": [{"id": "hat", "name": "hat", "glyph": "^", "kind": "shield", "equipment": {"slot": "tail"}}]
		}`},
		{"long glyph", `{"monsters": [{"id": "rat", "name": "rat", "glyph": "rr", "hp": 2}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseCatalog([]byte(tt.data)); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestLoadCatalogFromFile(t *testing.T) {
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected an error for a missing catalog")
	}

	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, defaultCatalogJSON, 0o644); err != nil {
		t.Fatal(err)
	}
	cat, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}
	if len(cat.Monsters) != 2 {
		t.Errorf("Expected 2 monsters, got %d", len(cat.Monsters))
	}
}

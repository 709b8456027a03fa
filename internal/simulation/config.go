// Package simulation provides configuration for the game simulation rules.
// Rules are loaded from an optional JSON file layered over the defaults.
package simulation

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds all simulation rules for a game
type Config struct {
	Map         MapConfig         `json:"map"`
	Player      PlayerConfig      `json:"player"`
	Items       ItemConfig        `json:"items"`
	Progression ProgressionConfig `json:"progression"`
	AI          AIConfig          `json:"ai"`
	Perception  PerceptionConfig  `json:"perception"`
}

// MapConfig defines dungeon dimensions and room generation limits
type MapConfig struct {
	Width       int `json:"width"`
	Height      int `json:"height"`
	MaxRooms    int `json:"max_rooms"`     // Placement attempts per level
	RoomMinSize int `json:"room_min_size"` // Inclusive
	RoomMaxSize int `json:"room_max_size"` // Inclusive
}

// PlayerConfig defines the starting character
type PlayerConfig struct {
	HP      int `json:"hp"`
	Defense int `json:"defense"`
	Power   int `json:"power"`
}

// ItemConfig defines consumable effect strengths
type ItemConfig struct {
	HealAmount      int     `json:"heal_amount"`
	LightningDamage int     `json:"lightning_damage"`
	LightningRange  float64 `json:"lightning_range"`
	ConfuseTurns    int     `json:"confuse_turns"`
	ConfuseRange    float64 `json:"confuse_range"`
	FireballRadius  float64 `json:"fireball_radius"`
	FireballDamage  int     `json:"fireball_damage"`
}

// ProgressionConfig defines leveling thresholds and rewards
type ProgressionConfig struct {
	LevelUpBase   int `json:"level_up_base"`
	LevelUpFactor int `json:"level_up_factor"`
	HPGain        int `json:"hp_gain"`
	PowerGain     int `json:"power_gain"`
	DefenseGain   int `json:"defense_gain"`
}

// AIConfig defines monster behaviour
type AIConfig struct {
	AttackDistance float64 `json:"attack_distance"` // Basic AI chases beyond this range and attacks within it
}

// PerceptionConfig defines how far the player sees
type PerceptionConfig struct {
	TorchRadius int  `json:"torch_radius"`
	LightWalls  bool `json:"light_walls"`
}

// DefaultConfig returns the classic dungeon rules
func DefaultConfig() *Config {
	return &Config{
		Map: MapConfig{
			Width:       80,
			Height:      43,
			MaxRooms:    30,
			RoomMinSize: 6,
			RoomMaxSize: 10,
		},
		Player: PlayerConfig{
			HP:      30,
			Defense: 2,
			Power:   5,
		},
		Items: ItemConfig{
			HealAmount:      40,
			LightningDamage: 40,
			LightningRange:  5,
			ConfuseTurns:    10,
			ConfuseRange:    8,
			FireballRadius:  3,
			FireballDamage:  25,
		},
		Progression: ProgressionConfig{
			LevelUpBase:   200,
			LevelUpFactor: 150,
			HPGain:        20,
			PowerGain:     1,
			DefenseGain:   1,
		},
		AI: AIConfig{
			AttackDistance: 2.0,
		},
		Perception: PerceptionConfig{
			TorchRadius: 10,
			LightWalls:  true,
		},
	}
}

// LoadConfig loads simulation config from a JSON file
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks that the rules describe a playable dungeon
func (c *Config) Validate() error {
	m := c.Map
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("map size must be positive, got %dx%d", m.Width, m.Height)
	}
	if m.RoomMinSize < 3 || m.RoomMaxSize < m.RoomMinSize {
		return fmt.Errorf("invalid room size range [%d, %d]", m.RoomMinSize, m.RoomMaxSize)
	}
	if m.RoomMaxSize >= m.Width || m.RoomMaxSize >= m.Height {
		return fmt.Errorf("rooms up to %d tiles do not fit a %dx%d map", m.RoomMaxSize, m.Width, m.Height)
	}
	if c.Player.HP <= 0 {
		return fmt.Errorf("player hp must be positive, got %d", c.Player.HP)
	}
	return nil
}

// LevelUpThreshold returns the xp needed to leave the given level
func (c *Config) LevelUpThreshold(level int) int {
	return c.Progression.LevelUpBase + level*c.Progression.LevelUpFactor
}

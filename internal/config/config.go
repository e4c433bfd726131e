// Package config provides YAML-based configuration loading and difficulty
// presets for the runner.
package config

// Config contains all tunable parameters of the runner game.
// Distances are terminal cells, times are seconds, so speeds are cells per
// second and accelerations cells per second squared.
type Config struct {
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
	Player    Player    `yaml:"player"`
	Ground    Ground    `yaml:"ground"`
	Score     Score     `yaml:"score"`
}

// Physics defines gravity, jumping, and the difficulty ramp.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`        // Downward acceleration (cells/s²)
	JumpImpulse  float64 `yaml:"jump_impulse"`   // Upward velocity on jump (cells/s, negative = up)
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal fall velocity (cells/s)
	BaseSpeed    float64 `yaml:"base_speed"`     // Scroll speed at session start (cells/s)
	SpeedRamp    float64 `yaml:"speed_ramp"`     // Scroll speed gained per second (cells/s²)
}

// Obstacles defines obstacle sizing and spawn spacing.
type Obstacles struct {
	MinWidth      int `yaml:"min_width"`
	MaxWidth      int `yaml:"max_width"`
	MinHeight     int `yaml:"min_height"`
	MaxHeight     int `yaml:"max_height"`
	MinGap        int `yaml:"min_gap"`        // Minimum spawn gap beyond the right edge (cells)
	MaxGap        int `yaml:"max_gap"`        // Maximum spawn gap beyond the right edge (cells)
	SpawnLead     int `yaml:"spawn_lead"`     // How far the last obstacle must scroll in before the next spawns
	DespawnMargin int `yaml:"despawn_margin"` // How far past the left edge obstacles survive (cells)
}

// Player defines the player sprite placement and hitbox.
type Player struct {
	X            int `yaml:"x"`             // Fixed horizontal position (cells from left)
	Width        int `yaml:"width"`         // Hitbox width
	Height       int `yaml:"height"`        // Hitbox height
	GroundOffset int `yaml:"ground_offset"` // Rows between the bottom of the screen and the ground line
}

// Ground defines the cosmetic ground band.
type Ground struct {
	TileWidth int `yaml:"tile_width"` // Parallax pattern repeats every this many cells
}

// Score defines score accrual.
type Score struct {
	Rate float64 `yaml:"rate"` // Points per cell of distance traveled
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a user-supplied name to a preset.
// Returns false for names that are not a known preset.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name), true
	}
	return "", false
}

// ApplyPreset adjusts the config for a difficulty preset. The difficulty
// ramp is linear and unbounded; presets shift its starting speed and slope,
// and "fixed" disables progression entirely.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.BaseSpeed = 18
		cfg.Physics.SpeedRamp = 0.20
		cfg.Obstacles.MinGap = 34
		cfg.Obstacles.MaxGap = 60
	case DifficultyNormal:
		// Defaults already describe normal play.
	case DifficultyHard:
		cfg.Physics.BaseSpeed = 27
		cfg.Physics.SpeedRamp = 0.55
		cfg.Obstacles.MinGap = 22
		cfg.Obstacles.MaxGap = 44
	case DifficultyFixed:
		cfg.Physics.SpeedRamp = 0
	}
}

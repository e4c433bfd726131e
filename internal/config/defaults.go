package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// Default returns the default runner configuration.
// Tuned for an 80x24 terminal at 60 ticks per second.
func Default() Config {
	return Config{
		Physics: Physics{
			Gravity:      60.0,
			JumpImpulse:  -26.0,
			MaxFallSpeed: 48.0,
			BaseSpeed:    22.0,
			SpeedRamp:    0.35,
		},
		Obstacles: Obstacles{
			MinWidth:      1,
			MaxWidth:      3,
			MinHeight:     2,
			MaxHeight:     4,
			MinGap:        26,
			MaxGap:        52,
			SpawnLead:     10,
			DespawnMargin: 4,
		},
		Player: Player{
			X:            8,
			Width:        3,
			Height:       3,
			GroundOffset: 2,
		},
		Ground: Ground{
			TileWidth: 4,
		},
		Score: Score{
			Rate: 1.0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultMatchesEmbedded(t *testing.T) {
	// The embedded YAML and the hardcoded fallback must agree, otherwise
	// behavior depends on which one the loader reached.
	var fromYAML Config
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}

	if fromYAML != Default() {
		t.Errorf("embedded default differs from hardcoded default:\nyaml: %+v\ncode: %+v", fromYAML, Default())
	}
}

func TestDefaultSanity(t *testing.T) {
	cfg := Default()

	if cfg.Physics.Gravity <= 0 {
		t.Error("gravity must be positive (pulls the player down)")
	}
	if cfg.Physics.JumpImpulse >= 0 {
		t.Error("jump impulse must be negative (up)")
	}
	if cfg.Physics.BaseSpeed <= 0 {
		t.Error("base speed must be positive")
	}
	if cfg.Obstacles.MinGap > cfg.Obstacles.MaxGap {
		t.Error("min gap must not exceed max gap")
	}
	if cfg.Obstacles.MinWidth > cfg.Obstacles.MaxWidth {
		t.Error("min width must not exceed max width")
	}
	if cfg.Obstacles.MinHeight > cfg.Obstacles.MaxHeight {
		t.Error("min height must not exceed max height")
	}
	if cfg.Player.GroundOffset < 1 {
		t.Error("ground offset must leave at least one row below the ground line")
	}
	if cfg.Ground.TileWidth < 1 {
		t.Error("tile width must be at least one cell")
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	data := []byte("physics:\n  gravity: 99.5\n  base_speed: 30\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("cannot write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Physics.Gravity != 99.5 {
		t.Errorf("gravity = %v, expected 99.5", cfg.Physics.Gravity)
	}
	if cfg.Physics.BaseSpeed != 30 {
		t.Errorf("base speed = %v, expected 30", cfg.Physics.BaseSpeed)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load("/nonexistent/runner.yaml"); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}
}

func TestLoadCustomPathInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "broken.yaml")

	if err := os.WriteFile(path, []byte("physics: [not a map"), 0o600); err != nil {
		t.Fatalf("cannot write temp config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with invalid YAML should fail")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		name string
		want DifficultyPreset
		ok   bool
	}{
		{"easy", DifficultyEasy, true},
		{"normal", DifficultyNormal, true},
		{"hard", DifficultyHard, true},
		{"fixed", DifficultyFixed, true},
		{"", "", false},
		{"nightmare", "", false},
	}

	for _, tc := range tests {
		got, ok := ParsePreset(tc.name)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParsePreset(%q) = (%q, %v), expected (%q, %v)", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	normal := Default()
	ApplyPreset(&normal, DifficultyNormal)
	if normal != Default() {
		t.Error("normal preset should leave the defaults untouched")
	}

	easy := Default()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Physics.BaseSpeed >= normal.Physics.BaseSpeed {
		t.Error("easy preset should start slower than normal")
	}
	if easy.Obstacles.MinGap <= normal.Obstacles.MinGap {
		t.Error("easy preset should leave wider gaps than normal")
	}

	hard := Default()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Physics.BaseSpeed <= normal.Physics.BaseSpeed {
		t.Error("hard preset should start faster than normal")
	}
	if hard.Physics.SpeedRamp <= normal.Physics.SpeedRamp {
		t.Error("hard preset should ramp faster than normal")
	}

	fixed := Default()
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.Physics.SpeedRamp != 0 {
		t.Error("fixed preset should disable the speed ramp")
	}
	if fixed.Physics.BaseSpeed != normal.Physics.BaseSpeed {
		t.Error("fixed preset should keep the base speed")
	}
}

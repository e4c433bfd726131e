package runner

import (
	"strings"
	"testing"

	"github.com/runline/runline/internal/config"
	"github.com/runline/runline/internal/core"
)

func TestRenderBeforeReset(t *testing.T) {
	g := New(config.Default(), nil)
	screen := core.NewScreen(80, 24)

	g.Render(screen) // must not panic

	if strings.TrimSpace(screen.String()) != "" {
		t.Error("render before the first Reset should produce a blank frame")
	}
}

func TestRenderDrawsScene(t *testing.T) {
	g := newTestGame(4)
	g.Step(core.NewInputFrame(), testDT)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Ground line spans the full width.
	for x := 0; x < 80; x++ {
		if screen.Get(x, g.groundY) != GroundChar {
			t.Fatalf("ground missing at x=%d", x)
		}
	}

	// Player sprite sits at its fixed column.
	foundBody := false
	for y := 0; y < 24; y++ {
		if screen.Get(g.cfg.Player.X+1, y) == PlayerBody {
			foundBody = true
			break
		}
	}
	if !foundBody {
		t.Error("player sprite not drawn")
	}

	// HUD on the top row.
	if !strings.Contains(screen.Row(0), "Score:") {
		t.Error("HUD missing the score")
	}
	if !strings.Contains(screen.Row(0), "Spd:") {
		t.Error("HUD missing the speed")
	}
}

func TestRenderObstacle(t *testing.T) {
	g := newTestGame(4)
	g.spawner.obstacles = append(g.spawner.obstacles, Obstacle{X: 40, W: 2, H: 3})

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	for dy := 0; dy < 3; dy++ {
		for dx := 0; dx < 2; dx++ {
			if screen.Get(40+dx, g.groundY-3+dy) != ObstacleChar {
				t.Fatalf("obstacle cell missing at (%d, %d)", 40+dx, g.groundY-3+dy)
			}
		}
	}

	// Leading edge carries the highlight color.
	if screen.GetCell(40, g.groundY-1).Color != core.ColorBrightGreen {
		t.Error("left column should use the highlight color")
	}
	if screen.GetCell(41, g.groundY-1).Color != core.ColorGreen {
		t.Error("body should use the base color")
	}
}

func TestRenderPausedOverlay(t *testing.T) {
	g := newTestGame(4)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause, testDT)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused overlay not drawn")
	}
}

func TestRenderGameOverDimsScreen(t *testing.T) {
	g := newTestGame(4)
	crash(t, g)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("game over overlay not drawn")
	}
	if !strings.Contains(out, "Press R to restart") {
		t.Error("restart hint not drawn")
	}

	// Everything outside the message box is dimmed to gray.
	if screen.GetCell(0, g.groundY).Color != core.ColorGray {
		t.Error("background should be dimmed on game over")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New(config.Default(), nil)
	g.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 8, TickRate: 60, Seed: 1})

	screen := core.NewScreen(30, 8)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("too-small notice not drawn")
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	g := newTestGame(4)
	for i := 0; i < 50; i++ {
		g.Step(core.NewInputFrame(), testDT)
	}

	before := g.Snapshot()
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	g.Render(screen)

	if g.Snapshot() != before {
		t.Error("Render must not mutate game state")
	}
}

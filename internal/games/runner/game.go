// Package runner implements the classic endless runner: the player sprints
// along an auto-scrolling course and must jump over ground obstacles. Speed
// ramps up the longer a session survives, score tracks distance traveled,
// and the single best score persists across sessions.
package runner

import (
	"strconv"

	"github.com/runline/runline/internal/config"
	"github.com/runline/runline/internal/core"
)

// HighScoreKey is the storage key for the persisted best score.
const HighScoreKey = "classic-highscore"

// maxStepSeconds caps a single simulation step. A hitched frame advances the
// world at most this far, so the player cannot tunnel through an obstacle.
const maxStepSeconds = 0.040

// Minimum playable viewport. Below this the simulation holds and the
// renderer asks for a bigger window.
const (
	MinViewportW = 40
	MinViewportH = 12
)

// KV is the storage port the runner persists through. Implementations must
// treat a missing key as ("", nil), not an error.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// HighScore reads the persisted best score from store. A nil store, a
// missing key, and an unparseable value all report 0; the scalar must never
// block a session from starting.
func HighScore(store KV) int {
	if store == nil {
		return 0
	}
	raw, err := store.Get(HighScoreKey)
	if err != nil || raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Game implements the runner game logic. It owns the whole session state;
// the platform layer drives it through Reset/Step/Render and never mutates
// it directly.
type Game struct {
	playerY    float64 // Player vertical position (relative to ground, negative = airborne)
	playerVel  float64 // Player vertical velocity (cells/s, negative = up)
	isGrounded bool    // Whether player is on the ground
	spawner    *Spawner
	speed      float64 // Current scroll speed (cells/s)
	distance   float64 // Total distance traveled this session (cells)
	score      int     // Current score, derived from distance
	best       int     // Best score across all sessions
	gameOver   bool    // Whether the session has ended
	paused     bool    // Whether the session is paused
	tooSmall   bool    // Whether the viewport is below the playable minimum

	runtime      core.RuntimeConfig
	cfg          config.Config
	store        KV      // May be nil (play without persistence)
	groundY      int     // Y position of the ground line in screen space
	groundScroll float64 // Parallax offset of the ground pattern, in [0, tileWidth)
	tickCount    int     // Simulation steps since session start
	elapsed      float64 // Simulated seconds since session start
	legFrame     int     // Animation frame for running legs
}

// New creates a runner bound to a config and a storage port. store may be
// nil; the best score then lives only in memory. The persisted best is read
// exactly once, here.
func New(cfg config.Config, store KV) *Game {
	return &Game{
		cfg:   cfg,
		store: store,
		best:  HighScore(store),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "classic"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Classic Runner"
}

// Reset starts a completely new session: the RNG stream restarts from
// runtime.Seed and the course is rebuilt for the given viewport.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.groundY = runtime.ScreenH - g.cfg.Player.GroundOffset

	if g.spawner == nil {
		g.spawner = NewSpawner(runtime.Seed, runtime.ScreenW, g.cfg.Obstacles)
	} else {
		g.spawner.SetViewport(runtime.ScreenW)
		g.spawner.Reset(runtime.Seed)
	}

	g.checkViewport()
	g.startRun()
}

// Resize re-derives the viewport and ground line without disturbing the
// session: score, speed, and the obstacle course survive a window resize.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.groundY = h - g.cfg.Player.GroundOffset
	if g.spawner != nil {
		g.spawner.SetViewport(w)
	}
	g.checkViewport()
}

// checkViewport updates the too-small flag from the current dimensions.
func (g *Game) checkViewport() {
	g.tooSmall = g.runtime.ScreenW < MinViewportW || g.runtime.ScreenH < MinViewportH
}

// startRun puts a fresh session in place on the current course.
func (g *Game) startRun() {
	g.playerY = 0 // On ground
	g.playerVel = 0
	g.isGrounded = true
	g.speed = g.cfg.Physics.BaseSpeed
	g.distance = 0
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.groundScroll = 0
	g.tickCount = 0
	g.elapsed = 0
	g.legFrame = 0
}

// restart begins a new session without reseeding: the obstacle course keeps
// drawing from the same RNG stream, so seed + input script still replays
// deterministically across restarts.
func (g *Game) restart() {
	g.spawner.Restart()
	g.startRun()
}

// Step advances the simulation by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	// Restart works from any state: running, paused, or game over.
	if in.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	// Pause toggles only while a session is live.
	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Clamp the step so stalled frames stay stable.
	if dt > maxStepSeconds {
		dt = maxStepSeconds
	}
	if dt < 0 {
		dt = 0
	}

	g.tickCount++
	g.elapsed += dt
	g.legFrame = (g.legFrame + 1) % 10 // Animation cycle

	// Handle jump input (only when grounded; mid-air presses no-op)
	if in.Has(core.ActionJump) && g.isGrounded {
		g.playerVel = g.cfg.Physics.JumpImpulse
		g.isGrounded = false
	}

	// Apply physics
	if !g.isGrounded {
		g.playerVel += g.cfg.Physics.Gravity * dt
		if g.playerVel > g.cfg.Physics.MaxFallSpeed {
			g.playerVel = g.cfg.Physics.MaxFallSpeed
		}
		g.playerY += g.playerVel * dt

		// Check if landed (only while moving down; a fresh jump starts at y=0)
		if g.playerY >= 0 && g.playerVel >= 0 {
			g.playerY = 0
			g.playerVel = 0
			g.isGrounded = true
		}

		// Keep the sprite inside the viewport on extreme configs
		minY := float64(g.cfg.Player.Height - g.groundY)
		if g.playerY < minY {
			g.playerY = minY
			if g.playerVel < 0 {
				g.playerVel = 0
			}
		}
	}

	// Scroll the course and ramp up difficulty
	g.spawner.Advance(g.speed * dt)
	g.speed += g.cfg.Physics.SpeedRamp * dt
	g.spawner.TrySpawn()

	// Score accrues with distance traveled
	g.distance += g.speed * dt
	g.score = int(g.distance * g.cfg.Score.Rate)

	// Cosmetic ground parallax
	if tile := g.cfg.Ground.TileWidth; tile > 0 {
		g.groundScroll += g.speed * dt
		for g.groundScroll >= float64(tile) {
			g.groundScroll -= float64(tile)
		}
	}

	// Check collisions
	if g.spawner.Collides(g.playerRect(), g.groundY) {
		g.endRun()
	}

	return core.StepResult{State: g.State()}
}

// playerRect returns the player's collision rectangle in screen coordinates.
// playerY is relative to the ground line (negative = above ground).
func (g *Game) playerRect() core.FRect {
	top := float64(g.groundY-g.cfg.Player.Height) + g.playerY
	return core.NewFRect(float64(g.cfg.Player.X), top, float64(g.cfg.Player.Width), float64(g.cfg.Player.Height))
}

// endRun terminates the session and persists a freshly beaten best score.
func (g *Game) endRun() {
	g.gameOver = true
	if g.score > g.best {
		g.best = g.score
		g.persistBest()
	}
}

// persistBest is best effort: a broken store must not take down the run,
// and the in-memory best stays correct either way.
func (g *Game) persistBest() {
	if g.store == nil {
		return
	}
	_ = g.store.Set(HighScoreKey, strconv.Itoa(g.best))
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Best:     g.best,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

package core

// Game is the interface between the playable core and the platform layer.
// The core contains pure logic with no external dependencies (especially no
// Bubble Tea); the platform handles input mapping, timing, and display.
type Game interface {
	// ID returns a unique identifier, used for persistence keys and
	// CLI commands.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh session. Called once before the first tick and
	// whenever the platform wants a completely new game (new seed included).
	Reset(cfg RuntimeConfig)

	// Resize re-derives the viewport dimensions without disturbing the
	// session in progress.
	Resize(w, h int)

	// Step advances the simulation by the given elapsed time in seconds.
	// Input is abstracted to platform-level actions (Jump, Pause, Restart).
	// The core clamps dt internally to stay stable on slow frames.
	Step(in InputFrame, dt float64) StepResult

	// Render draws the current state into the provided screen buffer.
	// It must not mutate game state and must tolerate being called before
	// the first Reset.
	Render(dst *Screen)

	// State returns the current session state.
	State() GameState
}

package runner

// SessionState labels the lifecycle phase of a session.
type SessionState string

const (
	StateRunning  SessionState = "running"
	StatePaused   SessionState = "paused"
	StateGameOver SessionState = "game_over"
	StateTooSmall SessionState = "paused_small_window"
)

// Snapshot captures the complete observable session state for determinism
// testing and replay: same seed + same input script must reproduce the same
// snapshot at every tick.
type Snapshot struct {
	Tick      int
	Score     int
	Best      int
	Speed     float64
	PlayerY   float64
	PlayerVel float64
	Grounded  bool
	Obstacles int     // Number of live obstacles
	FirstX    float64 // Left edge of the leftmost obstacle (0 when none)
	State     SessionState
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StateRunning
	switch {
	case g.tooSmall:
		state = StateTooSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:      g.tickCount,
		Score:     g.score,
		Best:      g.best,
		Speed:     g.speed,
		PlayerY:   g.playerY,
		PlayerVel: g.playerVel,
		Grounded:  g.isGrounded,
		State:     state,
	}

	if g.spawner != nil {
		obstacles := g.spawner.Obstacles()
		snap.Obstacles = len(obstacles)
		if len(obstacles) > 0 {
			snap.FirstX = obstacles[0].X
		}
	}

	return snap
}

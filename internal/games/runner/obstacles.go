package runner

import (
	"math/rand"

	"github.com/runline/runline/internal/config"
	"github.com/runline/runline/internal/core"
)

// Obstacle is a ground-anchored block the player must jump over.
// X is the world-space left edge in cells; it moves smoothly across cell
// boundaries as the course scrolls.
type Obstacle struct {
	X float64 // Horizontal position (left edge, world space)
	W int     // Width in cells
	H int     // Height in cells
}

// Rect returns the collision rectangle for this obstacle.
// The bottom edge always sits on the ground line.
func (o Obstacle) Rect(groundY int) core.FRect {
	return core.NewFRect(o.X, float64(groundY-o.H), float64(o.W), float64(o.H))
}

// Spawner owns the obstacle course: the ordered obstacle list, the RNG
// stream, and the spawn/despawn rules. Obstacles stay in spawn order, which
// is also left-to-right screen order.
type Spawner struct {
	obstacles []Obstacle
	rng       *rand.Rand
	viewportW int
	cfg       config.Obstacles
}

// NewSpawner creates a spawner with a fresh RNG stream.
func NewSpawner(seed int64, viewportW int, cfg config.Obstacles) *Spawner {
	s := &Spawner{
		obstacles: make([]Obstacle, 0, 8),
		viewportW: viewportW,
		cfg:       cfg,
	}
	s.Reset(seed)
	return s
}

// Reset clears the course and restarts the RNG stream from seed.
func (s *Spawner) Reset(seed int64) {
	s.obstacles = s.obstacles[:0]
	s.rng = rand.New(rand.NewSource(seed))
}

// Restart clears the course but keeps consuming the same RNG stream, so a
// full session sequence under one seed replays identically.
func (s *Spawner) Restart() {
	s.obstacles = s.obstacles[:0]
}

// SetViewport updates the width used for spawn positions and the trigger.
func (s *Spawner) SetViewport(w int) {
	s.viewportW = w
}

// Advance scrolls every obstacle left by dx and removes the ones that have
// fully cleared the left edge plus the despawn margin.
func (s *Spawner) Advance(dx float64) {
	for i := range s.obstacles {
		s.obstacles[i].X -= dx
	}

	alive := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.X+float64(o.W) > -float64(s.cfg.DespawnMargin) {
			alive = append(alive, o)
		}
	}
	s.obstacles = alive
}

// TrySpawn appends one obstacle when the course has room: the list is empty,
// or the newest obstacle has scrolled in past the spawn lead. New obstacles
// appear a random gap beyond the right edge.
func (s *Spawner) TrySpawn() {
	if len(s.obstacles) > 0 {
		last := s.obstacles[len(s.obstacles)-1]
		if last.X >= float64(s.viewportW-s.cfg.SpawnLead) {
			return
		}
	}

	gap := s.randRange(s.cfg.MinGap, s.cfg.MaxGap)
	s.obstacles = append(s.obstacles, Obstacle{
		X: float64(s.viewportW + gap),
		W: s.randRange(s.cfg.MinWidth, s.cfg.MaxWidth),
		H: s.randRange(s.cfg.MinHeight, s.cfg.MaxHeight),
	})
}

// randRange returns a uniform int in [min, max]. Degenerate ranges return min.
func (s *Spawner) randRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

// Obstacles returns the live course in spawn (left-to-right) order.
func (s *Spawner) Obstacles() []Obstacle {
	return s.obstacles
}

// Collides tests the player rectangle against the course, stopping at the
// first hit.
func (s *Spawner) Collides(player core.FRect, groundY int) bool {
	for _, o := range s.obstacles {
		if player.Intersects(o.Rect(groundY)) {
			return true
		}
	}
	return false
}

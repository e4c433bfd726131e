package runner

import (
	"fmt"

	"github.com/runline/runline/internal/core"
)

// Visual characters for rendering
const (
	PlayerBody   = '█'
	PlayerEye    = '◆'
	PlayerLeg1   = '╱'
	PlayerLeg2   = '╲'
	ObstacleChar = '▓'
	GroundChar   = '═'
	GroundDot    = '·'
)

// cloudShape is the three-cell sprite used for every cloud.
const cloudShape = "░░░"

// cloudDrift is the sky speed as a fraction of course speed.
const cloudDrift = 0.25

// clouds seed the sky band; spread over a wide range so rows wrap at
// different times.
var clouds = []struct{ x, y int }{
	{12, 2},
	{34, 4},
	{55, 1},
	{71, 3},
	{96, 2},
}

// Render draws the current session to the screen buffer. It is a pure read
// of game state and is safe to call before the first Reset (blank frame).
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.spawner == nil {
		return
	}

	if g.tooSmall {
		g.drawCenteredMessage(dst,
			"Window too small",
			fmt.Sprintf("Need at least %dx%d", MinViewportW, MinViewportH))
		return
	}

	g.drawSky(dst)
	g.drawGround(dst)

	for _, o := range g.spawner.Obstacles() {
		g.drawObstacle(dst, o)
	}

	g.drawPlayer(dst)
	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		dst.Dim()
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawSky draws clouds drifting slower than the course for a parallax feel.
func (g *Game) drawSky(dst *core.Screen) {
	w := dst.Width()
	if w <= 0 {
		return
	}

	drift := int(g.distance * cloudDrift)
	for _, c := range clouds {
		if c.y >= g.groundY {
			continue
		}
		x := ((c.x-drift)%w + w) % w
		dst.DrawTextColored(x, c.y, cloudShape, core.ColorWhite)
	}
}

// drawGround draws the ground line and the scrolling dot band below it.
func (g *Game) drawGround(dst *core.Screen) {
	w := dst.Width()
	for x := 0; x < w; x++ {
		dst.SetColored(x, g.groundY, GroundChar, core.ColorDefault)
	}

	tile := g.cfg.Ground.TileWidth
	if tile <= 0 || g.groundY+1 >= dst.Height() {
		return
	}
	for x := -int(g.groundScroll); x < w; x += tile {
		dst.SetColored(x, g.groundY+1, GroundDot, core.ColorGray)
	}
}

// drawObstacle renders a single obstacle with a lighter leading edge.
func (g *Game) drawObstacle(dst *core.Screen, o Obstacle) {
	cell := o.Rect(g.groundY).Cell()
	for dy := 0; dy < cell.H; dy++ {
		for dx := 0; dx < cell.W; dx++ {
			color := core.ColorGreen
			if dx == 0 {
				color = core.ColorBrightGreen
			}
			dst.SetColored(cell.X+dx, cell.Y+dy, ObstacleChar, color)
		}
	}
}

// drawPlayer renders the player character.
func (g *Game) drawPlayer(dst *core.Screen) {
	// Player Y is relative to ground (negative = above ground)
	baseY := g.groundY - g.cfg.Player.Height + int(g.playerY)
	playerX := g.cfg.Player.X

	// Simple runner sprite (3x3)
	//  █◆
	// ███
	// ╱╲

	// Head with eye
	dst.SetColored(playerX+1, baseY, PlayerBody, core.ColorBrightGreen)
	dst.SetColored(playerX+2, baseY, PlayerEye, core.ColorWhite)

	// Body
	dst.SetColored(playerX, baseY+1, PlayerBody, core.ColorBrightGreen)
	dst.SetColored(playerX+1, baseY+1, PlayerBody, core.ColorBrightGreen)
	dst.SetColored(playerX+2, baseY+1, PlayerBody, core.ColorBrightGreen)

	// Legs (animated when grounded)
	if g.isGrounded {
		if g.legFrame < 5 {
			dst.SetColored(playerX, baseY+2, PlayerLeg1, core.ColorBrightGreen)
			dst.Set(playerX+1, baseY+2, ' ')
			dst.SetColored(playerX+2, baseY+2, PlayerLeg2, core.ColorBrightGreen)
		} else {
			dst.Set(playerX, baseY+2, ' ')
			dst.SetColored(playerX+1, baseY+2, PlayerLeg1, core.ColorBrightGreen)
			dst.SetColored(playerX+2, baseY+2, PlayerLeg2, core.ColorBrightGreen)
		}
	} else {
		// In air - legs tucked
		dst.SetColored(playerX, baseY+2, PlayerLeg1, core.ColorBrightGreen)
		dst.SetColored(playerX+1, baseY+2, PlayerLeg2, core.ColorBrightGreen)
		dst.Set(playerX+2, baseY+2, ' ')
	}
}

// drawHUD renders score, best, and current speed.
func (g *Game) drawHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf(" Score: %d   Best: %d ", g.score, g.best)
	dst.DrawTextColored(2, 0, scoreText, core.ColorYellow)

	speedText := fmt.Sprintf(" Spd: %.1f ", g.speed)
	dst.DrawTextColored(dst.Width()-len(speedText)-2, 0, speedText, core.ColorCyan)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

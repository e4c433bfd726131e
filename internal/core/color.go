package core

// Color identifies a foreground color for a screen cell. The platform layer
// decides how each value maps to terminal colors; the game core only tags
// cells with intent.
type Color uint8

// Colors used by the runner's renderer.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrightGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorGray
	ColorRed
	ColorOrange
)

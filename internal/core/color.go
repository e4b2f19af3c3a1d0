package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI 256-color codes by the render layer.
type Color uint8

// Predefined colors for walkway elements.
const (
	ColorDefault Color = iota
	ColorYellow
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightMagenta
	ColorGreen
	ColorGray
	ColorWhite
	ColorOrange
)

package core

// Color identifies a foreground color for a screen cell. The platform layer
// maps these to terminal styles; the core only tags cells with them.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorGray
)

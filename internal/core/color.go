package core

// Color is a logical palette entry for a screen cell. The platform decides
// how each entry is shown.
type Color uint8

// Palette used by the shooter.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorRed
	ColorBrightRed
	ColorGreen
	ColorYellow
	ColorBrightYellow
	ColorOrange
)

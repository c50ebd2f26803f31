package core

// Color is a foreground color for a screen cell. The zero value is the
// terminal's default; the platform maps the rest to ANSI 256-color codes.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorOrange
	ColorGray
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite

	// NumColors is the number of defined colors.
	NumColors
)

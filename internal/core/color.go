package core

import "strings"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for cards, HUD and theme accents.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightCyan
	ColorOrange
	ColorGray
)

var colorNames = map[string]Color{
	"default":       ColorDefault,
	"red":           ColorRed,
	"green":         ColorGreen,
	"yellow":        ColorYellow,
	"blue":          ColorBlue,
	"magenta":       ColorMagenta,
	"cyan":          ColorCyan,
	"white":         ColorWhite,
	"bright_red":    ColorBrightRed,
	"bright_green":  ColorBrightGreen,
	"bright_yellow": ColorBrightYellow,
	"bright_blue":   ColorBrightBlue,
	"bright_cyan":   ColorBrightCyan,
	"orange":        ColorOrange,
	"gray":          ColorGray,
}

// ParseColor resolves a color name as written in config files.
// Unknown names return ColorDefault and false.
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ColorDefault, false
	}
	return c, true
}

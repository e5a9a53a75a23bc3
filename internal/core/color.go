package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for scene nodes.
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
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
	ColorNavy
	ColorPurple
)

// brightnessRamp orders glyphs from faint to bright.
var brightnessRamp = []rune{'·', '.', '+', '*', '✦'}

// GlyphForBrightness maps a brightness in [0, 1] to a glyph.
// Scenes use it to fade nodes in and out.
func GlyphForBrightness(b float64) rune {
	b = ClampF(b, 0, 1)
	i := int(b * float64(len(brightnessRamp)-1))
	return brightnessRamp[i]
}

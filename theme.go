package deckgen

import (
	"fmt"
	"image/color"
)

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// Hex returns the color as an uppercase RRGGBB string (no leading #),
// the form PresentationML expects in srgbClr values.
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// rgba converts to a stdlib color with full opacity. Not named RGBA to avoid
// colliding with the color.Color interface method.
func (c Color) rgba() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Theme holds the deck color palette. Both renderers read the same theme so
// the two artifacts stay visually consistent.
type Theme struct {
	Primary   Color // slide titles, cover background
	Secondary Color // problem blocks, line charts
	Accent    Color // title rule, solution steps, example blocks
	Warning   Color // note blocks
	Purple    Color // formula blocks
	Orange    Color // extra chart series
	Text      Color // body text
	LightBG   Color // alternating table rows
}

// DefaultTheme returns the built-in palette.
func DefaultTheme() Theme {
	return Theme{
		Primary:   Color{41, 128, 185},
		Secondary: Color{231, 76, 60},
		Accent:    Color{46, 204, 113},
		Warning:   Color{241, 196, 15},
		Purple:    Color{155, 89, 182},
		Orange:    Color{230, 126, 34},
		Text:      Color{44, 62, 80},
		LightBG:   Color{236, 240, 241},
	}
}

// ChartPalette returns the series colors used by chart rendering, in the
// order the slices/series cycle through them.
func (t Theme) ChartPalette() []color.RGBA {
	return []color.RGBA{
		t.Primary.rgba(),
		t.Secondary.rgba(),
		t.Accent.rgba(),
		t.Warning.rgba(),
		t.Purple.rgba(),
		t.Orange.rgba(),
	}
}

// white is used for cover text and table header text.
var white = Color{255, 255, 255}

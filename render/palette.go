package render

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/zracer/constants"
)

// Terrain colors
var (
	RgbKerb       = tcell.NewRGBColor(220, 220, 220) // Light gray
	RgbKerbTurn   = tcell.NewRGBColor(255, 200, 80)  // Amber for bends
	RgbRock       = tcell.NewRGBColor(160, 120, 80)  // Brown
	RgbDistance   = tcell.NewRGBColor(110, 110, 130) // Dim slate
	RgbOtherCar   = tcell.NewRGBColor(150, 150, 150) // Gray for the rival's mark
	RgbMessage    = tcell.NewRGBColor(255, 255, 255) // White
	RgbMessageBg  = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	carHueStart   = 120.0
	carHueSpacing = 137.5
)

// CarColor spreads players around the hue wheel starting from green
func CarColor(player int) tcell.Color {
	hue := carHueStart + carHueSpacing*float64(player)
	for hue >= 360 {
		hue -= 360
	}
	r, g, b := colorful.Hsv(hue, 0.75, 1.0).RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// CarStyle is the bold style of a player's own car
func CarStyle(player int) tcell.Style {
	return tcell.StyleDefault.Foreground(CarColor(player)).Bold(true)
}

// ExplosionStyle picks one of the seven basic terminal colors
func ExplosionStyle(rng *rand.Rand) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(1 + rng.Intn(7))).Bold(true)
}

// TerrainStyle colors a track cell by its glyph; carGlyph marks another car in shared mode
func TerrainStyle(r, carGlyph rune) tcell.Style {
	switch {
	case r == constants.GlyphKerb:
		return tcell.StyleDefault.Foreground(RgbKerb)
	case r == constants.GlyphKerbLeft || r == constants.GlyphKerbRight:
		return tcell.StyleDefault.Foreground(RgbKerbTurn)
	case r == constants.GlyphRock:
		return tcell.StyleDefault.Foreground(RgbRock)
	case r >= constants.GlyphDigitFirst && r <= constants.GlyphDigitFirst+9:
		return tcell.StyleDefault.Foreground(RgbDistance)
	case r == carGlyph:
		return tcell.StyleDefault.Foreground(RgbOtherCar)
	default:
		return tcell.StyleDefault
	}
}

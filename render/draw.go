package render

import (
	"math/rand"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/zracer/constants"
	"github.com/lixenwraith/zracer/sprite"
	"github.com/lixenwraith/zracer/track"
)

// Offset is the column where a track of trackWidth starts when centered on s
func Offset(s Surface, trackWidth int) int {
	w, _ := s.Size()
	return (w - trackWidth) / 2
}

// DrawTrack paints the rows of t starting at top into s, blanking any space around it
func DrawTrack(s Surface, t *track.Track, top int) {
	w, h := s.Size()
	offset := Offset(s, t.Width())
	for y := 0; y < h; y++ {
		row := top + y
		for x := 0; x < w; x++ {
			r, ok := t.Cell(row, x-offset)
			if !ok {
				s.SetContent(x, y, constants.GlyphEmpty, nil, tcell.StyleDefault)
				continue
			}
			s.SetContent(x, y, r, nil, TerrainStyle(r, t.CarGlyph()))
		}
	}
}

// DrawCar paints the car's dots with its glyph, x and y being the surface position of its box
func DrawCar(s Surface, car *sprite.CarImage, x, y int, style tcell.Style) {
	car.EachDot(func(d sprite.Dot) {
		s.SetContent(x+d.Col, y+d.Row, car.Glyph(), nil, style)
	})
}

// DrawExplosion scatters multi-colored debris over half of the car's box
func DrawExplosion(s Surface, car *sprite.CarImage, x, y int, rng *rand.Rand) {
	size := car.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if rng.Intn(2) == 0 {
				s.SetContent(x+col, y+row, constants.GlyphExplosion, nil, ExplosionStyle(rng))
			}
		}
	}
}

// Message centers lines of text on s, one line per row
func Message(s Surface, text string) {
	w, h := s.Size()
	lines := strings.Split(text, "\n")
	style := tcell.StyleDefault.Foreground(RgbMessage).Background(RgbMessageBg).Bold(true)

	y := (h - len(lines)) / 2
	for i, line := range lines {
		x := (w - runewidth.StringWidth(line)) / 2
		for _, r := range line {
			s.SetContent(x, y+i, r, nil, style)
			x += runewidth.RuneWidth(r)
		}
	}
	s.Show()
}

// Package track stores the race course as its character-art grid and
// answers collision queries against it.
package track

import (
	"github.com/lixenwraith/zracer/constants"
	"github.com/lixenwraith/zracer/sprite"
)

// Track is a rows x cols rune grid; row 0 is the finish line, the last row is the start
// The grid is never resized; during a race only Mark and Unmark write to it
type Track struct {
	length   int
	width    int
	carGlyph rune
	cells    [][]rune
}

// New returns an empty grid with no kerbs; Generate is the usual constructor
func New(length, width int, carGlyph rune) *Track {
	cells := make([][]rune, length)
	for y := range cells {
		cells[y] = make([]rune, width)
		for x := range cells[y] {
			cells[y][x] = constants.GlyphEmpty
		}
	}
	return &Track{
		length:   length,
		width:    width,
		carGlyph: carGlyph,
		cells:    cells,
	}
}

// Copy returns a deep copy sharing no cells with t
func (t *Track) Copy() *Track {
	c := New(t.length, t.width, t.carGlyph)
	for y := range t.cells {
		copy(c.cells[y], t.cells[y])
	}
	return c
}

// Length returns the number of rows
func (t *Track) Length() int {
	return t.length
}

// Width returns the number of columns
func (t *Track) Width() int {
	return t.width
}

// CarGlyph returns the rune used to mark car footprints
func (t *Track) CarGlyph() rune {
	return t.carGlyph
}

func (t *Track) inBounds(row, col int) bool {
	return row >= 0 && row < t.length && col >= 0 && col < t.width
}

// Cell returns the glyph at the position
func (t *Track) Cell(row, col int) (rune, bool) {
	if !t.inBounds(row, col) {
		return 0, false
	}
	return t.cells[row][col], true
}

// SetCell overwrites one cell; used to place terrain outside the generator
func (t *Track) SetCell(row, col int, r rune) bool {
	if !t.inBounds(row, col) {
		return false
	}
	t.cells[row][col] = r
	return true
}

// Row returns a copy of one row, or nil when out of range
func (t *Track) Row(row int) []rune {
	if row < 0 || row >= t.length {
		return nil
	}
	line := make([]rune, t.width)
	copy(line, t.cells[row])
	return line
}

// Kerbs returns the columns of the left and right kerb on a row, -1 when missing
func (t *Track) Kerbs(row int) (left, right int) {
	left, right = -1, -1
	if row < 0 || row >= t.length {
		return
	}
	for x, r := range t.cells[row] {
		if !isKerb(r) {
			continue
		}
		if left < 0 {
			left = x
		} else {
			right = x
		}
	}
	return
}

func isKerb(r rune) bool {
	return r == constants.GlyphKerb || r == constants.GlyphKerbLeft || r == constants.GlyphKerbRight
}

// ===== COLLISION SURFACE =====

// Taken reports whether the cell holds anything: terrain, a digit or a car mark
// Cells outside the grid count as taken
func (t *Track) Taken(row, col int) bool {
	if !t.inBounds(row, col) {
		return true
	}
	return t.cells[row][col] != constants.GlyphEmpty
}

// Mark writes the car glyph into every empty cell under the car's dots
// Terrain is never overwritten
func (t *Track) Mark(row, col int, car *sprite.CarImage) {
	car.EachDot(func(d sprite.Dot) {
		y, x := row+d.Row, col+d.Col
		if t.inBounds(y, x) && t.cells[y][x] == constants.GlyphEmpty {
			t.cells[y][x] = t.carGlyph
		}
	})
}

// Unmark clears every car glyph under the car's dots
// Must pair with exactly one Mark; overlapping cars clear each other's marks
func (t *Track) Unmark(row, col int, car *sprite.CarImage) {
	car.EachDot(func(d sprite.Dot) {
		y, x := row+d.Row, col+d.Col
		if t.inBounds(y, x) && t.cells[y][x] == t.carGlyph {
			t.cells[y][x] = constants.GlyphEmpty
		}
	})
}

// Package sprite rasterizes the car silhouette into an occupancy mask.
package sprite

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/zracer/constants"
)

// ErrSize is returned for a sprite edge outside [1, MaxCarSize]
var ErrSize = errors.New("car size out of range")

// Dot is an occupied cell offset relative to the car's top-left corner
type Dot struct {
	Row, Col int
}

// CarImage is an immutable size x size occupancy mask plus its ordered dot list
// Collision uses the mask, so obstacles may sit between the car's ribs
type CarImage struct {
	size  int
	glyph rune
	mask  [][]bool
	dots  []Dot
}

// Build scales the zig-zag silhouette to size and rasterizes it
// Key points are (k*(size-1)/4, 0 or size-1) for k = 0..4, joined by 4 segments
func Build(size int, glyph rune) (*CarImage, error) {
	if size < 1 || size > constants.MaxCarSize {
		return nil, fmt.Errorf("%w: %d not in [1,%d]", ErrSize, size, constants.MaxCarSize)
	}

	c := newCarImage(size, glyph)
	edge := size - 1

	var rows, cols [5]int
	for k := range rows {
		rows[k] = k * edge / 4
		if k%2 == 1 {
			cols[k] = edge
		}
	}
	for k := 0; k < 4; k++ {
		c.line(rows[k], cols[k], rows[k+1], cols[k+1])
	}

	return c, nil
}

// FromMask builds a CarImage from an explicit square mask
// Dots are listed in row-major order
func FromMask(mask [][]bool, glyph rune) (*CarImage, error) {
	size := len(mask)
	if size < 1 || size > constants.MaxCarSize {
		return nil, fmt.Errorf("%w: %d not in [1,%d]", ErrSize, size, constants.MaxCarSize)
	}

	c := newCarImage(size, glyph)
	for r, row := range mask {
		if len(row) != size {
			return nil, fmt.Errorf("mask row %d has %d cells, want %d", r, len(row), size)
		}
		for col, set := range row {
			if set {
				c.mask[r][col] = true
				c.dots = append(c.dots, Dot{Row: r, Col: col})
			}
		}
	}
	return c, nil
}

func newCarImage(size int, glyph rune) *CarImage {
	mask := make([][]bool, size)
	for i := range mask {
		mask[i] = make([]bool, size)
	}
	return &CarImage{
		size:  size,
		glyph: glyph,
		mask:  mask,
		dots:  make([]Dot, 0, 4*size),
	}
}

// line marks one cell per column between (y1,x1) and (y2,x2), rounding half up
func (c *CarImage) line(y1, x1, y2, x2 int) {
	if x2 < x1 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}
	for i := x1; i <= x2; i++ {
		y := y1
		if x2 != x1 {
			y += int(math.Floor(float64((y2-y1)*(i-x1))/float64(x2-x1) + 0.5))
		}
		c.mask[y][i] = true
		c.dots = append(c.dots, Dot{Row: y, Col: i})
	}
}

// Size returns the edge length of the bounding box
func (c *CarImage) Size() int {
	return c.size
}

// Glyph returns the character the car is drawn with
func (c *CarImage) Glyph() rune {
	return c.glyph
}

// Dots returns a copy of the ordered dot list
func (c *CarImage) Dots() []Dot {
	out := make([]Dot, len(c.dots))
	copy(out, c.dots)
	return out
}

// EachDot calls fn for every dot without copying the list
func (c *CarImage) EachDot(fn func(d Dot)) {
	for _, d := range c.dots {
		fn(d)
	}
}

// Occupies reports whether the offset is part of the silhouette
// Offsets outside the bounding box are never occupied
func (c *CarImage) Occupies(row, col int) bool {
	if row < 0 || row >= c.size || col < 0 || col >= c.size {
		return false
	}
	return c.mask[row][col]
}

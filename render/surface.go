// Package render draws race views onto tcell screens or clipped parts of them.
package render

import (
	"github.com/gdamore/tcell/v2"
)

// Surface is the drawing target of one player's view
// tcell.Screen satisfies it directly
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Show()
}

// Rect is a screen region in cells
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the region-relative position is inside the rect
func (r Rect) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < r.Width && y < r.Height
}

// Viewport maps a Surface onto a sub-rectangle of a screen, clipping writes at its border
type Viewport struct {
	screen tcell.Screen
	rect   Rect
}

// NewViewport binds rect of screen; the rect is clipped to the screen at creation
func NewViewport(screen tcell.Screen, rect Rect) *Viewport {
	sw, sh := screen.Size()
	if rect.X+rect.Width > sw {
		rect.Width = max(0, sw-rect.X)
	}
	if rect.Y+rect.Height > sh {
		rect.Height = max(0, sh-rect.Y)
	}
	return &Viewport{screen: screen, rect: rect}
}

// SetContent writes one cell in viewport coordinates; writes outside are dropped
func (v *Viewport) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	if !v.rect.Contains(x, y) {
		return
	}
	v.screen.SetContent(v.rect.X+x, v.rect.Y+y, primary, combining, style)
}

func (v *Viewport) Size() (int, int) {
	return v.rect.Width, v.rect.Height
}

func (v *Viewport) Show() {
	v.screen.Show()
}

// Clear blanks the viewport with the default style
func (v *Viewport) Clear() {
	Fill(v, ' ', tcell.StyleDefault)
}

// Fill writes r into every cell of s
func Fill(s Surface, r rune, style tcell.Style) {
	w, h := s.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s.SetContent(x, y, r, nil, style)
		}
	}
}

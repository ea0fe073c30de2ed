package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zracer/config"
)

// Layout splits the screen into one region per player
// Vertical split puts player 0 in the rightmost stripe; horizontal split stacks from the top
func Layout(screenW, screenH, players int, axis config.SplitAxis) []Rect {
	if players < 1 {
		return nil
	}
	rects := make([]Rect, players)
	switch axis {
	case config.SplitHorizontal:
		h := screenH / players
		for i := range rects {
			rects[i] = Rect{X: 0, Y: h * i, Width: screenW, Height: h}
		}
	default:
		w := screenW / players
		for i := range rects {
			rects[i] = Rect{X: w * (players - i - 1), Y: 0, Width: w, Height: screenH}
		}
	}
	return rects
}

// Viewports binds one Viewport per Layout region
func Viewports(screen tcell.Screen, players int, axis config.SplitAxis) []*Viewport {
	w, h := screen.Size()
	rects := Layout(w, h, players, axis)
	views := make([]*Viewport, len(rects))
	for i, r := range rects {
		views[i] = NewViewport(screen, r)
	}
	return views
}

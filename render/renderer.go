package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tilegrid"
)

// Styler maps one cell value to the rune and style drawn for it.
type Styler[T any] func(v T) (rune, tcell.Style)

// Renderer draws row-capable grids onto a tcell screen. It holds no
// grid state of its own; pass any RowGrid each frame.
type Renderer[T any] struct {
	screen tcell.Screen
	styler Styler[T]

	// OX, OY position the grid's origin on the screen.
	OX, OY int
}

// New creates a renderer for the given screen and cell styler.
func New[T any](screen tcell.Screen, styler Styler[T]) *Renderer[T] {
	return &Renderer[T]{screen: screen, styler: styler}
}

// Draw paints the whole grid, clipped to the screen.
func (r *Renderer[T]) Draw(g tilegrid.RowGrid[T]) {
	r.drawRows(g, r.OX, r.OY)
}

// DrawRegion repaints only the window a region covers, at the screen
// position matching its place in the parent. Useful as a dirty-window
// redraw after mutating just that rectangle.
func (r *Renderer[T]) DrawRegion(rg *tilegrid.Region[T]) {
	r.drawRows(rg, r.OX+rg.Left(), r.OY+rg.Top())
}

// DrawAt paints a grid with its origin at an explicit screen position,
// ignoring OX and OY.
func (r *Renderer[T]) DrawAt(g tilegrid.RowGrid[T], x, y int) {
	r.drawRows(g, x, y)
}

func (r *Renderer[T]) drawRows(g tilegrid.RowGrid[T], ox, oy int) {
	sw, sh := r.screen.Size()

	y := oy
	for row := range g.Rows().All() {
		if y >= sh {
			break
		}
		if y >= 0 {
			for i, v := range row {
				x := ox + i
				if x < 0 || x >= sw {
					continue
				}
				ch, style := r.styler(v)
				r.screen.SetContent(x, y, ch, nil, style)
			}
		}
		y++
	}
}

// Show flushes pending draws to the terminal.
func (r *Renderer[T]) Show() {
	r.screen.Show()
}

// Binary returns a styler for two-state grids.
func Binary(dead, alive rune, deadStyle, aliveStyle tcell.Style) Styler[bool] {
	return func(v bool) (rune, tcell.Style) {
		if v {
			return alive, aliveStyle
		}
		return dead, deadStyle
	}
}

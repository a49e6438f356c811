package automaton

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/tilegrid"
)

// Config tunes a new world. A zero Rule means Conway Life; Density only
// matters when Seed is non-zero (a seeded world starts randomized).
type Config struct {
	Width, Height int

	Rule Rule

	// Wrap joins opposite edges into a torus. Off, cells beyond the
	// boundary count as dead.
	Wrap bool

	Seed    int64   // Optional (0 = start empty)
	Density float64 // Live fraction for seeded start, default 0.3
}

// World is a double-buffered cellular automaton. Both generations live
// in Dyn grids and every access goes through the grid API, so the
// current generation can be handed out read-only and stamped through
// mutable regions.
type World struct {
	cur  *tilegrid.Dyn[bool]
	next *tilegrid.Dyn[bool]
	rule Rule
	wrap bool
	gen  int
}

// New creates a world. Non-positive dimensions produce an empty world
// that steps harmlessly.
func New(cfg Config) *World {
	rule := cfg.Rule
	if rule == (Rule{}) {
		rule = Life
	}
	w := &World{
		cur:  tilegrid.NewDyn[bool](cfg.Width, cfg.Height),
		next: tilegrid.NewDyn[bool](cfg.Width, cfg.Height),
		rule: rule,
		wrap: cfg.Wrap,
	}
	if cfg.Seed != 0 {
		density := cfg.Density
		if density <= 0 {
			density = 0.3
		}
		w.Randomize(cfg.Seed, density)
	}
	return w
}

// Grid returns the current generation as a read-only row-capable grid.
func (w *World) Grid() tilegrid.RowGrid[bool] { return w.cur }

// Generation returns how many steps have run.
func (w *World) Generation() int { return w.gen }

// Rule returns the active rule.
func (w *World) Rule() Rule { return w.rule }

// Get reports the cell at (x, y).
func (w *World) Get(x, y int) bool {
	v, _ := w.cur.Get(x, y)
	return v
}

// Set writes one cell, reporting whether (x, y) was in bounds.
func (w *World) Set(x, y int, alive bool) bool {
	return w.cur.Set(x, y, alive)
}

// Toggle flips one cell. alive is the new state; ok is false when
// (x, y) is out of bounds and nothing was flipped.
func (w *World) Toggle(x, y int) (alive, ok bool) {
	p := w.cur.At(x, y)
	if p == nil {
		return false, false
	}
	*p = !*p
	return *p, true
}

// Clear kills every cell and resets the generation counter.
func (w *World) Clear() {
	w.cur.Clear()
	w.gen = 0
}

// Randomize fills the world from a seeded RNG. Seed 0 draws from the
// clock.
func (w *World) Randomize(seed int64, density float64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	for row := range w.cur.RowsMut().All() {
		for x := range row {
			row[x] = rng.Float64() < density
		}
	}
	w.gen = 0
}

// Population counts live cells.
func (w *World) Population() int {
	n := 0
	for row := range w.cur.Rows().All() {
		for _, alive := range row {
			if alive {
				n++
			}
		}
	}
	return n
}

// Stamp writes a pattern with its top-left corner at (x, y) through an
// exclusive region view, so a stamp is all-or-nothing: if the rectangle
// does not fit (or the grid is loaned out elsewhere) nothing is
// written.
func (w *World) Stamp(p Pattern, x, y int) error {
	view, err := w.cur.RegionMut(x, y, p.W, p.H)
	if err != nil {
		return err
	}
	defer view.Release()

	for ly := 0; ly < p.H; ly++ {
		row, ok := view.RowMut(ly)
		if !ok {
			continue
		}
		for lx := range row {
			row[lx] = p.Alive(lx, ly)
		}
	}
	return nil
}

// Step advances one generation. Neighbor counting walks three row
// slices per output row, the cheapest contiguous access the grid
// offers.
func (w *World) Step() {
	width, height := w.cur.Size()
	if width == 0 || height == 0 {
		w.gen++
		return
	}

	for y := 0; y < height; y++ {
		above := w.rowOrNil(y - 1)
		here, _ := w.cur.Row(y)
		below := w.rowOrNil(y + 1)
		out, _ := w.next.RowMut(y)

		for x := 0; x < width; x++ {
			n := w.countRow(above, x) + w.countRow(below, x)
			// middle row contributes left and right only
			n += w.at(here, x-1) + w.at(here, x+1)
			out[x] = w.rule.Next(here[x], n)
		}
	}

	w.cur, w.next = w.next, w.cur
	w.gen++
}

// rowOrNil fetches a row, wrapping the index on a torus and returning
// nil past the edge otherwise.
func (w *World) rowOrNil(y int) []bool {
	height := w.cur.Height()
	if y < 0 || y >= height {
		if !w.wrap {
			return nil
		}
		y = (y + height) % height
	}
	row, _ := w.cur.Row(y)
	return row
}

// at reads one cell of a row slice with horizontal wrap, 0 or 1.
func (w *World) at(row []bool, x int) int {
	if row == nil {
		return 0
	}
	if x < 0 || x >= len(row) {
		if !w.wrap {
			return 0
		}
		x = (x + len(row)) % len(row)
	}
	if row[x] {
		return 1
	}
	return 0
}

// countRow sums the three cells of row around column x.
func (w *World) countRow(row []bool, x int) int {
	return w.at(row, x-1) + w.at(row, x) + w.at(row, x+1)
}

package tilegrid

// Fixed is a grid whose dimensions are set once at construction and
// never change. Cells live in a single backing allocation carved into a
// two-level row layout, so positional access is one index per level and
// rows are contiguous.
//
// Go has no const generics; Fixed is the runtime-checked equivalent of
// a statically sized grid. Construction cannot fail: non-positive
// dimensions normalize to an empty grid.
type Fixed[T any] struct {
	rows   [][]T
	width  int
	height int
	loaned bool
}

// NewFixed creates a w by h grid with every cell set to the zero value
// of T.
func NewFixed[T any](w, h int) *Fixed[T] {
	if w <= 0 || h <= 0 {
		return &Fixed[T]{}
	}
	backing := make([]T, w*h)
	rows := make([][]T, h)
	for r := range rows {
		rows[r] = backing[r*w : (r+1)*w : (r+1)*w]
	}
	return &Fixed[T]{rows: rows, width: w, height: h}
}

// NewFixedOf creates a w by h grid with every cell set to v.
func NewFixedOf[T any](w, h int, v T) *Fixed[T] {
	g := NewFixed[T](w, h)
	for r := range g.rows {
		fillRow(g.rows[r], v)
	}
	return g
}

// Get returns a copy of the cell at (x, y).
func (g *Fixed[T]) Get(x, y int) (T, bool) {
	if g.loaned || !g.InBounds(x, y) {
		var zero T
		return zero, false
	}
	return g.rows[y][x], true
}

// At returns a pointer to the cell at (x, y), nil when out of bounds or
// loaned out.
func (g *Fixed[T]) At(x, y int) *T {
	if g.loaned || !g.InBounds(x, y) {
		return nil
	}
	return &g.rows[y][x]
}

// Set writes v at (x, y) and reports whether the write happened.
func (g *Fixed[T]) Set(x, y int, v T) bool {
	p := g.At(x, y)
	if p == nil {
		return false
	}
	*p = v
	return true
}

// Replace stores v at (x, y), returning the previous value. Out of
// bounds, v comes back with false.
func (g *Fixed[T]) Replace(x, y int, v T) (T, bool) {
	p := g.At(x, y)
	if p == nil {
		return v, false
	}
	old := *p
	*p = v
	return old, true
}

// Clear resets every cell to the zero value of T.
func (g *Fixed[T]) Clear() bool {
	var zero T
	return g.ClearTo(zero)
}

// ClearTo broadcasts v to every cell.
func (g *Fixed[T]) ClearTo(v T) bool {
	if g.loaned {
		return false
	}
	for r := range g.rows {
		fillRow(g.rows[r], v)
	}
	return true
}

func (g *Fixed[T]) Width() int  { return g.width }
func (g *Fixed[T]) Height() int { return g.height }

func (g *Fixed[T]) Size() (int, int) { return g.width, g.height }

// InBounds reports whether (x, y) addresses a cell.
func (g *Fixed[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Row returns row r, a contiguous slice of length Width().
func (g *Fixed[T]) Row(r int) ([]T, bool) {
	if g.loaned || r < 0 || r >= g.height {
		return nil, false
	}
	return g.rows[r], true
}

// RowMut is Row; the slice writes through to storage.
func (g *Fixed[T]) RowMut(r int) ([]T, bool) {
	return g.Row(r)
}

// Rows returns a fresh iterator over all rows, top to bottom.
func (g *Fixed[T]) Rows() *RowIter[T] {
	return newRowIter(g.height, g.Row)
}

// RowsMut is Rows with writable slices.
func (g *Fixed[T]) RowsMut() *RowIter[T] {
	return newRowIter(g.height, g.RowMut)
}

// Region derives a read-only view of the rectangle at (x, y) sized w by
// h, or false when it does not fit.
func (g *Fixed[T]) Region(x, y, w, h int) (*Region[T], bool) {
	return NewRegion[T](g, x, y, w, h)
}

// RegionMut checks out an exclusive mutable view of the rectangle.
// Until the view is released every other access to g fails.
func (g *Fixed[T]) RegionMut(x, y, w, h int) (*RegionMut[T], error) {
	return newRegionMut[T](g, x, y, w, h)
}

func (g *Fixed[T]) loanOut() error {
	if g.loaned {
		return ErrLoaned
	}
	g.loaned = true
	return nil
}

func (g *Fixed[T]) loanBack() { g.loaned = false }

func (g *Fixed[T]) cellAt(x, y int) *T {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.rows[y][x]
}

func (g *Fixed[T]) rowSlice(r int) []T {
	if r < 0 || r >= g.height {
		return nil
	}
	return g.rows[r]
}

// fillRow broadcasts v with exponential copy, doubling the initialized
// prefix each pass.
func fillRow[T any](row []T, v T) {
	if len(row) == 0 {
		return
	}
	row[0] = v
	for filled := 1; filled < len(row); filled *= 2 {
		copy(row[filled:], row[:filled])
	}
}

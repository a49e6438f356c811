package tilegrid

// Dyn is a grid sized at runtime. Width is fixed at construction; cells
// live in one contiguous buffer with row r occupying
// [r*width, (r+1)*width). Height is never stored: it is always derived
// as len(cells)/width, so the buffer length staying an exact multiple
// of width is the type's core invariant.
type Dyn[T any] struct {
	cells  []T
	width  int
	loaned bool
}

// NewDyn creates a w by h grid with every cell set to the zero value of T.
func NewDyn[T any](w, h int) *Dyn[T] {
	if w <= 0 || h <= 0 {
		return &Dyn[T]{}
	}
	return &Dyn[T]{cells: make([]T, w*h), width: w}
}

// NewDynOf creates a w by h grid with every cell set to v.
func NewDynOf[T any](w, h int, v T) *Dyn[T] {
	g := NewDyn[T](w, h)
	fillRow(g.cells, v)
	return g
}

// NewDynCap creates an empty grid of the given width with buffer
// capacity reserved for rowCap rows. Height starts at zero.
func NewDynCap[T any](w, rowCap int) *Dyn[T] {
	if w <= 0 {
		return &Dyn[T]{}
	}
	if rowCap < 0 {
		rowCap = 0
	}
	return &Dyn[T]{cells: make([]T, 0, w*rowCap), width: w}
}

// DynFromSlice adopts an existing buffer as grid storage. It fails when
// the buffer length is not an exact multiple of w. The grid takes
// ownership of the slice; the caller must not retain it.
func DynFromSlice[T any](cells []T, w int) (*Dyn[T], bool) {
	if w <= 0 {
		if len(cells) == 0 {
			return &Dyn[T]{}, true
		}
		return nil, false
	}
	if len(cells)%w != 0 {
		return nil, false
	}
	return &Dyn[T]{cells: cells, width: w}, true
}

// Get returns a copy of the cell at (x, y).
func (g *Dyn[T]) Get(x, y int) (T, bool) {
	if g.loaned || !g.InBounds(x, y) {
		var zero T
		return zero, false
	}
	return g.cells[y*g.width+x], true
}

// At returns a pointer to the cell at (x, y), nil when out of bounds or
// loaned out.
func (g *Dyn[T]) At(x, y int) *T {
	if g.loaned || !g.InBounds(x, y) {
		return nil
	}
	return &g.cells[y*g.width+x]
}

// Set writes v at (x, y) and reports whether the write happened.
func (g *Dyn[T]) Set(x, y int, v T) bool {
	p := g.At(x, y)
	if p == nil {
		return false
	}
	*p = v
	return true
}

// Replace stores v at (x, y), returning the previous value. Out of
// bounds, v comes back with false.
func (g *Dyn[T]) Replace(x, y int, v T) (T, bool) {
	p := g.At(x, y)
	if p == nil {
		return v, false
	}
	old := *p
	*p = v
	return old, true
}

// Clear resets every cell to the zero value of T.
func (g *Dyn[T]) Clear() bool {
	var zero T
	return g.ClearTo(zero)
}

// ClearTo broadcasts v to every cell.
func (g *Dyn[T]) ClearTo(v T) bool {
	if g.loaned {
		return false
	}
	fillRow(g.cells, v)
	return true
}

func (g *Dyn[T]) Width() int { return g.width }

// Height is derived from the buffer, never stored.
func (g *Dyn[T]) Height() int {
	if g.width == 0 {
		return 0
	}
	return len(g.cells) / g.width
}

func (g *Dyn[T]) Size() (int, int) { return g.width, g.Height() }

// InBounds reports whether (x, y) addresses a cell.
func (g *Dyn[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.Height()
}

// Row returns row r, a contiguous slice of length Width().
func (g *Dyn[T]) Row(r int) ([]T, bool) {
	if g.loaned {
		return nil, false
	}
	row := g.rowSlice(r)
	if row == nil {
		return nil, false
	}
	return row, true
}

// RowMut is Row; the slice writes through to storage.
func (g *Dyn[T]) RowMut(r int) ([]T, bool) {
	return g.Row(r)
}

// Rows returns a fresh iterator over all rows, top to bottom.
func (g *Dyn[T]) Rows() *RowIter[T] {
	return newRowIter(g.Height(), g.Row)
}

// RowsMut is Rows with writable slices.
func (g *Dyn[T]) RowsMut() *RowIter[T] {
	return newRowIter(g.Height(), g.RowMut)
}

// Region derives a read-only view of the rectangle at (x, y) sized w by
// h, or false when it does not fit.
func (g *Dyn[T]) Region(x, y, w, h int) (*Region[T], bool) {
	return NewRegion[T](g, x, y, w, h)
}

// RegionMut checks out an exclusive mutable view of the rectangle.
// Until the view is released every other access to g fails.
func (g *Dyn[T]) RegionMut(x, y, w, h int) (*RegionMut[T], error) {
	return newRegionMut[T](g, x, y, w, h)
}

func (g *Dyn[T]) loanOut() error {
	if g.loaned {
		return ErrLoaned
	}
	g.loaned = true
	return nil
}

func (g *Dyn[T]) loanBack() { g.loaned = false }

func (g *Dyn[T]) cellAt(x, y int) *T {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.cells[y*g.width+x]
}

func (g *Dyn[T]) rowSlice(r int) []T {
	if r < 0 || r >= g.Height() {
		return nil
	}
	return g.cells[r*g.width : (r+1)*g.width]
}

package tilegrid

// RegionMut is an exclusive mutable window into a parent grid. Deriving
// one checks the parent out: for as long as the view is live, every
// accessor on the parent (reads included) fails, and a second checkout
// is rejected with ErrLoaned. This is the runtime stand-in for a
// compile-time exclusive borrow; a violation surfaces as a loud failed
// operation, never as silent aliasing.
//
// Release returns the loan. Releasing is idempotent; a released view
// refuses all further access.
type RegionMut[T any] struct {
	parent   loanParent[T]
	left     int
	top      int
	width    int
	height   int
	loaned   bool // a nested mutable view is active
	released bool
}

func newRegionMut[T any](parent loanParent[T], x, y, w, h int) (*RegionMut[T], error) {
	if x < 0 || y < 0 || w < 0 || h < 0 {
		return nil, ErrOutOfBounds
	}
	if w > 0 && h > 0 && !parent.InBounds(x+w-1, y+h-1) {
		return nil, ErrOutOfBounds
	}
	if err := parent.loanOut(); err != nil {
		return nil, err
	}
	return &RegionMut[T]{parent: parent, left: x, top: y, width: w, height: h}, nil
}

// Release returns exclusive access to the parent. Safe to call more
// than once. Nested mutable views must be released before their parent
// view.
func (rg *RegionMut[T]) Release() {
	if rg.released {
		return
	}
	rg.released = true
	rg.parent.loanBack()
}

// blocked reports whether the view may not touch the parent: either it
// was released, or a nested mutable view currently holds the loan.
func (rg *RegionMut[T]) blocked() bool {
	return rg.released || rg.loaned
}

func (rg *RegionMut[T]) Left() int   { return rg.left }
func (rg *RegionMut[T]) Top() int    { return rg.top }
func (rg *RegionMut[T]) Right() int  { return rg.left + rg.width }
func (rg *RegionMut[T]) Bottom() int { return rg.top + rg.height }

// Get checks the view's own bounds before translating, then reads
// through to parent storage.
func (rg *RegionMut[T]) Get(x, y int) (T, bool) {
	p := rg.At(x, y)
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

// At returns a pointer into parent storage, nil when out of the view's
// bounds or the view is blocked.
func (rg *RegionMut[T]) At(x, y int) *T {
	if rg.blocked() || !rg.InBounds(x, y) {
		return nil
	}
	return rg.parent.cellAt(rg.left+x, rg.top+y)
}

// Set writes v at the view-local (x, y) and reports whether the write
// happened.
func (rg *RegionMut[T]) Set(x, y int, v T) bool {
	p := rg.At(x, y)
	if p == nil {
		return false
	}
	*p = v
	return true
}

// Replace stores v at (x, y), returning the previous value. Out of
// bounds, v comes back with false.
func (rg *RegionMut[T]) Replace(x, y int, v T) (T, bool) {
	p := rg.At(x, y)
	if p == nil {
		return v, false
	}
	old := *p
	*p = v
	return old, true
}

// Clear resets every cell of the view to the zero value of T. Cells of
// the parent outside the view are untouched.
func (rg *RegionMut[T]) Clear() bool {
	var zero T
	return rg.ClearTo(zero)
}

// ClearTo broadcasts v to every cell of the view.
func (rg *RegionMut[T]) ClearTo(v T) bool {
	if rg.blocked() {
		return false
	}
	for r := 0; r < rg.height; r++ {
		row, ok := rg.RowMut(r)
		if !ok {
			return false
		}
		fillRow(row, v)
	}
	return true
}

func (rg *RegionMut[T]) Width() int  { return rg.width }
func (rg *RegionMut[T]) Height() int { return rg.height }

func (rg *RegionMut[T]) Size() (int, int) { return rg.width, rg.height }

// InBounds reports whether (x, y) addresses a cell of the view.
func (rg *RegionMut[T]) InBounds(x, y int) bool {
	return x >= 0 && x < rg.width && y >= 0 && y < rg.height
}

// Row returns the view's row r sliced out of the parent row top+r.
func (rg *RegionMut[T]) Row(r int) ([]T, bool) {
	if rg.blocked() || r < 0 || r >= rg.height {
		return nil, false
	}
	prow := rg.parent.rowSlice(rg.top + r)
	if len(prow) < rg.left+rg.width {
		return nil, false
	}
	return prow[rg.left : rg.left+rg.width], true
}

// RowMut is Row; the slice writes through to parent storage.
func (rg *RegionMut[T]) RowMut(r int) ([]T, bool) {
	return rg.Row(r)
}

// Rows returns a fresh iterator over the view's rows.
func (rg *RegionMut[T]) Rows() *RowIter[T] {
	return newRowIter(rg.height, rg.Row)
}

// RowsMut is Rows with writable slices.
func (rg *RegionMut[T]) RowsMut() *RowIter[T] {
	return newRowIter(rg.height, rg.RowMut)
}

// Region derives a nested read-only view of this view.
func (rg *RegionMut[T]) Region(x, y, w, h int) (*Region[T], bool) {
	return NewRegion[T](rg, x, y, w, h)
}

// RegionMut derives a nested mutable view. The nested view checks this
// view out exactly as this view checked out its parent, so exclusivity
// holds layer by layer.
func (rg *RegionMut[T]) RegionMut(x, y, w, h int) (*RegionMut[T], error) {
	return newRegionMut[T](rg, x, y, w, h)
}

func (rg *RegionMut[T]) loanOut() error {
	if rg.released || rg.loaned {
		return ErrLoaned
	}
	rg.loaned = true
	return nil
}

func (rg *RegionMut[T]) loanBack() { rg.loaned = false }

func (rg *RegionMut[T]) cellAt(x, y int) *T {
	if rg.released || !rg.InBounds(x, y) {
		return nil
	}
	return rg.parent.cellAt(rg.left+x, rg.top+y)
}

func (rg *RegionMut[T]) rowSlice(r int) []T {
	if rg.released || r < 0 || r >= rg.height {
		return nil
	}
	prow := rg.parent.rowSlice(rg.top + r)
	if len(prow) < rg.left+rg.width {
		return nil
	}
	return prow[rg.left : rg.left+rg.width]
}

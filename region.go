package tilegrid

// Region is a read-only rectangular window into a parent grid. It owns
// no cells: every access translates the region's (0,0)-origin
// coordinates by (left, top) and delegates to the parent.
//
// The rectangle is validated once at construction against the immediate
// parent; nested regions re-validate only one layer up, relying on each
// parent's own construction invariant transitively.
type Region[T any] struct {
	parent Grid[T]
	rows   RowGrid[T] // non-nil when the parent has row capability
	left   int
	top    int
	width  int
	height int
}

// NewRegion creates a view of the rectangle at (x, y) sized w by h
// inside parent. It fails when the rectangle does not fit. A zero-sized
// request is always valid and trivially empty, never an out-of-bounds
// fault.
func NewRegion[T any](parent Grid[T], x, y, w, h int) (*Region[T], bool) {
	if x < 0 || y < 0 || w < 0 || h < 0 {
		return nil, false
	}
	if w > 0 && h > 0 && !parent.InBounds(x+w-1, y+h-1) {
		return nil, false
	}
	rg := &Region[T]{parent: parent, left: x, top: y, width: w, height: h}
	rg.rows, _ = parent.(RowGrid[T])
	return rg, true
}

// Parent returns the grid this region views.
func (rg *Region[T]) Parent() Grid[T] { return rg.parent }

func (rg *Region[T]) Left() int   { return rg.left }
func (rg *Region[T]) Top() int    { return rg.top }
func (rg *Region[T]) Right() int  { return rg.left + rg.width }
func (rg *Region[T]) Bottom() int { return rg.top + rg.height }

// Get checks the region's own bounds first, so a local coordinate can
// never silently land on a valid but wrong parent cell.
func (rg *Region[T]) Get(x, y int) (T, bool) {
	if !rg.InBounds(x, y) {
		var zero T
		return zero, false
	}
	return rg.parent.Get(rg.left+x, rg.top+y)
}

func (rg *Region[T]) Width() int  { return rg.width }
func (rg *Region[T]) Height() int { return rg.height }

func (rg *Region[T]) Size() (int, int) { return rg.width, rg.height }

// InBounds reports whether (x, y) addresses a cell of the region.
func (rg *Region[T]) InBounds(x, y int) bool {
	return x >= 0 && x < rg.width && y >= 0 && y < rg.height
}

// Row returns the region's row r: the parent row top+r sliced to
// [left, left+width). Absent when the parent lacks row capability, the
// row is out of range, or the parent row is unexpectedly short.
func (rg *Region[T]) Row(r int) ([]T, bool) {
	if rg.rows == nil || r < 0 || r >= rg.height {
		return nil, false
	}
	prow, ok := rg.rows.Row(rg.top + r)
	if !ok || len(prow) < rg.left+rg.width {
		return nil, false
	}
	return prow[rg.left : rg.left+rg.width], true
}

// Rows returns a fresh iterator over the region's rows. Each step
// fetches and slices one parent row; nothing is materialized up front.
func (rg *Region[T]) Rows() *RowIter[T] {
	return newRowIter(rg.height, rg.Row)
}

// Region derives a nested view. The new region references this region,
// not the root, so translation composes one layer at a time.
func (rg *Region[T]) Region(x, y, w, h int) (*Region[T], bool) {
	return NewRegion[T](rg, x, y, w, h)
}

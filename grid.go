package tilegrid

import "errors"

// ErrOutOfBounds is returned when a mutable view is requested for a
// rectangle that does not fit its parent.
var ErrOutOfBounds = errors.New("tilegrid: rectangle out of parent bounds")

// ErrLoaned is returned when a mutable view is requested while another
// mutable view of the same parent is still active.
var ErrLoaned = errors.New("tilegrid: parent has an active mutable view")

// Grid is the read capability over a rectangular index space.
// Coordinates outside [0,Width) x [0,Height) report absence; nothing panics.
type Grid[T any] interface {
	// Get returns a copy of the cell at (x, y), or the zero value and
	// false when (x, y) is out of bounds.
	Get(x, y int) (T, bool)

	Width() int
	Height() int
	Size() (w, h int)

	// InBounds reports x < Width() && y < Height() (negatives excluded).
	// Every bounds check in this package is exactly this predicate.
	InBounds(x, y int) bool
}

// RowGrid extends Grid with contiguous per-row access.
//
// Row slices are live views into storage, not copies. Callers holding a
// grid through the read capability must not write through them; the
// enforced guarantee in this package is the mutable-view loan
// discipline, not slice immutability.
type RowGrid[T any] interface {
	Grid[T]

	// Row returns the cells of row r as one contiguous slice of length
	// Width(), or nil and false when r is out of range.
	Row(r int) ([]T, bool)

	// Rows returns a fresh double-ended iterator over all rows, top to
	// bottom. Lazy: each step fetches one row.
	Rows() *RowIter[T]
}

// MutGrid extends Grid with positional writes.
//
// While a mutable view is checked out of a grid, every operation here
// (and every read) fails as if out of bounds until the view is
// released.
type MutGrid[T any] interface {
	Grid[T]

	// At returns a pointer to the cell at (x, y), or nil when out of
	// bounds or loaned out.
	At(x, y int) *T

	// Set writes v at (x, y) and reports whether the write happened.
	Set(x, y int, v T) bool

	// Replace stores v at (x, y) and returns the previous value with
	// true. Out of bounds, v itself comes back with false so the caller
	// keeps the value.
	Replace(x, y int, v T) (T, bool)

	// Clear overwrites every cell with the zero value of T. ClearTo
	// broadcasts v instead. Both report false when the grid is loaned
	// out to a mutable view and nothing was written.
	Clear() bool
	ClearTo(v T) bool
}

// RowMutGrid is the full capability surface: reads, writes and row
// access, mutable rows included.
type RowMutGrid[T any] interface {
	MutGrid[T]
	RowGrid[T]

	// RowMut returns row r for writing, or nil and false when r is out
	// of range or the grid is loaned out.
	RowMut(r int) ([]T, bool)

	// RowsMut is Rows with writable slices.
	RowsMut() *RowIter[T]
}

// loanParent is what a mutable view needs from the grid it borrows: the
// public surface, the checkout protocol, and raw cell access that
// bypasses the loan flag for the view's own traffic. Fixed, Dyn and
// RegionMut implement it.
type loanParent[T any] interface {
	RowMutGrid[T]

	loanOut() error
	loanBack()

	// cellAt and rowSlice are bounds-checked but not loan-checked.
	cellAt(x, y int) *T
	rowSlice(r int) []T
}

// Compile-time capability checks.
var (
	_ RowMutGrid[int] = (*Fixed[int])(nil)
	_ RowMutGrid[int] = (*Dyn[int])(nil)
	_ RowGrid[int]    = (*Region[int])(nil)
	_ RowMutGrid[int] = (*RegionMut[int])(nil)

	_ loanParent[int] = (*Fixed[int])(nil)
	_ loanParent[int] = (*Dyn[int])(nil)
	_ loanParent[int] = (*RegionMut[int])(nil)
)

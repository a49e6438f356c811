// Package tilegrid provides generic 2D grids of homogeneous cells with
// uniform positional access, row-wise bulk access, and rectangular
// sub-views.
//
// Two root storage types own cells: Fixed (dimensions locked at
// construction, two-level row layout) and Dyn (runtime-sized, one
// contiguous buffer, height derived from length). Both satisfy the same
// capability interfaces, so callers never care which backs a grid.
//
// Views never own cells. Region is a read-only window; RegionMut is an
// exclusive mutable window: checking one out suspends every other
// accessor of the parent until Release, which makes overlapping
// sub-rectangle writes impossible rather than merely discouraged.
//
// Design principles:
//   - Capability interfaces, not one monolithic base: Grid (read),
//     RowGrid (rows), MutGrid (writes), RowMutGrid (everything)
//   - Out-of-bounds access reports absence, never panics
//   - Views translate coordinates one layer at a time and validate
//     their rectangle once, at construction, against the immediate parent
//   - Single-threaded: wrap a whole grid in your own lock if you need
//     cross-goroutine sharing
//
// Usage pattern:
//
//	g := tilegrid.NewDyn[rune](80, 24)
//	g.Set(2, 1, 'x')
//
//	view, err := g.RegionMut(10, 5, 20, 10)
//	if err != nil {
//	    // parent loaned out or rectangle does not fit
//	}
//	view.ClearTo('.')
//	view.Release()
//
//	for row := range g.Rows().All() {
//	    draw(row)
//	}
package tilegrid

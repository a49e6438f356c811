package tilegrid

import "iter"

// RowIter walks row slices from either end. It is lazy (one row fetched
// per step) and finite; Rows()/RowsMut() return a fresh iterator each
// call so iteration is restartable.
type RowIter[T any] struct {
	fetch func(r int) ([]T, bool)
	front int
	back  int // exclusive
}

func newRowIter[T any](height int, fetch func(r int) ([]T, bool)) *RowIter[T] {
	return &RowIter[T]{fetch: fetch, back: height}
}

// Next returns the next row from the front, or nil and false when the
// iterator is exhausted (or the underlying grid was loaned out mid
// iteration).
func (it *RowIter[T]) Next() ([]T, bool) {
	if it.front >= it.back {
		return nil, false
	}
	row, ok := it.fetch(it.front)
	if !ok {
		return nil, false
	}
	it.front++
	return row, true
}

// Back returns the next row from the rear, enabling bottom-up traversal.
func (it *RowIter[T]) Back() ([]T, bool) {
	if it.front >= it.back {
		return nil, false
	}
	row, ok := it.fetch(it.back - 1)
	if !ok {
		return nil, false
	}
	it.back--
	return row, true
}

// Len reports how many rows remain.
func (it *RowIter[T]) Len() int {
	return it.back - it.front
}

// All adapts the remaining forward traversal to a range-over-func
// sequence: for row := range it.All() { ... }
func (it *RowIter[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for {
			row, ok := it.Next()
			if !ok {
				return
			}
			if !yield(row) {
				return
			}
		}
	}
}

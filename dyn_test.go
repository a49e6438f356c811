package tilegrid

import "testing"

// TestDynSetGetRoundTrip covers the width-5 height-4 scenario: one write,
// point read, and the surrounding row.
func TestDynSetGetRoundTrip(t *testing.T) {
	g := NewDyn[int](5, 4)

	if !g.Set(2, 1, 9) {
		t.Fatalf("Set(2,1,9) failed on in-bounds cell")
	}
	if v, ok := g.Get(2, 1); !ok || v != 9 {
		t.Errorf("Get(2,1) = (%d, %v), want (9, true)", v, ok)
	}

	row, ok := g.Row(1)
	if !ok {
		t.Fatalf("Row(1) failed")
	}
	want := []int{0, 0, 9, 0, 0}
	if len(row) != len(want) {
		t.Fatalf("Row(1) length %d, want %d", len(row), len(want))
	}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("Row(1)[%d] = %d, want %d", i, row[i], want[i])
		}
	}
}

func TestDynOutOfBounds(t *testing.T) {
	g := NewDyn[int](3, 2)

	tests := []struct {
		name string
		x, y int
	}{
		{"X past width", 3, 0},
		{"Y past height", 0, 2},
		{"Both past", 5, 5},
		{"Negative X", -1, 0},
		{"Negative Y", 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if g.InBounds(tt.x, tt.y) {
				t.Errorf("InBounds(%d,%d) = true, want false", tt.x, tt.y)
			}
			if _, ok := g.Get(tt.x, tt.y); ok {
				t.Errorf("Get(%d,%d) succeeded out of bounds", tt.x, tt.y)
			}
			if g.At(tt.x, tt.y) != nil {
				t.Errorf("At(%d,%d) returned non-nil out of bounds", tt.x, tt.y)
			}
			if g.Set(tt.x, tt.y, 1) {
				t.Errorf("Set(%d,%d) succeeded out of bounds", tt.x, tt.y)
			}
			if back, ok := g.Replace(tt.x, tt.y, 7); ok || back != 7 {
				t.Errorf("Replace(%d,%d,7) = (%d, %v), want value returned with false", tt.x, tt.y, back, ok)
			}
		})
	}

	// No write above may have touched storage
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if v, _ := g.Get(x, y); v != 0 {
				t.Errorf("cell (%d,%d) = %d after rejected writes, want 0", x, y, v)
			}
		}
	}
}

func TestDynInBoundsMatchesDimensions(t *testing.T) {
	g := NewDyn[byte](4, 3)
	for y := -1; y <= 4; y++ {
		for x := -1; x <= 5; x++ {
			want := x >= 0 && y >= 0 && x < g.Width() && y < g.Height()
			if got := g.InBounds(x, y); got != want {
				t.Errorf("InBounds(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestDynReplace(t *testing.T) {
	g := NewDynOf[string](2, 2, "a")

	old, ok := g.Replace(1, 1, "b")
	if !ok || old != "a" {
		t.Errorf("Replace(1,1) = (%q, %v), want (\"a\", true)", old, ok)
	}
	if v, _ := g.Get(1, 1); v != "b" {
		t.Errorf("cell (1,1) = %q after Replace, want \"b\"", v)
	}
}

func TestDynClear(t *testing.T) {
	g := NewDynOf[int](4, 4, 3)

	if !g.Clear() {
		t.Fatalf("Clear failed")
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if v, _ := g.Get(x, y); v != 0 {
				t.Errorf("cell (%d,%d) = %d after Clear, want 0", x, y, v)
			}
		}
	}

	if !g.ClearTo(7) {
		t.Fatalf("ClearTo failed")
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if v, _ := g.Get(x, y); v != 7 {
				t.Errorf("cell (%d,%d) = %d after ClearTo(7), want 7", x, y, v)
			}
		}
	}
}

// TestDynDerivedHeight verifies height is computed from buffer length,
// not stored.
func TestDynDerivedHeight(t *testing.T) {
	tests := []struct {
		name       string
		cells      int
		width      int
		wantHeight int
	}{
		{"Exact rows", 20, 5, 4},
		{"Single row", 5, 5, 1},
		{"One column", 4, 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, ok := DynFromSlice(make([]int, tt.cells), tt.width)
			if !ok {
				t.Fatalf("DynFromSlice rejected %d cells at width %d", tt.cells, tt.width)
			}
			if g.Height() != tt.wantHeight {
				t.Errorf("Height() = %d, want %d", g.Height(), tt.wantHeight)
			}
		})
	}
}

func TestDynFromSliceRejectsRaggedBuffer(t *testing.T) {
	if _, ok := DynFromSlice(make([]int, 7), 3); ok {
		t.Errorf("DynFromSlice accepted 7 cells at width 3")
	}
	if _, ok := DynFromSlice(make([]int, 3), 0); ok {
		t.Errorf("DynFromSlice accepted non-empty buffer at width 0")
	}
	if _, ok := DynFromSlice[int](nil, 0); !ok {
		t.Errorf("DynFromSlice rejected empty buffer at width 0")
	}
}

func TestDynCapStartsEmpty(t *testing.T) {
	g := NewDynCap[int](8, 16)
	if g.Width() != 8 {
		t.Errorf("Width() = %d, want 8", g.Width())
	}
	if g.Height() != 0 {
		t.Errorf("Height() = %d, want 0", g.Height())
	}
	if _, ok := g.Get(0, 0); ok {
		t.Errorf("Get(0,0) succeeded on empty grid")
	}
}

func TestDynZeroDimensions(t *testing.T) {
	g := NewDyn[int](0, 5)
	if w, h := g.Size(); w != 0 || h != 0 {
		t.Errorf("Size() = (%d,%d) for zero width, want (0,0)", w, h)
	}
	if g.InBounds(0, 0) {
		t.Errorf("InBounds(0,0) = true on empty grid")
	}
	if !g.Clear() {
		t.Errorf("Clear failed on empty grid")
	}
}

package automaton

import "testing"

func TestParseRule(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Rule
		wantErr bool
	}{
		{"Conway", "B3/S23", Life, false},
		{"HighLife", "B36/S23", HighLife, false},
		{"Seeds, empty survive", "B2/S", Seeds, false},
		{"Lowercase", "b3/s23", Life, false},
		{"Missing slash", "B3S23", Rule{}, true},
		{"Digit out of range", "B9/S23", Rule{}, true},
		{"Missing prefix", "3/23", Rule{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRule(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRule(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseRule(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRuleRoundTripString(t *testing.T) {
	if s := Life.String(); s != "B3/S23" {
		t.Errorf("Life.String() = %q, want \"B3/S23\"", s)
	}
}

// TestBlinkerOscillates: a horizontal blinker flips to vertical and back
// with period 2.
func TestBlinkerOscillates(t *testing.T) {
	w := New(Config{Width: 5, Height: 5})
	if err := w.Stamp(Blinker, 1, 2); err != nil {
		t.Fatalf("Stamp failed: %v", err)
	}

	w.Step()
	for _, p := range []struct{ x, y int }{{2, 1}, {2, 2}, {2, 3}} {
		if !w.Get(p.x, p.y) {
			t.Errorf("cell (%d,%d) dead after step, want alive (vertical phase)", p.x, p.y)
		}
	}
	if w.Get(1, 2) || w.Get(3, 2) {
		t.Errorf("horizontal arms still alive after step")
	}

	w.Step()
	for _, p := range []struct{ x, y int }{{1, 2}, {2, 2}, {3, 2}} {
		if !w.Get(p.x, p.y) {
			t.Errorf("cell (%d,%d) dead after two steps, want horizontal again", p.x, p.y)
		}
	}
	if w.Generation() != 2 {
		t.Errorf("Generation() = %d, want 2", w.Generation())
	}
}

// TestBlockIsStill: the 2x2 block never changes.
func TestBlockIsStill(t *testing.T) {
	w := New(Config{Width: 6, Height: 6})
	if err := w.Stamp(Block, 2, 2); err != nil {
		t.Fatalf("Stamp failed: %v", err)
	}
	before := w.Population()

	for i := 0; i < 5; i++ {
		w.Step()
	}

	if w.Population() != before {
		t.Errorf("population %d after 5 steps, want %d", w.Population(), before)
	}
	for _, p := range []struct{ x, y int }{{2, 2}, {3, 2}, {2, 3}, {3, 3}} {
		if !w.Get(p.x, p.y) {
			t.Errorf("block cell (%d,%d) died", p.x, p.y)
		}
	}
}

// TestGliderWrapsTorus sends a glider across the seam of a wrapped
// world and checks it survives with constant population.
func TestGliderWrapsTorus(t *testing.T) {
	w := New(Config{Width: 8, Height: 8, Wrap: true})
	if err := w.Stamp(Glider, 5, 5); err != nil {
		t.Fatalf("Stamp failed: %v", err)
	}

	for i := 0; i < 32; i++ {
		w.Step()
		if pop := w.Population(); pop != 5 {
			t.Fatalf("population %d at step %d, want 5", pop, i+1)
		}
	}
}

func TestGliderSettlesAtHardEdge(t *testing.T) {
	w := New(Config{Width: 6, Height: 6, Wrap: false})
	w.Stamp(Glider, 3, 3)

	// Enough steps for the glider to crash into the corner and settle
	for i := 0; i < 40; i++ {
		w.Step()
	}

	// Debris must be stable or a short oscillator, never a traveler:
	// the state at step 40 recurs within two further steps
	before := snapshot(w)
	w.Step()
	w.Step()
	after := snapshot(w)
	if before != after {
		t.Errorf("world still changing 40 steps after corner crash")
	}
}

func snapshot(w *World) string {
	g := w.Grid()
	buf := make([]byte, 0, 64)
	for row := range g.Rows().All() {
		for _, alive := range row {
			if alive {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

func TestStampRejectsOversize(t *testing.T) {
	w := New(Config{Width: 4, Height: 4})
	if err := w.Stamp(Glider, 3, 3); err == nil {
		t.Errorf("Stamp past the boundary succeeded")
	}
	if w.Population() != 0 {
		t.Errorf("rejected stamp wrote %d cells", w.Population())
	}
}

func TestToggleAndClear(t *testing.T) {
	w := New(Config{Width: 3, Height: 3})

	if alive, ok := w.Toggle(1, 1); !ok || !alive {
		t.Fatalf("Toggle(1,1) = (%v, %v), want alive after flip from empty", alive, ok)
	}
	// Toggling back to dead is still a successful toggle
	if alive, ok := w.Toggle(1, 1); !ok || alive {
		t.Errorf("second Toggle(1,1) = (%v, %v), want (false, true)", alive, ok)
	}
	// Out of bounds is the only failure, distinguishable from "now dead"
	if alive, ok := w.Toggle(9, 9); ok || alive {
		t.Errorf("Toggle(9,9) = (%v, %v), want (false, false)", alive, ok)
	}

	w.Set(0, 0, true)
	w.Step()
	w.Clear()
	if w.Population() != 0 || w.Generation() != 0 {
		t.Errorf("Clear left population %d generation %d", w.Population(), w.Generation())
	}
}

func TestRandomizeDeterministic(t *testing.T) {
	a := New(Config{Width: 16, Height: 16, Seed: 5, Density: 0.4})
	b := New(Config{Width: 16, Height: 16, Seed: 5, Density: 0.4})

	ga, gb := a.Grid(), b.Grid()
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			va, _ := ga.Get(x, y)
			vb, _ := gb.Get(x, y)
			if va != vb {
				t.Fatalf("same seed diverged at (%d,%d)", x, y)
			}
		}
	}
	if a.Population() == 0 {
		t.Errorf("seeded world is empty")
	}
}

func TestSeedsRuleEveryoneDies(t *testing.T) {
	w := New(Config{Width: 10, Height: 10, Rule: Seeds})
	w.Stamp(Block, 4, 4)

	w.Step()
	for _, p := range []struct{ x, y int }{{4, 4}, {5, 4}, {4, 5}, {5, 5}} {
		if w.Get(p.x, p.y) {
			t.Errorf("cell (%d,%d) survived under Seeds", p.x, p.y)
		}
	}
}

func TestEmptyWorldSteps(t *testing.T) {
	w := New(Config{Width: 0, Height: 0})
	w.Step() // must not panic
	if w.Generation() != 1 {
		t.Errorf("Generation() = %d, want 1", w.Generation())
	}
}

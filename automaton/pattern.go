package automaton

import "strings"

// Pattern is a small stamp of cells parsed from plaintext: '#' or 'O'
// for alive, anything else dead, one line per row. Rows are padded to
// the widest line.
type Pattern struct {
	Name  string
	W, H  int
	cells []bool
}

// ParsePattern builds a pattern from its plaintext form.
func ParsePattern(name, text string) Pattern {
	lines := strings.Split(strings.Trim(text, "\n"), "\n")
	w := 0
	for _, l := range lines {
		if len(l) > w {
			w = len(l)
		}
	}
	p := Pattern{Name: name, W: w, H: len(lines), cells: make([]bool, w*len(lines))}
	for y, l := range lines {
		for x := 0; x < len(l); x++ {
			if l[x] == '#' || l[x] == 'O' {
				p.cells[y*w+x] = true
			}
		}
	}
	return p
}

// Alive reports the cell at (x, y) of the stamp.
func (p Pattern) Alive(x, y int) bool {
	if x < 0 || x >= p.W || y < 0 || y >= p.H {
		return false
	}
	return p.cells[y*p.W+x]
}

// Classic stamps.
var (
	Glider = ParsePattern("glider", `
.#.
..#
###`)

	Blinker = ParsePattern("blinker", `###`)

	Block = ParsePattern("block", `
##
##`)

	RPentomino = ParsePattern("r-pentomino", `
.##
##.
.#.`)

	LWSS = ParsePattern("lwss", `
.####
#...#
....#
#..#.`)
)

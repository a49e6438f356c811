package maze

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/tilegrid"
)

// Cell values stored in the grid
const (
	Wall    = true
	Passage = false
)

type Point struct {
	X, Y int
}

type Config struct {
	Width, Height int

	// Braiding: 0.0 (Perfect Maze/Tree) to 1.0 (No dead ends/Graph).
	// Higher values add cycles. Constraints (No Plazas/Pillars) take precedence.
	Braiding float64

	// If true, the outer boundary is set to Passage.
	RemoveBorders bool

	Start *Point // Optional (nil = Automatic)
	End   *Point // Optional (nil = Automatic)
	Seed  int64  // Optional (0 = Random)
}

type Result struct {
	Grid       *tilegrid.Dyn[bool]
	Start, End Point
	Solution   []Point
}

// Generate creates a stochastic topological maze on a tile grid.
func Generate(cfg Config) Result {
	// Odd dimensions keep the node/wall lattice aligned; round DOWN to
	// stay within requested bounds.
	rows := ensureOdd(cfg.Height)
	cols := ensureOdd(cfg.Width)

	g := tilegrid.NewDynOf(cols, rows, Wall)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	startDefX, startDefY := 1, 1
	endDefX, endDefY := cols-2, rows-2

	if cfg.RemoveBorders {
		// Jailbreak: Start Center, End Right Edge
		startDefX, startDefY = (cols/2)|1, (rows/2)|1
		endDefX, endDefY = cols-1, (rows/2)|1
	}

	start := resolvePoint(g, cfg.Start, startDefX, startDefY)
	end := resolvePoint(g, cfg.End, endDefX, endDefY)

	// Recursive backtracker carves a uniform spanning tree.
	backtrack(g, start, rng)

	// Border removal happens BEFORE braiding so the braiding pass sees
	// external connections and doesn't force internal loops on edge nodes.
	if cfg.RemoveBorders {
		stripBorders(g)
	}

	if cfg.Braiding > 0 {
		braid(g, cfg.Braiding, rng)
	}

	if cfg.RemoveBorders {
		g.Set(start.X, start.Y, Passage)
		g.Set(end.X, end.Y, Passage)
	} else {
		forceOpen(g, start)
		forceOpen(g, end)
	}

	return Result{
		Grid:     g,
		Start:    start,
		End:      end,
		Solution: Solve(g, start, end),
	}
}

var ortho = []Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
var jumps = []Point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}

func backtrack(g *tilegrid.Dyn[bool], start Point, rng *rand.Rand) {
	if !g.InBounds(start.X, start.Y) {
		start = Point{1, 1}
	}

	cols, rows := g.Size()
	stack := []Point{start}
	g.Set(start.X, start.Y, Passage)

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates := make([]Point, 0, 4)

		for _, d := range jumps {
			nx, ny := curr.X+d.X, curr.Y+d.Y
			// Leave a 1-cell border of walls
			if nx > 0 && nx < cols-1 && ny > 0 && ny < rows-1 {
				if v, ok := g.Get(nx, ny); ok && v == Wall {
					candidates = append(candidates, d)
				}
			}
		}

		if len(candidates) > 0 {
			d := candidates[rng.Intn(len(candidates))]
			g.Set(curr.X+d.X/2, curr.Y+d.Y/2, Passage)
			g.Set(curr.X+d.X, curr.Y+d.Y, Passage)
			stack = append(stack, Point{curr.X + d.X, curr.Y + d.Y})
		} else {
			stack = stack[:len(stack)-1]
		}
	}
}

// braid opens loops at dead ends with the given probability, skipping
// removals that would create plazas or pillars.
func braid(g *tilegrid.Dyn[bool], probability float64, rng *rand.Rand) {
	cols, rows := g.Size()

	// Odd coordinates are the room nodes of the lattice
	for y := 1; y < rows-1; y += 2 {
		for x := 1; x < cols-1; x += 2 {
			if v, _ := g.Get(x, y); v == Wall {
				continue
			}

			// A node is a dead end if exactly one neighbor is open
			exits := 0
			for _, d := range ortho {
				if isPassage(g, x+d.X, y+d.Y) {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= probability {
				continue
			}

			candidates := make([]Point, 0, 4)
			for _, jd := range jumps {
				nx, ny := x+jd.X, y+jd.Y     // target neighbor
				wx, wy := x+jd.X/2, y+jd.Y/2 // intervening wall

				if isPassage(g, nx, ny) && isWall(g, wx, wy) && safeToOpen(g, wx, wy) {
					candidates = append(candidates, Point{wx, wy})
				}
			}

			if len(candidates) > 0 {
				c := candidates[rng.Intn(len(candidates))]
				g.Set(c.X, c.Y, Passage)
			}
		}
	}
}

// safeToOpen checks whether turning (x, y) into a passage creates
// prohibited topology: a plaza (2x2 open block) or a pillar (fully
// isolated wall node).
func safeToOpen(g *tilegrid.Dyn[bool], x, y int) bool {
	// Out of bounds reads as Wall for the quadrant checks
	isP := func(tx, ty int) bool { return isPassage(g, tx, ty) }

	if isP(x-1, y-1) && isP(x, y-1) && isP(x-1, y) {
		return false
	}
	if isP(x, y-1) && isP(x+1, y-1) && isP(x+1, y) {
		return false
	}
	if isP(x-1, y) && isP(x-1, y+1) && isP(x, y+1) {
		return false
	}
	if isP(x+1, y) && isP(x, y+1) && isP(x+1, y+1) {
		return false
	}

	// A neighboring wall becomes a pillar if (x, y) was its last wall
	// connection. (x, y) is still Wall in storage but conceptually a
	// passage here, so it never counts.
	for _, d := range ortho {
		nx, ny := x+d.X, y+d.Y
		if !isWall(g, nx, ny) {
			continue
		}
		connections := 0
		for _, d2 := range ortho {
			nnx, nny := nx+d2.X, ny+d2.Y
			if nnx == x && nny == y {
				continue
			}
			if isWall(g, nnx, nny) {
				connections++
			}
		}
		if connections == 0 {
			return false
		}
	}

	return true
}

func stripBorders(g *tilegrid.Dyn[bool]) {
	cols, rows := g.Size()
	if rows == 0 {
		return
	}
	top, _ := g.RowMut(0)
	bottom, _ := g.RowMut(rows - 1)
	for x := range top {
		top[x] = Passage
		bottom[x] = Passage
	}
	for y := 0; y < rows; y++ {
		g.Set(0, y, Passage)
		g.Set(cols-1, y, Passage)
	}
}

func ensureOdd(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}

func isPassage(g *tilegrid.Dyn[bool], x, y int) bool {
	v, ok := g.Get(x, y)
	return ok && v == Passage
}

func isWall(g *tilegrid.Dyn[bool], x, y int) bool {
	v, ok := g.Get(x, y)
	return ok && v == Wall
}

func resolvePoint(g *tilegrid.Dyn[bool], p *Point, defX, defY int) Point {
	if p == nil {
		return Point{defX, defY}
	}
	w, h := g.Size()
	x, y := p.X, p.Y
	if x < 0 {
		x = 0
	}
	if x >= w {
		x = w - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= h {
		y = h - 1
	}
	return Point{x, y}
}

func forceOpen(g *tilegrid.Dyn[bool], p Point) {
	if !g.Set(p.X, p.Y, Passage) {
		return
	}

	// If isolated, connect to the nearest interior neighbor
	for _, d := range ortho {
		if isPassage(g, p.X+d.X, p.Y+d.Y) {
			return
		}
	}
	cols, rows := g.Size()
	for _, d := range ortho {
		nx, ny := p.X+d.X, p.Y+d.Y
		if nx > 0 && nx < cols-1 && ny > 0 && ny < rows-1 {
			g.Set(nx, ny, Passage)
			return
		}
	}
}

// Solve runs a BFS from start to end and returns the path including both
// endpoints, or nil when unreachable.
func Solve(g *tilegrid.Dyn[bool], start, end Point) []Point {
	if !isPassage(g, start.X, start.Y) || !isPassage(g, end.X, end.Y) {
		return nil
	}

	queue := []Point{start}
	cameFrom := make(map[Point]Point)
	visited := map[Point]bool{start: true}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == end {
			path := []Point{}
			for curr != start {
				path = append([]Point{curr}, path...)
				curr = cameFrom[curr]
			}
			return append([]Point{start}, path...)
		}

		for _, d := range ortho {
			next := Point{curr.X + d.X, curr.Y + d.Y}
			if isPassage(g, next.X, next.Y) && !visited[next] {
				visited[next] = true
				cameFrom[next] = curr
				queue = append(queue, next)
			}
		}
	}
	return nil
}

package main

import (
	"flag"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tilegrid/maze"
	"github.com/lixenwraith/tilegrid/render"
)

var (
	WallRune     = '█'
	PassageRune  = ' '
	SolutionRune = '·'

	WallColor     = tcell.ColorSlateGray
	SolutionColor = tcell.ColorGreen
	EndpointColor = tcell.ColorRed
)

func main() {
	seed := flag.Int64("seed", 0, "maze seed (0 = random)")
	braiding := flag.Float64("braiding", 0.0, "loop density 0.0-1.0")
	borders := flag.Bool("open-borders", false, "strip the outer wall")
	solution := flag.Bool("solution", true, "overlay the solution path")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()

	view := render.New(screen, render.Binary(
		PassageRune, WallRune,
		tcell.StyleDefault,
		tcell.StyleDefault.Foreground(WallColor),
	))

	currentSeed := *seed
	redraw := func() {
		w, h := screen.Size()
		r := maze.Generate(maze.Config{
			Width:         w,
			Height:        h,
			Braiding:      *braiding,
			RemoveBorders: *borders,
			Seed:          currentSeed,
		})

		screen.Clear()
		view.Draw(r.Grid)

		if *solution {
			style := tcell.StyleDefault.Foreground(SolutionColor)
			for _, p := range r.Solution {
				screen.SetContent(p.X, p.Y, SolutionRune, nil, style)
			}
		}
		endpoint := tcell.StyleDefault.Foreground(EndpointColor)
		screen.SetContent(r.Start.X, r.Start.Y, 'S', nil, endpoint)
		screen.SetContent(r.End.X, r.End.Y, 'E', nil, endpoint)
		screen.Show()
	}

	redraw()
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			redraw()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
				return
			case ev.Rune() == 'n':
				currentSeed = 0 // fresh random maze
				redraw()
			case ev.Rune() == 's':
				*solution = !*solution
				redraw()
			}
		}
	}
}

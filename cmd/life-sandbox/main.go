package main

import (
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/tilegrid/automaton"
	"github.com/lixenwraith/tilegrid/render"
)

// ==========================================
// TUNING VARIABLES - PLAY WITH THESE
// ==========================================

var (
	DeadRune  = '·'
	AliveRune = '█'

	AliveColor  = tcell.ColorGreen
	DeadColor   = tcell.ColorGray
	CursorColor = tcell.ColorYellow

	// Audio blip on cell toggle
	BlipFreq     = 880.0
	BlipDuration = 50 * time.Millisecond
)

// ==========================================

type sandbox struct {
	screen tcell.Screen
	world  *automaton.World
	view   *render.Renderer[bool]

	cursorX, cursorY int
	running          bool
	audioInit        bool
}

func main() {
	ruleArg := flag.String("rule", "B3/S23", "automaton rule in B/S notation")
	wrap := flag.Bool("wrap", true, "join edges into a torus")
	seed := flag.Int64("seed", 0, "random fill seed (0 = start empty)")
	density := flag.Float64("density", 0.3, "live fraction for the seeded fill")
	fps := flag.Int("fps", 15, "generations per second while running")
	mute := flag.Bool("mute", false, "disable audio")
	flag.Parse()

	rule, err := automaton.ParseRule(*ruleArg)
	if err != nil {
		log.Fatalf("bad rule: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()

	w, h := screen.Size()
	sb := &sandbox{
		screen: screen,
		world: automaton.New(automaton.Config{
			Width:   w,
			Height:  h,
			Rule:    rule,
			Wrap:    *wrap,
			Seed:    *seed,
			Density: *density,
		}),
	}
	sb.view = render.New(screen, render.Binary(
		DeadRune, AliveRune,
		tcell.StyleDefault.Foreground(DeadColor),
		tcell.StyleDefault.Foreground(AliveColor),
	))
	sb.cursorX, sb.cursorY = w/2, h/2

	if !*mute {
		if err := sb.initAudio(); err != nil {
			// Non-fatal, the sandbox runs without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	if *fps < 1 {
		*fps = 1
	}
	ticker := time.NewTicker(time.Second / time.Duration(*fps))
	defer ticker.Stop()

	sb.draw()
	for {
		select {
		case ev := <-events:
			if !sb.handleEvent(ev) {
				return
			}
			sb.draw()
		case <-ticker.C:
			if sb.running {
				sb.world.Step()
				sb.draw()
			}
		}
	}
}

func (sb *sandbox) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		sb.audioInit = true
	}
	return err
}

func (sb *sandbox) playBlip() {
	if !sb.audioInit {
		return
	}
	sampleRate := beep.SampleRate(44100)
	sine, _ := generators.SineTone(sampleRate, BlipFreq)
	speaker.Play(beep.Take(sampleRate.N(BlipDuration), sine))
}

// handleEvent processes one terminal event, returning false to quit.
func (sb *sandbox) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		// The world keeps its size; just re-center the cursor if needed
		if sb.cursorX >= w {
			sb.cursorX = w - 1
		}
		if sb.cursorY >= h {
			sb.cursorY = h - 1
		}
		sb.screen.Sync()

	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
			if sb.audioInit {
				speaker.Close()
			}
			return false
		case ev.Rune() == ' ':
			sb.running = !sb.running
		case ev.Rune() == 's':
			sb.world.Step()
		case ev.Rune() == 'r':
			sb.world.Randomize(time.Now().UnixNano(), 0.3)
		case ev.Rune() == 'c':
			sb.world.Clear()
		case ev.Rune() == 't':
			if _, ok := sb.world.Toggle(sb.cursorX, sb.cursorY); ok {
				sb.playBlip()
			}
		case ev.Rune() == 'g':
			if err := sb.world.Stamp(automaton.Glider, sb.cursorX, sb.cursorY); err == nil {
				sb.playBlip()
			}
		case ev.Key() == tcell.KeyLeft || ev.Rune() == 'h':
			sb.moveCursor(-1, 0)
		case ev.Key() == tcell.KeyDown || ev.Rune() == 'j':
			sb.moveCursor(0, 1)
		case ev.Key() == tcell.KeyUp || ev.Rune() == 'k':
			sb.moveCursor(0, -1)
		case ev.Key() == tcell.KeyRight || ev.Rune() == 'l':
			sb.moveCursor(1, 0)
		}
	}
	return true
}

func (sb *sandbox) moveCursor(dx, dy int) {
	g := sb.world.Grid()
	if g.InBounds(sb.cursorX+dx, sb.cursorY+dy) {
		sb.cursorX += dx
		sb.cursorY += dy
	}
}

func (sb *sandbox) draw() {
	sb.view.Draw(sb.world.Grid())

	// Cursor overlay
	ch := DeadRune
	if sb.world.Get(sb.cursorX, sb.cursorY) {
		ch = AliveRune
	}
	sb.screen.SetContent(sb.cursorX, sb.cursorY, ch, nil,
		tcell.StyleDefault.Foreground(CursorColor).Reverse(true))

	sb.view.Show()
}

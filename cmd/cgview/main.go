// Command cgview is an interactive terminal viewer for character
// relationship graphs. It runs the force simulation live: drag nodes
// with the mouse, pan with the middle button or Alt+drag, zoom with
// the wheel, and press R to reset the view.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/hollisb/chargraph/internal/history"
	"github.com/hollisb/chargraph/pkg/graph"
)

// statusRows is the screen height reserved below the canvas.
const statusRows = 2

// App holds all viewer state.
type App struct {
	screen tcell.Screen
	engine *graph.Engine
	loop   *graph.Loop
	config Config

	filename string
	paused   bool
	message  string

	hover graph.HoverTarget

	// Mouse button bookkeeping across motion events.
	leftDown   bool
	middleDown bool

	quit bool
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: cgview <graph.json>")
		os.Exit(1)
	}

	app := &App{
		engine: graph.NewEngine(),
		config: LoadConfig(),
	}
	app.paused = app.config.StartPaused
	app.filename = os.Args[1]

	data, err := os.ReadFile(app.filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", app.filename, err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.Clear()
	app.screen = screen

	app.engine.Logf = func(format string, args ...any) {
		app.message = fmt.Sprintf(format, args...)
	}
	app.engine.OnHover = func(t graph.HoverTarget) {
		app.hover = t
	}

	w, h := screen.Size()
	g := graph.ParseJSON(data)
	cw, ch := app.canvasSize(w, h)
	app.engine.SetGraph(g, cw, ch)

	app.recordHistory(string(data))

	app.loop = graph.NewLoop(
		func() {
			if !app.paused {
				app.engine.Step()
			}
		},
		func() {
			app.draw()
			app.screen.Show()
		},
	)

	app.run()

	app.loop.Invalidate()
	screen.Fini()
}

// canvasSize converts a screen cell size into engine viewport pixels.
func (a *App) canvasSize(cols, rows int) (float64, float64) {
	canvasRows := rows - statusRows
	if canvasRows < 1 {
		canvasRows = 1
	}
	return float64(cols * a.config.CellWidth), float64(canvasRows * a.config.CellHeight)
}

// recordHistory notes the opened file in the shared history store.
// Best effort: the viewer works fine without it.
func (a *App) recordHistory(doc string) {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".chargraph")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}
	store, err := history.Open(filepath.Join(dir, "history.db"))
	if err != nil {
		return
	}
	defer store.Close()
	store.Add(filepath.Base(a.filename), doc)
}

func (a *App) run() {
	// Frame clock: a 60 Hz ticker posts interrupt events carrying the
	// loop token captured at schedule time. A frame scheduled before
	// teardown carries a stale token and runs as a no-op.
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(time.Second / 60)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				a.screen.PostEvent(tcell.NewEventInterrupt(a.loop.Token()))
			}
		}
	}()

	for !a.quit {
		ev := a.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			a.screen.Sync()
			w, h := a.screen.Size()
			a.engine.Resize(a.canvasSize(w, h))
		case *tcell.EventKey:
			a.handleKey(ev)
		case *tcell.EventMouse:
			a.handleMouse(ev)
		case *tcell.EventInterrupt:
			if token, ok := ev.Data().(graph.FrameToken); ok {
				a.loop.Frame(token)
			}
		}
	}
}

func (a *App) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.quit = true
	case tcell.KeyTab:
		a.engine.HoverNext()
	case tcell.KeyUp:
		a.engine.Camera.Pan(0, float64(3*a.config.CellHeight))
	case tcell.KeyDown:
		a.engine.Camera.Pan(0, float64(-3*a.config.CellHeight))
	case tcell.KeyLeft:
		a.engine.Camera.Pan(float64(3*a.config.CellWidth), 0)
	case tcell.KeyRight:
		a.engine.Camera.Pan(float64(-3*a.config.CellWidth), 0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			a.quit = true
		case 'r', 'R':
			a.engine.ResetView()
			a.message = "View reset"
		case ' ':
			a.paused = !a.paused
			if a.paused {
				a.message = "Simulation paused"
			} else {
				a.message = "Simulation running"
			}
		case '+', '=':
			a.engine.Wheel(a.viewCenter(), true)
		case '-', '_':
			a.engine.Wheel(a.viewCenter(), false)
		}
	}
}

func (a *App) viewCenter() graph.Point {
	w, h := a.screen.Size()
	cw, ch := a.canvasSize(w, h)
	return graph.Point{X: cw / 2, Y: ch / 2}
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	p := graph.Point{
		X: float64(x*a.config.CellWidth) + float64(a.config.CellWidth)/2,
		Y: float64(y*a.config.CellHeight) + float64(a.config.CellHeight)/2,
	}
	buttons := ev.Buttons()
	modifier := ev.Modifiers()&(tcell.ModAlt|tcell.ModCtrl) != 0

	if buttons&tcell.WheelUp != 0 {
		a.engine.Wheel(p, true)
		return
	}
	if buttons&tcell.WheelDown != 0 {
		a.engine.Wheel(p, false)
		return
	}

	leftNow := buttons&tcell.Button1 != 0
	middleNow := buttons&tcell.Button3 != 0 // tcell: Button3 = middle

	switch {
	case leftNow && !a.leftDown:
		a.engine.PointerDown(p, graph.ButtonPrimary, modifier)
	case middleNow && !a.middleDown:
		a.engine.PointerDown(p, graph.ButtonMiddle, false)
	case !leftNow && !middleNow && (a.leftDown || a.middleDown):
		a.engine.PointerUp()
	default:
		a.engine.PointerMove(p)
	}

	a.leftDown = leftNow
	a.middleDown = middleNow
}

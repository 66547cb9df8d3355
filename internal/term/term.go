// Package term draws a simulation onto a character terminal.
package term

import (
	"context"
	"fmt"
	"time"

	"torus-life/pkg/core"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

const (
	frameInterval = time.Second / 60
	maxTPS        = 120
)

var (
	aliveStyle  = tcell.StyleDefault.Background(tcell.ColorBlue)
	deadStyle   = tcell.StyleDefault.Background(tcell.ColorWhite)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// View renders a simulation into a tcell screen, two columns per cell with a
// status line underneath.
type View struct {
	screen tcell.Screen
	sim    core.Sim
	pacer  *core.FixedStep
	paused bool
}

// New constructs a View. The screen must already be initialized.
func New(screen tcell.Screen, sim core.Sim, tps int) *View {
	return &View{screen: screen, sim: sim, pacer: core.NewFixedStep(tps)}
}

// Run pumps terminal events and advances the simulation until the user quits
// or ctx is cancelled.
func (v *View) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v.screen.ChannelEvents(events, quit)
		return nil
	})
	g.Go(func() error {
		defer close(quit)
		return v.loop(ctx, events)
	})
	return g.Wait()
}

func (v *View) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !v.handle(ev) {
				return nil
			}
			v.Draw()
		case <-ticker.C:
			if !v.paused && v.pacer.ShouldStep() {
				v.sim.Evolve()
				v.Draw()
			}
		}
	}
}

// handle applies a terminal event and reports whether the loop should continue.
func (v *View) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				v.paused = !v.paused
			case 'n':
				v.sim.Evolve()
			case 'r':
				v.sim.Reset()
			case '+':
				v.pacer.SetTPS(min(v.pacer.TPS()+1, maxTPS))
			case '-':
				v.pacer.SetTPS(max(v.pacer.TPS()-1, 1))
			}
		}
	}
	return true
}

// Draw paints the current state and status line. Cells that do not fit on
// the screen are clipped.
func (v *View) Draw() {
	v.screen.Clear()
	size := v.sim.Size()
	cells := v.sim.Cells()
	sw, sh := v.screen.Size()

	rows := min(size.H, sh-1)
	cols := min(size.W, sw/2)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			style := deadStyle
			if cells[y*size.W+x] != 0 {
				style = aliveStyle
			}
			v.screen.SetContent(2*x, y, ' ', nil, style)
			v.screen.SetContent(2*x+1, y, ' ', nil, style)
		}
	}
	if rows >= 0 && rows < sh {
		v.drawText(0, rows, v.status())
	}
	v.screen.Show()
}

func (v *View) status() string {
	alive := 0
	for _, c := range v.sim.Cells() {
		alive += int(c)
	}
	s := fmt.Sprintf("gen %d  alive %d  tps %d", v.sim.Generation(), alive, v.pacer.TPS())
	if v.paused {
		s += "  [paused]"
	}
	return s
}

func (v *View) drawText(x, y int, s string) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, statusStyle)
	}
}

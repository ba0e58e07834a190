// Package terminal plays the game inside the terminal with termloop, scaling
// the 800x600 scene down to character cells.
package terminal

import (
	"log/slog"
	"time"

	tl "github.com/JoelOtter/termloop"
	"github.com/shvbsle/skirmish/internal/frontends"
	"github.com/shvbsle/skirmish/internal/game"
	"github.com/shvbsle/skirmish/internal/log"
	"github.com/shvbsle/skirmish/internal/render"
	"github.com/shvbsle/skirmish/internal/sim"
)

const DefaultFPS = 60

type Frontend struct {
	newSession func() *game.Session
	fps        float64
}

var _ frontends.Frontend = (*Frontend)(nil)

// New returns a terminal frontend rendering at fps frames per second.
// The simulation always steps at sim.FPS regardless.
func New(newSession func() *game.Session, fps int) *Frontend {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Frontend{newSession: newSession, fps: float64(fps)}
}

func (f *Frontend) Name() string {
	return "terminal"
}

func (f *Frontend) Description() string {
	return "Play in this terminal (Ctrl+C to leave)"
}

func (f *Frontend) Commands() []string {
	return []string{"terminal", "term", "tty"}
}

func (f *Frontend) Launch() error {
	logger := log.Frontend(f.Name())
	session := f.newSession()

	g := tl.NewGame()
	g.Screen().SetFps(f.fps)
	g.SetEndKey(tl.KeyCtrlC)

	level := tl.NewBaseLevel(tl.Cell{
		Bg: tl.ColorBlack,
		Fg: tl.ColorWhite,
		Ch: ' ',
	})
	level.AddEntity(newController(session, logger))
	g.Screen().SetLevel(level)

	logger.Info("terminal game starting", "fps", f.fps)
	g.Start()

	session.RequestQuit()
	logger.Info("terminal game ended", "frames", session.State().Frame)
	return nil
}

// controller is the single termloop entity. Tick collects key events and
// Draw advances the simulation and paints the whole screen.
type controller struct {
	session *game.Session
	keys    *HoldTracker
	clock   stepper
	now     func() time.Time
	logger  *slog.Logger
}

func newController(s *game.Session, logger *slog.Logger) *controller {
	keys := NewHoldTracker(HoldWindow)
	keys.SetWindow(KeyFire, FireHoldWindow)
	return &controller{
		session: s,
		keys:    keys,
		now:     time.Now,
		logger:  logger,
	}
}

func (c *controller) Tick(ev tl.Event) {
	if ev.Type != tl.EventKey {
		return
	}

	if isCopy(ev) {
		if c.session.State().Phase == sim.PhaseGameOver {
			if err := c.session.CopyResult(); err != nil {
				c.logger.Warn("clipboard unavailable", "error", err)
			}
		}
		return
	}

	if k, ok := keyFor(ev); ok {
		c.keys.Press(k, c.now())
	}
}

func (c *controller) Draw(screen *tl.Screen) {
	c.advance(screen.TimeDelta())

	cols, rows := screen.Size()
	grid := render.Rasterize(c.session.Scene(), cols, rows)
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			cell := grid.At(col, row)
			screen.RenderCell(col, row, &tl.Cell{
				Fg: attr(cell.Fg),
				Bg: attr(cell.Bg),
				Ch: cell.Ch,
			})
		}
	}
}

// advance runs however many simulation steps dt seconds are worth.
func (c *controller) advance(dt float64) {
	steps := c.clock.advance(dt)
	if steps == 0 {
		return
	}

	in := c.input(c.now())
	for i := 0; i < steps; i++ {
		ev := c.session.Step(in)
		if ev.Retried {
			// The retry key is still inside its hold window.
			c.keys.Clear()
			in = sim.Input{}
		}
	}
}

func (c *controller) input(now time.Time) sim.Input {
	return sim.Input{
		Left:  c.keys.Held(KeyLeft, now),
		Right: c.keys.Held(KeyRight, now),
		Jump:  c.keys.Held(KeyJump, now),
		Fire:  c.keys.Held(KeyFire, now),
		Retry: c.keys.Held(KeyRetry, now),
	}
}

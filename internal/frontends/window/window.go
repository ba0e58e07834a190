// Package window plays the game in an 800x600 desktop window.
package window

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/shvbsle/skirmish/internal/frontends"
	"github.com/shvbsle/skirmish/internal/game"
	"github.com/shvbsle/skirmish/internal/log"
	"github.com/shvbsle/skirmish/internal/sim"
)

const Title = "Platformer Game"

type Frontend struct {
	newSession func() *game.Session
}

var _ frontends.Frontend = (*Frontend)(nil)

// New returns a window frontend that starts a fresh session from
// newSession on every launch.
func New(newSession func() *game.Session) *Frontend {
	return &Frontend{newSession: newSession}
}

func (f *Frontend) Name() string {
	return "window"
}

func (f *Frontend) Description() string {
	return "Desktop window, 800x600"
}

func (f *Frontend) Commands() []string {
	return []string{"window", "gui", "play"}
}

func (f *Frontend) Launch() error {
	logger := log.Frontend(f.Name())

	ebiten.SetWindowSize(sim.ScreenWidth, sim.ScreenHeight)
	ebiten.SetWindowTitle(Title)
	ebiten.SetTPS(sim.FPS)
	ebiten.SetWindowClosingHandled(true)

	g := newGame(f.newSession(), logger)
	logger.Info("window opened")
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window frontend: %w", err)
	}
	logger.Info("window closed", "frames", g.session.State().Frame)
	return nil
}

// Game adapts a session to ebiten's Update/Draw/Layout loop. ebiten calls
// Update at exactly sim.FPS, so each Update is one simulation step.
type Game struct {
	session *game.Session
	glyphs  *glyphCache
	logger  *slog.Logger
}

func newGame(s *game.Session, logger *slog.Logger) *Game {
	return &Game{
		session: s,
		glyphs:  newGlyphCache(),
		logger:  logger,
	}
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.session.RequestQuit()
		return ebiten.Termination
	}

	if g.session.State().Phase == sim.PhaseGameOver && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := g.session.CopyResult(); err != nil {
			g.logger.Warn("clipboard unavailable", "error", err)
		}
	}

	g.session.Step(readInput(ebiten.IsKeyPressed))

	if g.session.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawScene(screen, g.session.Scene(), g.glyphs)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return sim.ScreenWidth, sim.ScreenHeight
}

// readInput samples the keyboard. Fire is reported as held; the simulation
// turns it into one shot per press.
func readInput(pressed func(ebiten.Key) bool) sim.Input {
	held := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if pressed(k) {
				return true
			}
		}
		return false
	}

	return sim.Input{
		Left:  held(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right: held(ebiten.KeyArrowRight, ebiten.KeyD),
		Jump:  held(ebiten.KeyArrowUp, ebiten.KeyW),
		Fire:  pressed(ebiten.KeySpace),
		Retry: pressed(ebiten.KeyR),
		Quit:  pressed(ebiten.KeyEscape),
	}
}

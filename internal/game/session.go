package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"
	"github.com/shvbsle/skirmish/internal/highscore"
	"github.com/shvbsle/skirmish/internal/log"
	"github.com/shvbsle/skirmish/internal/render"
	"github.com/shvbsle/skirmish/internal/sim"
)

// DefaultSnapshotEvery is how many frames pass between spectator snapshots
// when Options leaves it unset.
const DefaultSnapshotEvery = 2

// Publisher receives snapshots of the running game. Implementations must
// not block.
type Publisher interface {
	Publish(Snapshot)
}

type Options struct {
	Store         highscore.Store
	Rand          sim.Rand // nil means a math/rand source seeded from Seed
	Seed          int64    // 0 means seed from the clock
	Publisher     Publisher
	SnapshotEvery int
	Logger        *slog.Logger

	// Clipboard defaults to the system clipboard.
	Clipboard func(text string) error
}

// Session wires one simulation to persistence, logging and the spectator
// feed. Frontends drive it by calling Step once per simulation frame.
type Session struct {
	id            string
	state         *sim.State
	store         highscore.Store
	publisher     Publisher
	snapshotEvery int
	logger        *slog.Logger
	clipboard     func(string) error
}

func NewSession(opts Options) *Session {
	id := uuid.NewString()
	logger := opts.Logger
	if logger == nil {
		logger = log.Sim()
	}
	logger = logger.With("session", id)

	store := opts.Store
	if store == nil {
		store = highscore.NewMemoryStore(0)
	}

	rng := opts.Rand
	if rng == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
		logger.Debug("seeded enemy spawner", "seed", seed)
	}

	every := opts.SnapshotEvery
	if every <= 0 {
		every = DefaultSnapshotEvery
	}

	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	high := highscore.LoadOrDefault(store, logger)
	logger.Info("session ready", "high_score", high)

	s := &Session{
		id:            id,
		state:         sim.NewState(rng, high),
		store:         store,
		publisher:     opts.Publisher,
		snapshotEvery: every,
		logger:        logger,
		clipboard:     copyFn,
	}
	s.publish()
	return s
}

// Step runs one simulation frame and reacts to what happened in it.
func (s *Session) Step(in sim.Input) sim.Events {
	ev := sim.Update(s.state, in)

	if ev.Kills > 0 {
		s.logger.Debug("enemies down", "kills", ev.Kills, "score", s.state.Score)
	}

	if ev.GameOver {
		s.logger.Info("player hit",
			"score", s.state.FinalScore,
			"high_score", s.state.HighScore,
			"frame", s.state.Frame)
	}

	if ev.NewHighScore {
		if err := s.store.Save(s.state.HighScore); err != nil {
			s.logger.Warn("could not save high score", "high_score", s.state.HighScore, "error", err)
		} else {
			s.logger.Info("new high score saved", "high_score", s.state.HighScore)
		}
	}

	if ev.Retried {
		s.logger.Info("retry")
	}

	if ev.Quit {
		s.logger.Info("quit requested", "phase", s.state.Phase.String())
	}

	if ev.GameOver || ev.Retried || (s.state.Phase == sim.PhasePlaying && s.state.Frame%s.snapshotEvery == 0) {
		s.publish()
	}

	return ev
}

// ID identifies the session in logs and spectator snapshots.
func (s *Session) ID() string {
	return s.id
}

// State exposes the simulation for read-only use by frontends.
func (s *Session) State() *sim.State {
	return s.state
}

func (s *Session) Scene() render.Scene {
	return render.Build(s.state)
}

// Done reports whether the player asked to quit.
func (s *Session) Done() bool {
	return s.state.Quit
}

// RequestQuit lets a frontend end the session on its own signal, such as a
// closed window.
func (s *Session) RequestQuit() {
	s.Step(sim.Input{Quit: true})
}

// ResultText is the line copied to the clipboard from the game over screen.
func (s *Session) ResultText() string {
	score := s.state.Score
	if s.state.Phase == sim.PhaseGameOver {
		score = s.state.FinalScore
	}
	return fmt.Sprintf("skirmish: scored %d (best %d)", score, s.state.HighScore)
}

func (s *Session) CopyResult() error {
	text := s.ResultText()
	if err := s.clipboard(text); err != nil {
		return fmt.Errorf("could not copy result: %w", err)
	}
	s.logger.Info("result copied to clipboard", "text", text)
	return nil
}

func (s *Session) publish() {
	if s.publisher == nil {
		return
	}
	snap := SnapshotOf(s.state)
	snap.Session = s.id
	s.publisher.Publish(snap)
}

package game

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shvbsle/skirmish/internal/highscore"
	"github.com/shvbsle/skirmish/internal/log"
	"github.com/shvbsle/skirmish/internal/sim"
)

type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

type recordingPublisher struct {
	snaps []Snapshot
}

func (r *recordingPublisher) Publish(s Snapshot) {
	r.snaps = append(r.snaps, s)
}

type failingStore struct{}

func (failingStore) Load() (int, error) { return 0, errors.New("disk on fire") }
func (failingStore) Save(int) error     { return errors.New("disk on fire") }

func newTestSession(t *testing.T, store highscore.Store) *Session {
	t.Helper()
	return NewSession(Options{
		Store:  store,
		Rand:   zeroRand{},
		Logger: log.Discard(),
	})
}

// hitPlayer parks an enemy bullet on the player so the next Step ends the
// round.
func hitPlayer(s *Session) {
	st := s.State()
	st.EnemyBullets = append(st.EnemyBullets, sim.Bullet{X: st.Player.X + 5, Y: st.Player.Y + 5})
}

func TestSessionGameOverPersistsAndRetryResets(t *testing.T) {
	path := filepath.Join(t.TempDir(), highscore.FileName)
	if err := os.WriteFile(path, []byte("3"), 0644); err != nil {
		t.Fatal(err)
	}
	store := highscore.NewFileStore(path)
	s := newTestSession(t, store)

	if s.State().HighScore != 3 {
		t.Fatalf("high score = %d, want 3 from disk", s.State().HighScore)
	}

	s.State().Score = 8
	s.State().Enemies = append(s.State().Enemies, sim.Enemy{X: 10, Y: sim.GroundY - sim.EnemyHeight})
	hitPlayer(s)

	ev := s.Step(sim.Input{})
	if !ev.GameOver {
		t.Fatal("expected game over")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) != "8" {
		t.Errorf("high score file = %q, want 8", data)
	}

	s.Step(sim.Input{Retry: true})
	st := s.State()
	if st.Phase != sim.PhasePlaying || st.Score != 0 {
		t.Fatalf("after retry phase=%v score=%d", st.Phase, st.Score)
	}
	if st.Player.X != sim.PlayerSpawnX || st.Player.Y != sim.PlayerSpawnY {
		t.Errorf("player at (%v,%v), want spawn", st.Player.X, st.Player.Y)
	}
	if len(st.Bullets)+len(st.EnemyBullets)+len(st.Enemies) != 0 {
		t.Error("containers should be empty after retry")
	}
}

func TestSessionDoesNotRewriteLowerScore(t *testing.T) {
	store := highscore.NewMemoryStore(10)
	s := newTestSession(t, store)

	s.State().Score = 4
	hitPlayer(s)
	s.Step(sim.Input{})

	if store.Saves() != 0 {
		t.Errorf("saved %d times for a score below the record", store.Saves())
	}
	if got, _ := store.Load(); got != 10 {
		t.Errorf("stored high score = %d, want 10", got)
	}
}

func TestSessionSurvivesBrokenStore(t *testing.T) {
	s := newTestSession(t, failingStore{})

	if s.State().HighScore != 0 {
		t.Fatalf("high score = %d, want default 0", s.State().HighScore)
	}

	s.State().Score = 2
	hitPlayer(s)
	ev := s.Step(sim.Input{})

	if !ev.GameOver || s.State().HighScore != 2 {
		t.Error("a failed save should not stop the game over flow")
	}
}

func TestSessionPublishesSnapshots(t *testing.T) {
	pub := &recordingPublisher{}
	s := NewSession(Options{
		Store:         highscore.NewMemoryStore(0),
		Rand:          zeroRand{},
		Publisher:     pub,
		SnapshotEvery: 3,
		Logger:        log.Discard(),
	})

	if len(pub.snaps) != 1 {
		t.Fatalf("expected an initial snapshot, got %d", len(pub.snaps))
	}

	for i := 0; i < 9; i++ {
		s.Step(sim.Input{})
	}
	if len(pub.snaps) != 4 {
		t.Errorf("after 9 frames got %d snapshots, want 4", len(pub.snaps))
	}

	hitPlayer(s)
	s.Step(sim.Input{})
	last := pub.snaps[len(pub.snaps)-1]
	if last.Phase != "game_over" {
		t.Errorf("last snapshot phase = %q, want game_over", last.Phase)
	}

	n := len(pub.snaps)
	for i := 0; i < 10; i++ {
		s.Step(sim.Input{})
	}
	if len(pub.snaps) != n {
		t.Error("a frozen game over screen should not keep publishing")
	}
}

func TestSessionIDTagsSnapshots(t *testing.T) {
	pub := &recordingPublisher{}
	a := NewSession(Options{Rand: zeroRand{}, Publisher: pub, Logger: log.Discard()})
	b := NewSession(Options{Rand: zeroRand{}, Logger: log.Discard()})

	if a.ID() == "" || a.ID() == b.ID() {
		t.Fatalf("session ids should be unique, got %q and %q", a.ID(), b.ID())
	}
	if pub.snaps[0].Session != a.ID() {
		t.Errorf("snapshot session = %q, want %q", pub.snaps[0].Session, a.ID())
	}
}

func TestSessionCopyResult(t *testing.T) {
	var copied string
	s := NewSession(Options{
		Store:     highscore.NewMemoryStore(9),
		Rand:      zeroRand{},
		Logger:    log.Discard(),
		Clipboard: func(text string) error { copied = text; return nil },
	})

	s.State().Score = 4
	hitPlayer(s)
	s.Step(sim.Input{})

	if err := s.CopyResult(); err != nil {
		t.Fatal(err)
	}
	if copied != "skirmish: scored 4 (best 9)" {
		t.Errorf("copied %q", copied)
	}
}

func TestSessionQuit(t *testing.T) {
	s := newTestSession(t, highscore.NewMemoryStore(0))
	if s.Done() {
		t.Fatal("new session should not be done")
	}
	s.RequestQuit()
	if !s.Done() {
		t.Error("expected session to be done after quit")
	}
}

func TestSnapshotOfCopiesState(t *testing.T) {
	st := sim.NewState(zeroRand{}, 0)
	st.Bullets = append(st.Bullets, sim.Bullet{X: 1, Y: 2, VX: 3})
	st.Player.Facing = sim.FacingLeft

	snap := SnapshotOf(st)
	st.Bullets[0].X = 99

	if snap.Bullets[0].X != 1 {
		t.Error("snapshot should not alias the live bullets")
	}
	if snap.Player.Facing != "left" || snap.Phase != "playing" {
		t.Errorf("unexpected snapshot header: %+v", snap.Player)
	}
	if snap.Enemies == nil {
		t.Error("empty slices should encode as [] not null")
	}
}

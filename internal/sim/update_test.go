package sim

import "testing"

// fixedRand always returns v, clipped to the requested range.
type fixedRand struct {
	v     int
	calls int
}

func (f *fixedRand) Intn(n int) int {
	f.calls++
	if f.v >= n {
		return n - 1
	}
	return f.v
}

func newTestState() *State {
	return NewState(&fixedRand{}, 0)
}

func TestNewStateStartsAtSpawn(t *testing.T) {
	s := NewState(&fixedRand{}, -3)

	if s.Player.X != PlayerSpawnX || s.Player.Y != PlayerSpawnY {
		t.Fatalf("player at (%v, %v), want (%d, %d)", s.Player.X, s.Player.Y, PlayerSpawnX, PlayerSpawnY)
	}
	if s.Phase != PhasePlaying {
		t.Errorf("phase = %v, want playing", s.Phase)
	}
	if s.HighScore != 0 {
		t.Errorf("negative high score should clamp to 0, got %d", s.HighScore)
	}
	if len(s.Platforms) != 3 {
		t.Errorf("expected 3 platforms, got %d", len(s.Platforms))
	}
}

func TestPlayerXStaysOnScreen(t *testing.T) {
	tests := []struct {
		name  string
		input Input
		want  float64
	}{
		{name: "hold left", input: Input{Left: true}, want: 0},
		{name: "hold right", input: Input{Right: true}, want: ScreenWidth - PlayerWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState()
			for i := 0; i < 400; i++ {
				Update(s, tt.input)
				if s.Phase != PhasePlaying {
					t.Fatalf("unexpected game over at frame %d", i)
				}
				if s.Player.X < 0 || s.Player.X > ScreenWidth-PlayerWidth {
					t.Fatalf("frame %d: x = %v out of bounds", i, s.Player.X)
				}
				// Keep enemies from ending the run.
				s.Enemies = s.Enemies[:0]
				s.EnemyBullets = s.EnemyBullets[:0]
			}
			if s.Player.X != tt.want {
				t.Errorf("x = %v, want %v", s.Player.X, tt.want)
			}
		})
	}
}

func TestFacingFollowsLastDirection(t *testing.T) {
	s := newTestState()

	Update(s, Input{Left: true})
	if s.Player.Facing != FacingLeft {
		t.Errorf("facing = %v, want left", s.Player.Facing)
	}

	Update(s, Input{Right: true})
	if s.Player.Facing != FacingRight {
		t.Errorf("facing = %v, want right", s.Player.Facing)
	}

	// Both held: right is applied last, so the player ends facing right
	// without moving.
	x := s.Player.X
	Update(s, Input{Left: true, Right: true})
	if s.Player.Facing != FacingRight || s.Player.X != x {
		t.Errorf("both keys: facing=%v x=%v, want right at %v", s.Player.Facing, s.Player.X, x)
	}
}

func TestFireIsEdgeTriggered(t *testing.T) {
	s := newTestState()

	fired := 0
	for i := 0; i < 10; i++ {
		if Update(s, Input{Fire: true}).Fired {
			fired++
		}
	}
	if fired != 1 {
		t.Fatalf("holding fire for 10 frames fired %d times, want 1", fired)
	}
	if len(s.Bullets) != 1 {
		t.Fatalf("expected 1 bullet in flight, got %d", len(s.Bullets))
	}

	Update(s, Input{})
	if !Update(s, Input{Fire: true}).Fired {
		t.Error("expected a second bullet after release and re-press")
	}
}

func TestBulletLeavesFromLeadingEdge(t *testing.T) {
	tests := []struct {
		name   string
		facing Direction
		wantX  float64
		wantVX float64
	}{
		{name: "right", facing: FacingRight, wantX: 100 + PlayerWidth, wantVX: BulletSpeed},
		{name: "left", facing: FacingLeft, wantX: 100 - BulletWidth, wantVX: -BulletSpeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := muzzle(Player{X: 100, Y: 200, Facing: tt.facing})
			if b.X != tt.wantX || b.VX != tt.wantVX {
				t.Errorf("bullet = %+v, want x=%v vx=%v", b, tt.wantX, tt.wantVX)
			}
			if b.Y != 200+PlayerHeight/2 {
				t.Errorf("bullet y = %v, want %v", b.Y, 200+PlayerHeight/2)
			}
		})
	}
}

func TestQuitWinsInEitherPhase(t *testing.T) {
	for _, phase := range []Phase{PhasePlaying, PhaseGameOver} {
		t.Run(phase.String(), func(t *testing.T) {
			s := newTestState()
			s.Phase = phase
			frame := s.Frame

			ev := Update(s, Input{Quit: true, Fire: true})
			if !ev.Quit || !s.Quit {
				t.Fatal("expected quit to be recorded")
			}
			if ev.Fired || s.Frame != frame {
				t.Error("quit frame should not advance the simulation")
			}
		})
	}
}

func TestGameOverFreezesUntilRetry(t *testing.T) {
	s := newTestState()
	s.Score = 4
	s.Enemies = append(s.Enemies, Enemy{X: 10, Y: GroundY - EnemyHeight})
	s.EnemyBullets = append(s.EnemyBullets, Bullet{
		X:  s.Player.X + 10,
		Y:  s.Player.Y + 10,
		VX: 0,
	})

	ev := Update(s, Input{})
	if !ev.GameOver || s.Phase != PhaseGameOver {
		t.Fatalf("expected game over, got phase %v", s.Phase)
	}
	if !ev.NewHighScore || s.HighScore != 4 || s.FinalScore != 4 {
		t.Fatalf("high=%d final=%d newHigh=%v, want 4/4/true", s.HighScore, s.FinalScore, ev.NewHighScore)
	}

	frame := s.Frame
	for i := 0; i < 5; i++ {
		Update(s, Input{Right: true, Fire: true, Jump: true})
	}
	if s.Frame != frame || len(s.Bullets) != 0 {
		t.Fatal("simulation moved while in game over")
	}

	ev = Update(s, Input{Retry: true, Fire: true})
	if !ev.Retried || s.Phase != PhasePlaying {
		t.Fatal("expected retry to resume play")
	}
	if s.Score != 0 || s.HighScore != 4 {
		t.Errorf("after retry score=%d high=%d, want 0/4", s.Score, s.HighScore)
	}
	if s.Player.X != PlayerSpawnX || s.Player.Y != PlayerSpawnY || s.Player.VY != 0 {
		t.Errorf("player not back at spawn: %+v", s.Player)
	}
	if len(s.Bullets)+len(s.EnemyBullets)+len(s.Enemies) != 0 {
		t.Error("containers should be empty after retry")
	}
	if s.SpawnTimer != 0 || s.ShootTimer != 0 {
		t.Error("timers should be reset after retry")
	}

	// Fire held through the retry must not shoot on the first frame back.
	if Update(s, Input{Fire: true}).Fired {
		t.Error("fire held across retry should not count as a new press")
	}
}

func TestHighScoreNeverDecreases(t *testing.T) {
	s := newTestState()
	scores := []int{3, 1, 7, 0, 7, 2}
	best := 0

	for _, score := range scores {
		s.Score = score
		s.EnemyBullets = append(s.EnemyBullets[:0], Bullet{X: s.Player.X, Y: s.Player.Y})
		Update(s, Input{})
		if s.Phase != PhaseGameOver {
			t.Fatalf("score %d: expected game over", score)
		}
		best = max(best, score)
		if s.HighScore != best {
			t.Fatalf("after score %d high score = %d, want %d", score, s.HighScore, best)
		}
		Update(s, Input{Retry: true})
	}
}

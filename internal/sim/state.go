package sim

import "slices"

// State is the whole simulation. Frontends read it through render.Build and
// only ever mutate it through Update.
type State struct {
	Player       Player
	Platforms    []Rect
	Bullets      []Bullet
	EnemyBullets []Bullet
	Enemies      []Enemy

	SpawnTimer int
	ShootTimer int

	Score      int
	HighScore  int
	FinalScore int

	Phase Phase
	Frame int
	Quit  bool

	fireHeld bool
	rng      Rand
}

// NewState builds a fresh Playing state. highScore is whatever the caller
// loaded from persistence; negative values are treated as zero.
func NewState(rng Rand, highScore int) *State {
	if highScore < 0 {
		highScore = 0
	}
	s := &State{
		Platforms: slices.Clone(DefaultPlatforms),
		HighScore: highScore,
		rng:       rng,
	}
	s.Reset()
	return s
}

// Reset restores everything a retry clears. Platforms and the high score
// survive.
func (s *State) Reset() {
	s.Player = Player{
		X:      PlayerSpawnX,
		Y:      PlayerSpawnY,
		Facing: FacingRight,
	}
	s.Bullets = s.Bullets[:0]
	s.EnemyBullets = s.EnemyBullets[:0]
	s.Enemies = s.Enemies[:0]
	s.SpawnTimer = 0
	s.ShootTimer = 0
	s.Score = 0
	s.FinalScore = 0
	s.Phase = PhasePlaying
	s.fireHeld = false
}

// SetRand swaps the random source, mostly for tests.
func (s *State) SetRand(rng Rand) {
	s.rng = rng
}

package sim

// Rect is an axis-aligned rectangle in screen pixels, origin top-left.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether r and o intersect. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

type Direction int

const (
	FacingRight Direction = iota
	FacingLeft
)

func (d Direction) String() string {
	if d == FacingLeft {
		return "left"
	}
	return "right"
}

type Player struct {
	X, Y     float64
	VY       float64
	Grounded bool
	Facing   Direction
}

func (p Player) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: PlayerWidth, H: PlayerHeight}
}

// Bullet is shared by both sides; the sign of VX is its direction.
type Bullet struct {
	X, Y float64
	VX   float64
}

func (b Bullet) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: BulletWidth, H: BulletHeight}
}

func (b Bullet) EnemyRect() Rect {
	return Rect{X: b.X, Y: b.Y, W: EnemyBulletWidth, H: EnemyBulletHeight}
}

type Enemy struct {
	X, Y float64
}

func (e Enemy) Rect() Rect {
	return Rect{X: e.X, Y: e.Y, W: EnemyWidth, H: EnemyHeight}
}

// Input is a level-triggered snapshot of what is held this frame. Edge
// detection (fire) happens inside Update.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
	Fire  bool
	Retry bool
	Quit  bool
}

type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Events summarises what a single Update did.
type Events struct {
	Fired          bool
	EnemiesSpawned int
	EnemyShots     int
	Kills          int
	GameOver       bool
	NewHighScore   bool
	Retried        bool
	Quit           bool
}

// Rand is the subset of *math/rand.Rand the simulation needs.
type Rand interface {
	Intn(n int) int
}

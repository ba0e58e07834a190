package game

import "github.com/shvbsle/skirmish/internal/sim"

// Snapshot is the wire form of a frame for spectators. It is a value copy;
// nothing in it aliases the live simulation.
type Snapshot struct {
	Session      string      `json:"session,omitempty"`
	Frame        int         `json:"frame"`
	Phase        string      `json:"phase"`
	Score        int         `json:"score"`
	HighScore    int         `json:"high_score"`
	FinalScore   int         `json:"final_score,omitempty"`
	Player       PlayerView  `json:"player"`
	Bullets      []PointView `json:"bullets"`
	EnemyBullets []PointView `json:"enemy_bullets"`
	Enemies      []PointView `json:"enemies"`
}

type PlayerView struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Facing   string  `json:"facing"`
	Grounded bool    `json:"grounded"`
}

type PointView struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func SnapshotOf(s *sim.State) Snapshot {
	snap := Snapshot{
		Frame:      s.Frame,
		Phase:      s.Phase.String(),
		Score:      s.Score,
		HighScore:  s.HighScore,
		FinalScore: s.FinalScore,
		Player: PlayerView{
			X:        s.Player.X,
			Y:        s.Player.Y,
			Facing:   s.Player.Facing.String(),
			Grounded: s.Player.Grounded,
		},
		Bullets:      make([]PointView, 0, len(s.Bullets)),
		EnemyBullets: make([]PointView, 0, len(s.EnemyBullets)),
		Enemies:      make([]PointView, 0, len(s.Enemies)),
	}

	for _, b := range s.Bullets {
		snap.Bullets = append(snap.Bullets, PointView{X: b.X, Y: b.Y})
	}
	for _, b := range s.EnemyBullets {
		snap.EnemyBullets = append(snap.EnemyBullets, PointView{X: b.X, Y: b.Y})
	}
	for _, e := range s.Enemies {
		snap.Enemies = append(snap.Enemies, PointView{X: e.X, Y: e.Y})
	}

	return snap
}

package render

import (
	"fmt"
	"image/color"

	"github.com/shvbsle/skirmish/internal/sim"
)

// TextSize is a nominal glyph height in screen pixels.
type TextSize int

const (
	SizeSmall  TextSize = 13
	SizeHUD    TextSize = 26
	SizeMedium TextSize = 36
	SizeLarge  TextSize = 56
)

// ShadowOffset is how far the HUD drop shadow sits down and right.
const ShadowOffset = 2

type RectOp struct {
	Rect        sim.Rect
	Fill        color.RGBA
	Stroke      color.RGBA
	StrokeWidth float64 // 0 means no border
}

// TextOp places a line of text. X,Y is the top-left corner unless Centered
// is set, in which case X is the horizontal centre.
type TextOp struct {
	Text     string
	X, Y     float64
	Size     TextSize
	Color    color.RGBA
	Centered bool
	Shadow   *color.RGBA
}

// Scene is everything a frontend needs to draw one frame, in paint order.
type Scene struct {
	Width, Height int
	Background    color.RGBA
	Rects         []RectOp
	Texts         []TextOp
}

// Build projects the simulation into a Scene. It only reads s.
func Build(s *sim.State) Scene {
	if s.Phase == sim.PhaseGameOver {
		return gameOver(s)
	}
	return playing(s)
}

func playing(s *sim.State) Scene {
	sc := Scene{
		Width:      sim.ScreenWidth,
		Height:     sim.ScreenHeight,
		Background: ColorBackground,
		Rects: make([]RectOp, 0,
			2+len(s.Bullets)+len(s.EnemyBullets)+len(s.Enemies)+len(s.Platforms)),
	}

	sc.fill(sim.Rect{X: 0, Y: sim.GroundY, W: sim.ScreenWidth, H: sim.ScreenHeight - sim.GroundY}, ColorGround)
	sc.fill(s.Player.Rect(), ColorPlayer)
	for _, b := range s.Bullets {
		sc.fill(b.Rect(), ColorBullet)
	}
	for _, b := range s.EnemyBullets {
		sc.fill(b.EnemyRect(), ColorEnemyBullet)
	}
	for _, e := range s.Enemies {
		sc.fill(e.Rect(), ColorEnemy)
	}
	for _, p := range s.Platforms {
		sc.fill(p, ColorPlatform)
	}

	shadow := ColorBlack
	sc.Texts = append(sc.Texts,
		TextOp{Text: fmt.Sprintf("Score: %d", s.Score), X: 10, Y: 10, Size: SizeHUD, Color: ColorWhite, Shadow: &shadow},
		TextOp{Text: fmt.Sprintf("High Score: %d", s.HighScore), X: 10, Y: 40, Size: SizeHUD, Color: ColorWhite, Shadow: &shadow},
	)

	return sc
}

func gameOver(s *sim.State) Scene {
	const w, h = sim.ScreenWidth, sim.ScreenHeight
	cx := float64(w) / 2

	sc := Scene{
		Width:      w,
		Height:     h,
		Background: ColorBlack,
	}

	sc.Rects = append(sc.Rects, RectOp{
		Rect:        sim.Rect{X: cx - 150, Y: h/2 + 50, W: 300, H: 60},
		Fill:        ColorWhite,
		Stroke:      ColorRed,
		StrokeWidth: 5,
	})

	sc.Texts = append(sc.Texts,
		TextOp{Text: "Game Over", X: cx, Y: h / 4, Size: SizeLarge, Color: ColorRed, Centered: true},
		TextOp{Text: fmt.Sprintf("Final Score: %d", s.FinalScore), X: cx, Y: h / 2.5, Size: SizeMedium, Color: ColorWhite, Centered: true},
		TextOp{Text: fmt.Sprintf("High Score: %d", s.HighScore), X: cx, Y: h / 2, Size: SizeMedium, Color: ColorYellow, Centered: true},
		TextOp{Text: "Press R to Retry", X: cx, Y: h/2 + 60, Size: SizeMedium, Color: ColorBlack, Centered: true},
		TextOp{Text: "C: copy score   Esc/Ctrl+C: quit", X: cx, Y: h - 40, Size: SizeSmall, Color: ColorGray, Centered: true},
	)

	return sc
}

func (sc *Scene) fill(r sim.Rect, c color.RGBA) {
	sc.Rects = append(sc.Rects, RectOp{Rect: r, Fill: c})
}

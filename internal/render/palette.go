package render

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	ColorBackground  = color.RGBA{135, 206, 235, 255}
	ColorGround      = color.RGBA{34, 139, 34, 255}
	ColorPlatform    = color.RGBA{139, 69, 19, 255}
	ColorPlayer      = color.RGBA{0, 0, 255, 255}
	ColorEnemy       = color.RGBA{255, 69, 0, 255}
	ColorBullet      = color.RGBA{0, 0, 0, 255}
	ColorEnemyBullet = color.RGBA{255, 0, 0, 255}

	ColorBlack  = color.RGBA{0, 0, 0, 255}
	ColorWhite  = color.RGBA{255, 255, 255, 255}
	ColorRed    = color.RGBA{255, 0, 0, 255}
	ColorYellow = color.RGBA{255, 255, 0, 255}
	ColorGray   = color.RGBA{150, 150, 150, 255}
)

// The eight ANSI base colors, in terminal order.
const (
	Black = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

type ansiRef struct {
	index int
	color colorful.Color
}

// ansiRefs are the xterm defaults for the eight base colors. Yellow also
// matches the brown that VGA-style palettes show in its slot.
var ansiRefs = []ansiRef{
	{Black, rgb(0, 0, 0)},
	{Red, rgb(205, 0, 0)},
	{Green, rgb(0, 205, 0)},
	{Yellow, rgb(205, 205, 0)},
	{Yellow, rgb(170, 85, 0)},
	{Blue, rgb(0, 0, 238)},
	{Magenta, rgb(205, 0, 205)},
	{Cyan, rgb(0, 205, 205)},
	{White, rgb(229, 229, 229)},
}

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Nearest8 maps c to the perceptually closest of the eight ANSI base colors.
func Nearest8(c color.RGBA) int {
	target := rgb(c.R, c.G, c.B)

	best, bestDist := Black, math.Inf(1)
	for _, ref := range ansiRefs {
		if d := target.DistanceCIEDE2000(ref.color); d < bestDist {
			best, bestDist = ref.index, d
		}
	}
	return best
}

package terminal

import (
	"image/color"

	tl "github.com/JoelOtter/termloop"
	"github.com/shvbsle/skirmish/internal/render"
)

// keyFor maps a termloop key event to a game key. The second result reports
// whether the event is one the game cares about.
func keyFor(ev tl.Event) (Key, bool) {
	switch ev.Key {
	case tl.KeyArrowLeft:
		return KeyLeft, true
	case tl.KeyArrowRight:
		return KeyRight, true
	case tl.KeyArrowUp:
		return KeyJump, true
	case tl.KeySpace:
		return KeyFire, true
	}

	switch ev.Ch {
	case 'a', 'A', 'h':
		return KeyLeft, true
	case 'd', 'D', 'l':
		return KeyRight, true
	case 'w', 'W', 'k':
		return KeyJump, true
	case ' ':
		return KeyFire, true
	case 'r', 'R':
		return KeyRetry, true
	}
	return 0, false
}

func isCopy(ev tl.Event) bool {
	return ev.Ch == 'c' || ev.Ch == 'C'
}

var attrs = [8]tl.Attr{
	render.Black:   tl.ColorBlack,
	render.Red:     tl.ColorRed,
	render.Green:   tl.ColorGreen,
	render.Yellow:  tl.ColorYellow,
	render.Blue:    tl.ColorBlue,
	render.Magenta: tl.ColorMagenta,
	render.Cyan:    tl.ColorCyan,
	render.White:   tl.ColorWhite,
}

func attr(c color.RGBA) tl.Attr {
	return attrs[render.Nearest8(c)]
}

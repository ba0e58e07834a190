package terminal

import "time"

// HoldWindow is how long a key counts as held after its last press or
// auto-repeat event.
const HoldWindow = 150 * time.Millisecond

// FireHoldWindow covers the pause before a terminal starts auto-repeating,
// usually 250 to 660ms. Fire is edge-triggered, so letting it lapse in that
// pause would read as a second press.
const FireHoldWindow = 700 * time.Millisecond

type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyJump
	KeyFire
	KeyRetry
)

// HoldTracker turns a stream of key press events into held state.
// Terminals never report releases, so a key is released once no event for it
// has arrived within the window.
type HoldTracker struct {
	window  time.Duration
	windows map[Key]time.Duration
	last    map[Key]time.Time
}

func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = HoldWindow
	}
	return &HoldTracker{
		window:  window,
		windows: make(map[Key]time.Duration),
		last:    make(map[Key]time.Time),
	}
}

// SetWindow overrides the hold window for one key.
func (h *HoldTracker) SetWindow(k Key, window time.Duration) {
	h.windows[k] = window
}

func (h *HoldTracker) windowFor(k Key) time.Duration {
	if w, ok := h.windows[k]; ok {
		return w
	}
	return h.window
}

func (h *HoldTracker) Press(k Key, now time.Time) {
	h.last[k] = now
}

func (h *HoldTracker) Held(k Key, now time.Time) bool {
	t, ok := h.last[k]
	if !ok {
		return false
	}
	return now.Sub(t) < h.windowFor(k)
}

func (h *HoldTracker) Clear() {
	clear(h.last)
}

package terminal

import "github.com/shvbsle/skirmish/internal/sim"

const (
	stepSeconds = 1.0 / sim.FPS

	// maxSteps caps catch-up after a stall so the game does not fast-forward.
	maxSteps = 5
)

// stepper converts variable render frame times into whole simulation steps.
type stepper struct {
	acc float64
}

func (s *stepper) advance(dt float64) int {
	if dt <= 0 {
		return 0
	}
	s.acc += dt

	n := int((s.acc + 1e-9) / stepSeconds)
	if n > maxSteps {
		s.acc = 0
		return maxSteps
	}
	s.acc -= float64(n) * stepSeconds
	if s.acc < 0 {
		s.acc = 0
	}
	return n
}

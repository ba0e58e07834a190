package frontends

import (
	"errors"
	"sync"
)

// ErrSpent is returned when a single-use frontend is launched a second time.
var ErrSpent = errors.New("frontend can only be launched once per process")

// Exclusive is implemented by frontends that end the process once they
// return. The lobby does not come back after them.
type Exclusive interface {
	Exclusive() bool
}

// IsExclusive reports whether the lobby must exit after f returns.
func IsExclusive(f Frontend) bool {
	e, ok := f.(Exclusive)
	return ok && e.Exclusive()
}

// Once wraps a frontend whose event loop can only run once per process, such
// as a native window. The wrapper is exclusive and refuses a second Launch.
func Once(f Frontend) Frontend {
	return &once{Frontend: f}
}

type once struct {
	Frontend

	mu       sync.Mutex
	launched bool
}

func (o *once) Launch() error {
	o.mu.Lock()
	if o.launched {
		o.mu.Unlock()
		return ErrSpent
	}
	o.launched = true
	o.mu.Unlock()

	return o.Frontend.Launch()
}

func (o *once) Exclusive() bool {
	return true
}

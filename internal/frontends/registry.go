package frontends

import (
	"sort"
	"sync"

	"github.com/shvbsle/skirmish/internal/log"
)

// Frontend is a way of playing the game: a window, a terminal, or anything
// else that can drive a game.Session. The lobby lists every registered
// frontend and comes back once Launch returns, unless the frontend is
// Exclusive.
type Frontend interface {
	// Name is the unique identifier used by the frontend config key.
	Name() string

	// Description is shown next to the name in the lobby.
	Description() string

	// Commands are the palette aliases that launch this frontend.
	Commands() []string

	// Launch plays until the player quits. It blocks.
	Launch() error
}

type Registry struct {
	mu      sync.RWMutex
	byName  map[string]Frontend
	byCmd   map[string]Frontend
	inOrder []Frontend
}

func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Frontend),
		byCmd:  make(map[string]Frontend),
	}
}

// Register adds f. A later registration wins both name and command
// collisions; each collision is logged.
func (r *Registry) Register(f Frontend) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, exists := r.byName[f.Name()]; exists {
		log.G().Warn("frontend already registered", "frontend", f.Name())
		for i, existing := range r.inOrder {
			if existing == old {
				r.inOrder = append(r.inOrder[:i], r.inOrder[i+1:]...)
				break
			}
		}
	}

	r.byName[f.Name()] = f
	r.inOrder = append(r.inOrder, f)

	for _, cmd := range f.Commands() {
		if existing, exists := r.byCmd[cmd]; exists && existing.Name() != f.Name() {
			log.G().Warn("command collision",
				"command", cmd,
				"existing_frontend", existing.Name(),
				"new_frontend", f.Name())
		}
		r.byCmd[cmd] = f
	}
}

func (r *Registry) Get(name string) (Frontend, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.byName[name]
	return f, ok
}

func (r *Registry) GetByCommand(cmd string) (Frontend, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.byCmd[cmd]
	return f, ok
}

// Lookup resolves either a name or a command alias.
func (r *Registry) Lookup(s string) (Frontend, bool) {
	if f, ok := r.Get(s); ok {
		return f, true
	}
	return r.GetByCommand(s)
}

// List returns frontends in registration order.
func (r *Registry) List() []Frontend {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Frontend, len(r.inOrder))
	copy(out, r.inOrder)
	return out
}

// CommandSuggestions returns every alias, sorted.
func (r *Registry) CommandSuggestions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	suggestions := make([]string, 0, len(r.byCmd))
	for cmd := range r.byCmd {
		suggestions = append(suggestions, cmd)
	}
	sort.Strings(suggestions)
	return suggestions
}

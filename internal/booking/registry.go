package booking

import "sync"

// Registry tracks live wizard sessions by ID so HTTP handlers can find
// the session a client is driving.  Sessions are held in memory only;
// an abandoned wizard simply stays until the process restarts, the
// same way a closed browser tab abandons its page state.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	clock    Clock
}

// NewRegistry builds an empty registry.  The clock is handed to every
// session it creates; nil defaults to the wall clock.
func NewRegistry(clock Clock) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		clock:    clock,
	}
}

// Create opens a new session and registers it.
func (r *Registry) Create() *Session {
	s := NewSession(r.clock)
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

// Get looks up a session by ID.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

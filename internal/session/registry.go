package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/afrilink/platform_be/internal/directory"
)

// Registry maps session ids (carried in the auth cookie) to sessions.
type Registry struct {
	repo directory.Repository
	now  func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry(repo directory.Repository) *Registry {
	return &Registry{
		repo:     repo,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Open starts an empty session with a fresh id.
func (r *Registry) Open() *Session {
	s := New(uuid.NewString(), r.repo)
	s.Touch(r.now())

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()

	return s
}

// Get counts as activity on the session.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()

	if ok {
		s.Touch(r.now())
	}
	return s, ok
}

// Drop logs the session out and forgets it.
func (r *Registry) Drop(id string) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if ok {
		s.Logout()
	}
}

// Sweep drops every session idle for longer than idle and returns their ids.
func (r *Registry) Sweep(idle time.Duration) []string {
	cutoff := r.now().Add(-idle)

	r.mu.Lock()
	var stale []*Session
	for id, s := range r.sessions {
		if s.LastSeen().Before(cutoff) {
			stale = append(stale, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	ids := make([]string, 0, len(stale))
	for _, s := range stale {
		s.Logout()
		ids = append(ids, s.ID)
	}
	return ids
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

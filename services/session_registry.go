package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionRegistry keeps the in-memory storefront of every active browsing session.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*Storefront
	deps     StorefrontDeps
	now      func() time.Time
}

func NewSessionRegistry(deps StorefrontDeps) *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]*Storefront),
		deps:     deps,
		now:      time.Now,
	}
}

// Resolve returns the storefront for id, starting a fresh session under a new id
// when id is empty or unknown.
func (r *SessionRegistry) Resolve(id string) *Storefront {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if s, ok := r.sessions[id]; ok {
		s.touch(now)
		return s
	}

	s := NewStorefront(uuid.NewString(), r.deps)
	s.touch(now)
	r.sessions[s.ID()] = s
	return s
}

func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep drops sessions idle for longer than maxIdle and returns how many went away.
func (r *SessionRegistry) Sweep(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for id, s := range r.sessions {
		if s.idleSince(now) > maxIdle {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is done.
func (r *SessionRegistry) RunSweeper(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(maxIdle); n > 0 {
				log.Printf("Evicted %d idle storefront sessions", n)
			}
		}
	}
}

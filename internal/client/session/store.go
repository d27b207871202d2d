package session

import (
	"sync"

	"github.com/Algo-jtx/SoulSpace/internal/client/api"
)

// Store is the single-writer-many-reader cell holding the current identity.
// Set replaces the identity wholesale and notifies subscribers before
// returning, so every consumer observes the change before the next render.
type Store struct {
	mu   sync.RWMutex
	user *api.User
	subs []func(*api.User)
}

func NewStore() *Store {
	return &Store{}
}

// Current returns the identity, or nil when logged out.
func (s *Store) Current() *api.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Set replaces the identity. nil means logged out.
func (s *Store) Set(user *api.User) {
	s.mu.Lock()
	s.user = user
	subs := make([]func(*api.User), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(user)
	}
}

// Subscribe registers fn to run synchronously on every Set.
func (s *Store) Subscribe(fn func(*api.User)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

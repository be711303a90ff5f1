package store

import (
	"sync"

	"aquashop/internal/domain"
)

// SessionStore binds sid cookies to the identity logged in on that session.
// An unbound sid is an anonymous viewer.
type SessionStore struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewSessionStore() *SessionStore {
	return &SessionStore{users: make(map[string]domain.User)}
}

func (s *SessionStore) Bind(sid string, u domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[sid] = u
}

func (s *SessionStore) User(sid string) (*domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[sid]
	if !ok {
		return nil, false
	}
	return &u, true
}

func (s *SessionStore) Unbind(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, sid)
}

package store

import (
	"sync"

	"aquashop/internal/domain"
)

// CartStore keeps one cart per session id. Lines snapshot the listing by
// value at add time, so later catalog edits do not reach into carts.
type CartStore struct {
	mu    sync.Mutex
	carts map[string][]domain.CartLine
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string][]domain.CartLine)}
}

// Upsert merges a repeat add of the same listing into its existing line,
// otherwise appends a new one.
func (s *CartStore) Upsert(sid string, fish domain.Fish, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[sid]
	for i := range lines {
		if lines[i].ID == fish.ID {
			lines[i].Quantity += qty
			return
		}
	}
	s.carts[sid] = append(lines, domain.CartLine{Fish: fish, Quantity: qty})
}

// Remove drops the line for fishID; no-op when absent.
func (s *CartStore) Remove(sid, fishID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[sid]
	for i := range lines {
		if lines[i].ID == fishID {
			s.carts[sid] = append(lines[:i], lines[i+1:]...)
			return
		}
	}
}

// Lines returns a copy of the cart in add order.
func (s *CartStore) Lines(sid string) []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartLine, len(s.carts[sid]))
	copy(out, s.carts[sid])
	return out
}

func (s *CartStore) Clear(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sid)
}

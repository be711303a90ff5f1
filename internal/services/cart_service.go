package services

import (
	"errors"

	"aquashop/internal/domain"
	"aquashop/internal/store"
)

// ErrNotAuthorized is returned when a cart mutation arrives without an
// active identity. Distinct from ErrBadCreds so the handler can send the
// viewer to the login page instead of an error page.
var ErrNotAuthorized = errors.New("login required")

type CartService struct {
	Carts    *store.CartStore
	Catalog  *store.CatalogStore
	Sessions *store.SessionStore
}

func NewCartService(carts *store.CartStore, catalog *store.CatalogStore, sessions *store.SessionStore) *CartService {
	return &CartService{Carts: carts, Catalog: catalog, Sessions: sessions}
}

// Add puts qty of a listing into the session's cart, merging repeat adds of
// the same listing into one line. The stored line is a value snapshot taken
// now. Stock capping is the quantity selector's job, not re-checked here.
func (s *CartService) Add(sid, fishID string, qty int) error {
	if _, ok := s.Sessions.User(sid); !ok {
		return ErrNotAuthorized
	}
	f, err := s.Catalog.Get(fishID)
	if err != nil {
		return err
	}
	if qty < 1 {
		qty = 1
	}
	s.Carts.Upsert(sid, f, qty)
	return nil
}

// Remove drops a line; no-op when the listing is not in the cart.
func (s *CartService) Remove(sid, fishID string) {
	s.Carts.Remove(sid, fishID)
}

type CartView struct {
	Lines []domain.CartLine
	Total float64
}

// View returns the cart with the total recomputed from the lines on every
// read; the total is never cached.
func (s *CartService) View(sid string) CartView {
	lines := s.Carts.Lines(sid)
	total := 0.0
	for _, l := range lines {
		total += l.Subtotal()
	}
	return CartView{Lines: lines, Total: total}
}

func (s *CartService) Clear(sid string) {
	s.Carts.Clear(sid)
}

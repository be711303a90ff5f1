package services

import (
	"errors"
	"strconv"
	"time"

	"aquashop/internal/domain"
	"aquashop/internal/store"
	"aquashop/internal/whatsapp"
)

var ErrEmptyCart = errors.New("cart empty")

type OrderService struct {
	Cart   *CartService
	Ledger *store.OrderLedger

	ShopName       string
	WhatsAppNumber string
}

func NewOrderService(cart *CartService, ledger *store.OrderLedger, shopName, waNumber string) *OrderService {
	return &OrderService{Cart: cart, Ledger: ledger, ShopName: shopName, WhatsAppNumber: waNumber}
}

type CheckoutResult struct {
	Order       domain.Order
	WhatsAppURL string
}

// Checkout converts the session's cart into a pending order, prepends it to
// the ledger and returns the handoff link. The cart is emptied immediately:
// delivery of the message is fire-and-forget, there is no confirmation to
// wait for. Stock is deliberately not decremented.
func (s *OrderService) Checkout(sid string, user *domain.User) (CheckoutResult, error) {
	cv := s.Cart.View(sid)
	if len(cv.Lines) == 0 {
		return CheckoutResult{}, ErrEmptyCart
	}

	name, email := "Guest", "guest@example.com"
	if user != nil {
		name, email = user.Name, user.Email
	}

	now := time.Now()
	o := domain.Order{
		ID:            strconv.FormatInt(now.UnixMilli(), 10),
		CustomerName:  name,
		CustomerEmail: email,
		Items:         cv.Lines,
		Total:         cv.Total,
		Date:          now.UTC().Format(time.RFC3339),
		Status:        domain.StatusPending,
	}
	s.Ledger.Prepend(o)

	msg := whatsapp.ComposeOrderMessage(s.ShopName, name, email, o.Items, o.Total, o.ID)
	link := whatsapp.DeepLink(s.WhatsAppNumber, msg)

	s.Cart.Clear(sid)
	return CheckoutResult{Order: o, WhatsAppURL: link}, nil
}

// HandoffLink recomposes the wa.me link for an order already in the ledger,
// so the invoice page can offer the handoff again. Pure recomputation from
// the snapshot; totals are never re-derived from the live catalog.
func (s *OrderService) HandoffLink(o domain.Order) string {
	msg := whatsapp.ComposeOrderMessage(s.ShopName, o.CustomerName, o.CustomerEmail, o.Items, o.Total, o.ID)
	return whatsapp.DeepLink(s.WhatsAppNumber, msg)
}

func (s *OrderService) Get(id string) (domain.Order, error) {
	return s.Ledger.Get(id)
}

// List returns every order, most recent first (admin view).
func (s *OrderService) List() []domain.Order {
	return s.Ledger.List()
}

// History returns the customer's own orders.
func (s *OrderService) History(email string) []domain.Order {
	return s.Ledger.ListByEmail(email)
}

// SetStatus overwrites an order's status; unknown ids are a no-op.
func (s *OrderService) SetStatus(id, status string) {
	s.Ledger.SetStatus(id, status)
}

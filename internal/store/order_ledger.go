package store

import (
	"sync"

	"aquashop/internal/domain"
)

// OrderLedger is the append-only order history, newest first. Orders are
// never deleted; only the status field moves after submission.
type OrderLedger struct {
	mu     sync.RWMutex
	orders []domain.Order
}

func NewOrderLedger() *OrderLedger {
	return &OrderLedger{}
}

// Prepend records a freshly submitted order at the head of the ledger.
func (l *OrderLedger) Prepend(o domain.Order) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.orders = append([]domain.Order{o}, l.orders...)
}

// List returns the ledger, most recent first.
func (l *OrderLedger) List() []domain.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.Order, len(l.orders))
	copy(out, l.orders)
	return out
}

// ListByEmail returns the customer's own orders, ledger order.
func (l *OrderLedger) ListByEmail(email string) []domain.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []domain.Order
	for _, o := range l.orders {
		if o.CustomerEmail == email {
			out = append(out, o)
		}
	}
	return out
}

func (l *OrderLedger) Get(id string) (domain.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, o := range l.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Order{}, ErrNotFound
}

// SetStatus overwrites the status field. The ledger does not police
// transitions; the admin view decides which ones to offer. Unknown ids are
// a no-op.
func (l *OrderLedger) SetStatus(id, status string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.orders {
		if l.orders[i].ID == id {
			l.orders[i].Status = status
			return
		}
	}
}

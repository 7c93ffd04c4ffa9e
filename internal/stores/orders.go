package stores

import (
	"sync"

	"github.com/foooood/storefront/internal/models"
	"github.com/google/uuid"
)

// OrderStore keeps completed checkouts for the lifetime of the session.
// In-memory only; nothing survives a restart.
type OrderStore struct {
	mu     sync.Mutex
	orders []models.Order
}

func NewOrderStore() *OrderStore {
	return &OrderStore{}
}

func (s *OrderStore) Add(order models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append(s.orders, order)
}

// List returns orders newest first.
func (s *OrderStore) List() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]models.Order, 0, len(s.orders))
	for i := len(s.orders) - 1; i >= 0; i-- {
		orders = append(orders, s.orders[i])
	}

	return orders
}

func (s *OrderStore) Get(id uuid.UUID) (*models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			order := s.orders[i]

			return &order, true
		}
	}

	return nil, false
}

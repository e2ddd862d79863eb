package store

import (
	"encoding/hex"
	"sync"

	"github.com/google/uuid"

	"github.com/yousef-2020-malik/retail-gpt-plugin/internal/domain"
)

// MemoryOrderStore implements OrderStore with in-memory storage. Orders are
// never deleted; they live for the process lifetime.
type MemoryOrderStore struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order
}

// NewMemoryOrderStore creates an empty in-memory order store.
func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{
		orders: make(map[string]*domain.Order),
	}
}

func newOrderID() string {
	id := uuid.New()
	return "o_" + hex.EncodeToString(id[:])[:10]
}

func (s *MemoryOrderStore) Create(order domain.Order) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := order.Clone()
	snapshot.ID = newOrderID()
	s.orders[snapshot.ID] = snapshot
	return snapshot.Clone(), nil
}

func (s *MemoryOrderStore) Get(orderID string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, exists := s.orders[orderID]
	if !exists {
		return nil, ErrOrderNotFound
	}
	return order.Clone(), nil
}

package store

import (
	"encoding/hex"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yousef-2020-malik/retail-gpt-plugin/internal/domain"
)

// MemoryCartStore implements CartStore with in-memory storage. A single mutex
// serializes all mutations, which also makes the snapshot-and-delete pair in
// TakeForOrder atomic.
type MemoryCartStore struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

// NewMemoryCartStore creates an empty in-memory cart store.
func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{
		carts: make(map[string]*domain.Cart),
	}
}

func newCartID() string {
	id := uuid.New()
	return "c_" + hex.EncodeToString(id[:])[:8]
}

func (s *MemoryCartStore) Create(currency string) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := &domain.Cart{
		ID:       newCartID(),
		Currency: currency,
		Items:    []domain.LineItem{},
		Total:    decimal.Zero,
	}
	s.carts[cart.ID] = cart
	return cart.Clone(), nil
}

func (s *MemoryCartStore) Get(cartID string) (*domain.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, exists := s.carts[cartID]
	if !exists {
		return nil, ErrCartNotFound
	}
	return cart.Clone(), nil
}

func (s *MemoryCartStore) AddItem(cartID string, p domain.Product, qty int) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, exists := s.carts[cartID]
	if !exists {
		return nil, ErrCartNotFound
	}
	cart.AddProduct(p, qty)
	return cart.Clone(), nil
}

func (s *MemoryCartStore) UpdateQuantity(cartID, sku string, qty int) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, exists := s.carts[cartID]
	if !exists {
		return nil, ErrCartNotFound
	}
	if !cart.SetQuantity(sku, qty) {
		return nil, ErrItemNotFound
	}
	return cart.Clone(), nil
}

func (s *MemoryCartStore) RemoveItem(cartID, sku string) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, exists := s.carts[cartID]
	if !exists {
		return nil, ErrCartNotFound
	}
	if !cart.RemoveLine(sku) {
		return nil, ErrItemNotFound
	}
	return cart.Clone(), nil
}

func (s *MemoryCartStore) Clear(cartID string) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, exists := s.carts[cartID]
	if !exists {
		return nil, ErrCartNotFound
	}
	cart.Clear()
	return cart.Clone(), nil
}

func (s *MemoryCartStore) TakeForOrder(cartID string) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, exists := s.carts[cartID]
	if !exists {
		return nil, ErrCartNotFound
	}
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	delete(s.carts, cartID)
	return cart, nil
}

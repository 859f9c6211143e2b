package cart

import (
	"context"
	"sync"
	"time"

	"github.com/chimcuccuccu/T2BIKE-sub000/internal/domain"
)

// MemoryStore keeps carts in process memory. Mutations are atomic
// synchronous updates under a single lock; carts are only ever touched by
// explicit user actions, never by background work.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]*domain.Cart)}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (*domain.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.carts[sessionID]; ok {
		return copyCart(c), nil
	}
	return emptyCart(sessionID), nil
}

func (s *MemoryStore) AddItem(_ context.Context, sessionID string, product domain.Product, quantity int) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.getOrCreate(sessionID)
	addItem(c, product, quantity)
	c.UpdatedAt = time.Now()
	return copyCart(c), nil
}

func (s *MemoryStore) UpdateQuantity(_ context.Context, sessionID, itemID string, quantity int) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.getOrCreate(sessionID)
	updateQuantity(c, itemID, quantity)
	c.UpdatedAt = time.Now()
	return copyCart(c), nil
}

func (s *MemoryStore) RemoveItem(_ context.Context, sessionID, itemID string) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.getOrCreate(sessionID)
	removeItem(c, itemID)
	c.UpdatedAt = time.Now()
	return copyCart(c), nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}

func (s *MemoryStore) getOrCreate(sessionID string) *domain.Cart {
	if c, ok := s.carts[sessionID]; ok {
		return c
	}
	c := emptyCart(sessionID)
	s.carts[sessionID] = c
	return c
}

// copyCart returns a snapshot so callers cannot mutate the stored cart
// outside the lock.
func copyCart(c *domain.Cart) *domain.Cart {
	out := *c
	out.Items = make([]domain.CartItem, len(c.Items))
	copy(out.Items, c.Items)
	return &out
}

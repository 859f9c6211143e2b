// Package wishlist is the session-scoped favorites list. Unlike the cart it
// has no quantities: a product is either on the list or not.
package wishlist

import (
	"sync"

	"github.com/chimcuccuccu/T2BIKE-sub000/internal/domain"
)

type Store struct {
	mu    sync.RWMutex
	lists map[string][]domain.Product
}

func NewStore() *Store {
	return &Store{lists: make(map[string][]domain.Product)}
}

// Add appends the product unless it is already on the list.
func (s *Store) Add(sessionID string, product domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.lists[sessionID] {
		if p.ID == product.ID {
			return
		}
	}
	s.lists[sessionID] = append(s.lists[sessionID], product)
}

// Remove drops the product; unknown ids are a no-op.
func (s *Store) Remove(sessionID string, productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.lists[sessionID]
	for i, p := range list {
		if p.ID == productID {
			s.lists[sessionID] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

func (s *Store) Contains(sessionID string, productID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.lists[sessionID] {
		if p.ID == productID {
			return true
		}
	}
	return false
}

func (s *Store) List(sessionID string) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := s.lists[sessionID]
	out := make([]domain.Product, len(list))
	copy(out, list)
	return out
}

func (s *Store) Count(sessionID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lists[sessionID])
}

// Package cart holds the session-scoped shopping cart. The store is a UI
// convenience projection, not a source of truth: every mutation is a total
// function over its inputs and invalid ids or quantities are silently
// ignored. The backend re-validates price and stock at order-creation time.
package cart

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/chimcuccuccu/T2BIKE-sub000/internal/domain"
)

type Store interface {
	// Get returns the session's cart, creating an empty one on first use.
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	// AddItem merges by product id: an existing line has its quantity
	// incremented, otherwise a new line is appended.
	AddItem(ctx context.Context, sessionID string, product domain.Product, quantity int) (*domain.Cart, error)
	// UpdateQuantity replaces a line's quantity. Quantities below 1 and
	// unknown item ids leave the cart unchanged.
	UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*domain.Cart, error)
	// RemoveItem deletes the matching line; absent ids are a no-op.
	RemoveItem(ctx context.Context, sessionID, itemID string) (*domain.Cart, error)
	// Clear empties the cart. Called after a successful order submission.
	Clear(ctx context.Context, sessionID string) error
}

// The mutation helpers below are shared by both store implementations so the
// merge/no-op rules live in exactly one place.

func addItem(c *domain.Cart, product domain.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	if existing := c.Find(product.ID); existing != nil {
		existing.Quantity += quantity
		existing.Product = product // refresh the cached copy
		return
	}
	c.Items = append(c.Items, domain.CartItem{
		ID:        uuid.NewString(),
		ProductID: product.ID,
		Product:   product,
		Quantity:  quantity,
		AddedAt:   time.Now(),
	})
}

func updateQuantity(c *domain.Cart, itemID string, quantity int) {
	if quantity < 1 {
		return
	}
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

func removeItem(c *domain.Cart, itemID string) {
	for i, item := range c.Items {
		if item.ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

func emptyCart(sessionID string) *domain.Cart {
	now := time.Now()
	return &domain.Cart{
		SessionID: sessionID,
		Items:     nil,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

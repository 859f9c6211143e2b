package domain

import "time"

// CartItem is one line of a session cart. A cart holds at most one line per
// product id; adding the same product again bumps the quantity instead.
type CartItem struct {
	ID        string    `json:"id"`
	ProductID int64     `json:"product_id"`
	Product   Product   `json:"product"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Subtotal is the displayed total in VND base units. It is derived on every
// read and never persisted; the backend recomputes prices at order time.
func (c *Cart) Subtotal() int64 {
	var sum int64
	for _, item := range c.Items {
		sum += item.Product.Price * int64(item.Quantity)
	}
	return sum
}

// Find returns the line holding productID, or nil.
func (c *Cart) Find(productID int64) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

func (c *Cart) Contains(productID int64) bool {
	return c.Find(productID) != nil
}

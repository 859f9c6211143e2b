package admin

import (
	"context"
	"fmt"
	"sync"

	"github.com/chimcuccuccu/T2BIKE-sub000/internal/backend"
	"github.com/chimcuccuccu/T2BIKE-sub000/internal/domain"
)

type OrderBackend interface {
	Orders(ctx context.Context, page, size int, sortBy, sortDir string) (*backend.Page[domain.Order], error)
	Order(ctx context.Context, id int64) (*domain.Order, error)
	SearchOrders(ctx context.Context, keyword string, status domain.OrderStatus) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}

type Orders struct {
	mu      sync.Mutex
	backend OrderBackend
	page    int
	size    int
}

func NewOrders(b OrderBackend) *Orders {
	return &Orders{backend: b, size: defaultPageSize}
}

// Load fetches the current page, newest orders first.
func (o *Orders) Load(ctx context.Context) (*backend.Page[domain.Order], error) {
	o.mu.Lock()
	page, size := o.page, o.size
	o.mu.Unlock()
	return o.backend.Orders(ctx, page, size, "createdAt", "desc")
}

func (o *Orders) SetPage(page int) {
	if page < 0 {
		page = 0
	}
	o.mu.Lock()
	o.page = page
	o.mu.Unlock()
}

// Search filters orders by keyword and/or status with a fresh fetch.
func (o *Orders) Search(ctx context.Context, keyword string, status domain.OrderStatus) ([]domain.Order, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("unknown order status %q", status)
	}
	return o.backend.SearchOrders(ctx, keyword, status)
}

// Detail fetches one order for the view modal.
func (o *Orders) Detail(ctx context.Context, id int64) (*domain.Order, error) {
	return o.backend.Order(ctx, id)
}

// UpdateStatus moves an order to a new status and refetches the page.
func (o *Orders) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) (*backend.Page[domain.Order], error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown order status %q", status)
	}
	if _, err := o.backend.UpdateOrderStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return o.Load(ctx)
}

// Delete removes an order after explicit confirmation.
func (o *Orders) Delete(ctx context.Context, id int64, confirmed bool) (*backend.Page[domain.Order], error) {
	if !confirmed {
		return nil, ErrConfirmRequired
	}
	if err := o.backend.DeleteOrder(ctx, id); err != nil {
		return nil, err
	}
	return o.Load(ctx)
}

package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/chimcuccuccu/T2BIKE-sub000/internal/domain"
)

// CreateOrder submits a checkout. The backend validates stock and prices and
// answers with the created order, including its id.
func (c *Client) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	var out domain.Order
	if err := c.postJSON(ctx, "/api/orders", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Orders fetches one page of all orders (admin), sorted server-side.
func (c *Client) Orders(ctx context.Context, page, size int, sortBy, sortDir string) (*Page[domain.Order], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	if sortBy != "" {
		q.Set("sortBy", sortBy)
	}
	if sortDir != "" {
		q.Set("sortDir", sortDir)
	}

	var out Page[domain.Order]
	if err := c.get(ctx, "/api/orders", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Order fetches a single order by id.
func (c *Client) Order(ctx context.Context, id int64) (*domain.Order, error) {
	var out domain.Order
	if err := c.get(ctx, fmt.Sprintf("/api/orders/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OrdersByUser fetches a user's order history for the profile view.
func (c *Client) OrdersByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	var out []domain.Order
	if err := c.get(ctx, fmt.Sprintf("/api/orders/user/%d", userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateOrderStatus moves an order to a new status (admin).
func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error) {
	q := url.Values{}
	q.Set("status", string(status))

	var out domain.Order
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/orders/%d/status", id), q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteOrder removes an order (admin).
func (c *Client) DeleteOrder(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/orders/%d", id))
}

// SearchOrders filters orders by free-text keyword and/or status (admin).
func (c *Client) SearchOrders(ctx context.Context, keyword string, status domain.OrderStatus) ([]domain.Order, error) {
	q := url.Values{}
	if keyword != "" {
		q.Set("keyword", keyword)
	}
	if status != "" {
		q.Set("status", string(status))
	}

	var out []domain.Order
	if err := c.get(ctx, "/api/orders/search", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

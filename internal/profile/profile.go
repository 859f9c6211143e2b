// Package profile backs the order-history view: a user's past orders with
// client-side status filtering and keyword search, plus purchase stats.
package profile

import (
	"context"
	"strconv"
	"strings"

	"github.com/chimcuccuccu/T2BIKE-sub000/internal/domain"
)

// OrderSource is the slice of the backend client the profile view needs.
type OrderSource interface {
	OrdersByUser(ctx context.Context, userID int64) ([]domain.Order, error)
	UserOrderStats(ctx context.Context, userID int64) (*domain.OrderStats, error)
}

type Service struct {
	source OrderSource
}

func NewService(source OrderSource) *Service {
	return &Service{source: source}
}

// History fetches the user's orders. Filtering and search happen client-side
// over the returned list, matching how the view works.
func (s *Service) History(ctx context.Context, userID int64) ([]domain.Order, error) {
	return s.source.OrdersByUser(ctx, userID)
}

// Stats fetches the user's totals for the profile header.
func (s *Service) Stats(ctx context.Context, userID int64) (*domain.OrderStats, error) {
	return s.source.UserOrderStats(ctx, userID)
}

// FilterByStatus narrows orders to one status; an empty status keeps all.
func FilterByStatus(orders []domain.Order, status domain.OrderStatus) []domain.Order {
	if status == "" {
		return orders
	}
	var out []domain.Order
	for _, o := range orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

// Search keeps orders whose id, customer name or any product name contains
// the keyword, case-insensitively. An empty keyword keeps all.
func Search(orders []domain.Order, keyword string) []domain.Order {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return orders
	}

	var out []domain.Order
	for _, o := range orders {
		if matches(o, keyword) {
			out = append(out, o)
		}
	}
	return out
}

func matches(o domain.Order, keyword string) bool {
	if strings.Contains(strconv.FormatInt(o.ID, 10), keyword) {
		return true
	}
	if strings.Contains(strings.ToLower(o.CustomerName), keyword) {
		return true
	}
	for _, item := range o.Items {
		if strings.Contains(strings.ToLower(item.Product.Name), keyword) {
			return true
		}
	}
	return false
}

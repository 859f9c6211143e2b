package admin

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chimcuccuccu/T2BIKE-sub000/internal/backend"
	"github.com/chimcuccuccu/T2BIKE-sub000/internal/domain"
)

type mockOrderBackend struct {
	m           sync.Mutex
	loads       int
	lastSortBy  string
	lastSortDir string
	statusSet   map[int64]domain.OrderStatus
	deleted     []int64
}

func (m *mockOrderBackend) Orders(_ context.Context, page, size int, sortBy, sortDir string) (*backend.Page[domain.Order], error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.loads++
	m.lastSortBy = sortBy
	m.lastSortDir = sortDir
	return &backend.Page[domain.Order]{Content: []domain.Order{{ID: 1}}}, nil
}

func (m *mockOrderBackend) Order(_ context.Context, id int64) (*domain.Order, error) {
	return &domain.Order{ID: id}, nil
}

func (m *mockOrderBackend) SearchOrders(_ context.Context, keyword string, status domain.OrderStatus) ([]domain.Order, error) {
	return []domain.Order{{ID: 2, Status: status}}, nil
}

func (m *mockOrderBackend) UpdateOrderStatus(_ context.Context, id int64, status domain.OrderStatus) (*domain.Order, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.statusSet == nil {
		m.statusSet = map[int64]domain.OrderStatus{}
	}
	m.statusSet[id] = status
	return &domain.Order{ID: id, Status: status}, nil
}

func (m *mockOrderBackend) DeleteOrder(_ context.Context, id int64) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.deleted = append(m.deleted, id)
	return nil
}

func TestOrdersLoad_SortsNewestFirst(t *testing.T) {
	b := &mockOrderBackend{}
	svc := NewOrders(b)

	_, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "createdAt", b.lastSortBy)
	assert.Equal(t, "desc", b.lastSortDir)
}

func TestOrdersUpdateStatus_ValidatesAndRefetches(t *testing.T) {
	b := &mockOrderBackend{}
	svc := NewOrders(b)

	_, err := svc.UpdateStatus(context.Background(), 7, "LOST")
	require.Error(t, err)
	assert.Empty(t, b.statusSet)

	page, err := svc.UpdateStatus(context.Background(), 7, domain.OrderStatusShipping)
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, domain.OrderStatusShipping, b.statusSet[7])
	assert.Equal(t, 1, b.loads)
}

func TestOrdersDelete_RequiresConfirmation(t *testing.T) {
	b := &mockOrderBackend{}
	svc := NewOrders(b)

	_, err := svc.Delete(context.Background(), 7, false)
	assert.ErrorIs(t, err, ErrConfirmRequired)

	_, err = svc.Delete(context.Background(), 7, true)
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, b.deleted)
}

func TestOrdersSearch_RejectsUnknownStatus(t *testing.T) {
	svc := NewOrders(&mockOrderBackend{})

	_, err := svc.Search(context.Background(), "", "LOST")
	assert.Error(t, err)

	orders, err := svc.Search(context.Background(), "bike", domain.OrderStatusPending)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

package admin

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chimcuccuccu/T2BIKE-sub000/internal/backend"
	"github.com/chimcuccuccu/T2BIKE-sub000/internal/domain"
)

type mockProductBackend struct {
	m           sync.Mutex
	loads       int
	deleted     []int64
	updated     []int64
	attrsWiped  []int64
	attrsPosted []int64
	updateErr   error
	wipeErr     error
}

func (m *mockProductBackend) Products(context.Context, int, int) (*backend.Page[domain.Product], error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.loads++
	return &backend.Page[domain.Product]{Content: []domain.Product{{ID: 1}}, TotalPages: 1}, nil
}

func (m *mockProductBackend) Product(_ context.Context, id int64) (*domain.Product, error) {
	return &domain.Product{ID: id, Name: "bike"}, nil
}

func (m *mockProductBackend) SearchProducts(context.Context, string) ([]domain.Product, error) {
	return []domain.Product{{ID: 2}}, nil
}

func (m *mockProductBackend) UpdateProduct(_ context.Context, id int64, _ domain.Product) (*domain.Product, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	m.updated = append(m.updated, id)
	return &domain.Product{ID: id}, nil
}

func (m *mockProductBackend) DeleteProduct(_ context.Context, id int64) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockProductBackend) ProductAttributes(_ context.Context, id int64) ([]domain.ProductAttribute, error) {
	return []domain.ProductAttribute{{Name: "Khung", Value: "Carbon"}}, nil
}

func (m *mockProductBackend) DeleteProductAttributes(_ context.Context, id int64) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.wipeErr != nil {
		return m.wipeErr
	}
	m.attrsWiped = append(m.attrsWiped, id)
	return nil
}

func (m *mockProductBackend) CreateProductAttributes(_ context.Context, id int64, _ []domain.ProductAttribute) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.attrsPosted = append(m.attrsPosted, id)
	return nil
}

func TestProductsUpdate_RunsFullSequenceAndRefetches(t *testing.T) {
	b := &mockProductBackend{}
	svc := NewProducts(b)

	page, err := svc.Update(context.Background(), 5, domain.Product{Name: "edited"},
		[]domain.ProductAttribute{{Name: "Khung", Value: "Nhôm"}})
	require.NoError(t, err)
	require.NotNil(t, page)

	assert.Equal(t, []int64{5}, b.updated)
	assert.Equal(t, []int64{5}, b.attrsWiped)
	assert.Equal(t, []int64{5}, b.attrsPosted)
	assert.Equal(t, 1, b.loads) // refetched after the mutation
}

func TestProductsUpdate_SkipsAttributePostWhenEmpty(t *testing.T) {
	b := &mockProductBackend{}
	svc := NewProducts(b)

	_, err := svc.Update(context.Background(), 5, domain.Product{}, nil)
	require.NoError(t, err)
	assert.Empty(t, b.attrsPosted)
	assert.Equal(t, []int64{5}, b.attrsWiped)
}

func TestProductsUpdate_MidSequenceFailureStops(t *testing.T) {
	b := &mockProductBackend{wipeErr: errors.New("backend down")}
	svc := NewProducts(b)

	_, err := svc.Update(context.Background(), 5, domain.Product{}, nil)
	require.Error(t, err)
	// base update went through, attributes did not: no rollback is attempted
	assert.Equal(t, []int64{5}, b.updated)
	assert.Empty(t, b.attrsPosted)
	assert.Zero(t, b.loads)
}

func TestProductsDelete_RequiresConfirmation(t *testing.T) {
	b := &mockProductBackend{}
	svc := NewProducts(b)

	_, err := svc.Delete(context.Background(), 5, false)
	assert.ErrorIs(t, err, ErrConfirmRequired)
	assert.Empty(t, b.deleted)

	page, err := svc.Delete(context.Background(), 5, true)
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, []int64{5}, b.deleted)
	assert.Equal(t, 1, b.loads)
}

func TestProductsDetail_AttachesAttributes(t *testing.T) {
	svc := NewProducts(&mockProductBackend{})

	product, err := svc.Detail(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, product.Attributes, 1)
	assert.Equal(t, "Khung", product.Attributes[0].Name)
}

func TestProductsSetPage_ClampsNegative(t *testing.T) {
	svc := NewProducts(&mockProductBackend{})
	svc.SetPage(-2)
	assert.Equal(t, 0, svc.page)
}

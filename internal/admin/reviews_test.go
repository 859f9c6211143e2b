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

type mockReviewBackend struct {
	m            sync.Mutex
	shopLoads    int
	productLoads int
	lastSearch   backend.ShopReviewSearch
	answered     map[int64]string
	deletedShop  []int64
	deletedProd  []int64
}

func (m *mockReviewBackend) ShopReviews(context.Context, int, int) (*backend.Page[domain.ShopReview], error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.shopLoads++
	return &backend.Page[domain.ShopReview]{Content: []domain.ShopReview{{ID: 1, Rating: 5}}}, nil
}

func (m *mockReviewBackend) SearchShopReviews(_ context.Context, s backend.ShopReviewSearch) (*backend.Page[domain.ShopReview], error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.lastSearch = s
	return &backend.Page[domain.ShopReview]{}, nil
}

func (m *mockReviewBackend) ShopReviewStats(context.Context) (*domain.RatingStats, error) {
	return &domain.RatingStats{Average: 4.5, Total: 10}, nil
}

func (m *mockReviewBackend) UpdateShopReview(_ context.Context, id int64, _ backend.ReviewRequest) (*domain.ShopReview, error) {
	return &domain.ShopReview{ID: id}, nil
}

func (m *mockReviewBackend) DeleteShopReview(_ context.Context, id int64) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.deletedShop = append(m.deletedShop, id)
	return nil
}

func (m *mockReviewBackend) ProductReviews(context.Context, int, int) (*backend.Page[domain.ProductReview], error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.productLoads++
	return &backend.Page[domain.ProductReview]{Content: []domain.ProductReview{{ID: 2}}}, nil
}

func (m *mockReviewBackend) AnswerProductReview(_ context.Context, id int64, answer string) (*domain.ProductReview, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.answered == nil {
		m.answered = map[int64]string{}
	}
	m.answered[id] = answer
	return &domain.ProductReview{ID: id, Answer: answer}, nil
}

func (m *mockReviewBackend) DeleteProductReview(_ context.Context, id int64) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.deletedProd = append(m.deletedProd, id)
	return nil
}

func TestReviewsSearchShop_CarriesCursor(t *testing.T) {
	b := &mockReviewBackend{}
	svc := NewReviews(b)
	svc.SetPage(3)

	_, err := svc.SearchShop(context.Background(), 4, "tốt")
	require.NoError(t, err)
	assert.Equal(t, 4, b.lastSearch.Rating)
	assert.Equal(t, "tốt", b.lastSearch.Keyword)
	assert.Equal(t, 3, b.lastSearch.Page)
}

func TestReviewsDeleteShop_RequiresConfirmation(t *testing.T) {
	b := &mockReviewBackend{}
	svc := NewReviews(b)

	_, err := svc.DeleteShop(context.Background(), 1, false)
	assert.ErrorIs(t, err, ErrConfirmRequired)
	assert.Empty(t, b.deletedShop)

	page, err := svc.DeleteShop(context.Background(), 1, true)
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, []int64{1}, b.deletedShop)
	assert.Equal(t, 1, b.shopLoads)
}

func TestReviewsAnswer_Refetches(t *testing.T) {
	b := &mockReviewBackend{}
	svc := NewReviews(b)

	page, err := svc.Answer(context.Background(), 2, "Cảm ơn bạn!")
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, "Cảm ơn bạn!", b.answered[2])
	assert.Equal(t, 1, b.productLoads)
}

func TestReviewsDeleteProduct_RequiresConfirmation(t *testing.T) {
	b := &mockReviewBackend{}
	svc := NewReviews(b)

	_, err := svc.DeleteProduct(context.Background(), 9, false)
	assert.ErrorIs(t, err, ErrConfirmRequired)

	_, err = svc.DeleteProduct(context.Background(), 9, true)
	require.NoError(t, err)
	assert.Equal(t, []int64{9}, b.deletedProd)
}

func TestReviewsStats(t *testing.T) {
	svc := NewReviews(&mockReviewBackend{})
	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4.5, stats.Average)
}

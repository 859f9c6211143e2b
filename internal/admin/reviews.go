package admin

import (
	"context"
	"sync"

	"github.com/chimcuccuccu/T2BIKE-sub000/internal/backend"
	"github.com/chimcuccuccu/T2BIKE-sub000/internal/domain"
)

type ReviewBackend interface {
	ShopReviews(ctx context.Context, page, size int) (*backend.Page[domain.ShopReview], error)
	SearchShopReviews(ctx context.Context, s backend.ShopReviewSearch) (*backend.Page[domain.ShopReview], error)
	ShopReviewStats(ctx context.Context) (*domain.RatingStats, error)
	UpdateShopReview(ctx context.Context, id int64, req backend.ReviewRequest) (*domain.ShopReview, error)
	DeleteShopReview(ctx context.Context, id int64) error

	ProductReviews(ctx context.Context, page, size int) (*backend.Page[domain.ProductReview], error)
	AnswerProductReview(ctx context.Context, id int64, answer string) (*domain.ProductReview, error)
	DeleteProductReview(ctx context.Context, id int64) error
}

// Reviews manages both review tables: storefront reviews and per-product
// reviews.
type Reviews struct {
	mu      sync.Mutex
	backend ReviewBackend
	page    int
	size    int
}

func NewReviews(b ReviewBackend) *Reviews {
	return &Reviews{backend: b, size: defaultPageSize}
}

func (r *Reviews) SetPage(page int) {
	if page < 0 {
		page = 0
	}
	r.mu.Lock()
	r.page = page
	r.mu.Unlock()
}

func (r *Reviews) cursor() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.page, r.size
}

// LoadShop fetches the current page of storefront reviews.
func (r *Reviews) LoadShop(ctx context.Context) (*backend.Page[domain.ShopReview], error) {
	page, size := r.cursor()
	return r.backend.ShopReviews(ctx, page, size)
}

// SearchShop filters storefront reviews by star rating and keyword.
func (r *Reviews) SearchShop(ctx context.Context, rating int, keyword string) (*backend.Page[domain.ShopReview], error) {
	page, size := r.cursor()
	return r.backend.SearchShopReviews(ctx, backend.ShopReviewSearch{
		Rating:  rating,
		Keyword: keyword,
		Page:    page,
		Size:    size,
	})
}

// Stats fetches the aggregate rating distribution for the header widget.
func (r *Reviews) Stats(ctx context.Context) (*domain.RatingStats, error) {
	return r.backend.ShopReviewStats(ctx)
}

// UpdateShop saves an edited storefront review and refetches the page.
func (r *Reviews) UpdateShop(ctx context.Context, id int64, rating int, comment string) (*backend.Page[domain.ShopReview], error) {
	if _, err := r.backend.UpdateShopReview(ctx, id, backend.ReviewRequest{Rating: rating, Comment: comment}); err != nil {
		return nil, err
	}
	return r.LoadShop(ctx)
}

// DeleteShop removes a storefront review after explicit confirmation.
func (r *Reviews) DeleteShop(ctx context.Context, id int64, confirmed bool) (*backend.Page[domain.ShopReview], error) {
	if !confirmed {
		return nil, ErrConfirmRequired
	}
	if err := r.backend.DeleteShopReview(ctx, id); err != nil {
		return nil, err
	}
	return r.LoadShop(ctx)
}

// LoadProduct fetches the current page of product reviews.
func (r *Reviews) LoadProduct(ctx context.Context) (*backend.Page[domain.ProductReview], error) {
	page, size := r.cursor()
	return r.backend.ProductReviews(ctx, page, size)
}

// Answer posts the shop's reply to a product review and refetches the page.
func (r *Reviews) Answer(ctx context.Context, id int64, answer string) (*backend.Page[domain.ProductReview], error) {
	if _, err := r.backend.AnswerProductReview(ctx, id, answer); err != nil {
		return nil, err
	}
	return r.LoadProduct(ctx)
}

// DeleteProduct removes a product review after explicit confirmation.
func (r *Reviews) DeleteProduct(ctx context.Context, id int64, confirmed bool) (*backend.Page[domain.ProductReview], error) {
	if !confirmed {
		return nil, ErrConfirmRequired
	}
	if err := r.backend.DeleteProductReview(ctx, id); err != nil {
		return nil, err
	}
	return r.LoadProduct(ctx)
}

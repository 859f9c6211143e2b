package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/chimcuccuccu/T2BIKE-sub000/internal/domain"
)

type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ShopReviewSearch filters the shop review list (admin review management).
type ShopReviewSearch struct {
	Rating  int // 0 means any
	Keyword string
	Page    int
	Size    int
}

// ShopReviews fetches one page of storefront-level reviews.
func (c *Client) ShopReviews(ctx context.Context, page, size int) (*Page[domain.ShopReview], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	var out Page[domain.ShopReview]
	if err := c.get(ctx, "/api/shop-reviews", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateShopReview(ctx context.Context, req ReviewRequest) (*domain.ShopReview, error) {
	var out domain.ShopReview
	if err := c.postJSON(ctx, "/api/shop-reviews", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateShopReview(ctx context.Context, id int64, req ReviewRequest) (*domain.ShopReview, error) {
	var out domain.ShopReview
	if err := c.putJSON(ctx, fmt.Sprintf("/api/shop-reviews/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteShopReview(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/shop-reviews/%d", id))
}

// ShopReviewStats fetches the aggregate rating distribution.
func (c *Client) ShopReviewStats(ctx context.Context) (*domain.RatingStats, error) {
	var out domain.RatingStats
	if err := c.get(ctx, "/api/shop-reviews/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchShopReviews filters reviews by rating and keyword.
func (c *Client) SearchShopReviews(ctx context.Context, s ShopReviewSearch) (*Page[domain.ShopReview], error) {
	q := url.Values{}
	if s.Rating > 0 {
		q.Set("rating", strconv.Itoa(s.Rating))
	}
	if s.Keyword != "" {
		q.Set("keyword", s.Keyword)
	}
	q.Set("page", strconv.Itoa(s.Page))
	q.Set("size", strconv.Itoa(s.Size))

	var out Page[domain.ShopReview]
	if err := c.get(ctx, "/api/shop-reviews/search", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProductReviews fetches one page across all product reviews (admin).
func (c *Client) ProductReviews(ctx context.Context, page, size int) (*Page[domain.ProductReview], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	var out Page[domain.ProductReview]
	if err := c.get(ctx, "/api/product-reviews", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProductReviewsFor lists the reviews of one product for its detail page.
func (c *Client) ProductReviewsFor(ctx context.Context, productID int64) ([]domain.ProductReview, error) {
	var out []domain.ProductReview
	if err := c.get(ctx, fmt.Sprintf("/api/product-reviews/product/%d", productID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProductReview(ctx context.Context, productID int64, req ReviewRequest) (*domain.ProductReview, error) {
	payload := struct {
		ProductID int64  `json:"productId"`
		Rating    int    `json:"rating"`
		Comment   string `json:"comment"`
	}{ProductID: productID, Rating: req.Rating, Comment: req.Comment}

	var out domain.ProductReview
	if err := c.postJSON(ctx, "/api/product-reviews", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProductReview(ctx context.Context, id int64, req ReviewRequest) (*domain.ProductReview, error) {
	var out domain.ProductReview
	if err := c.putJSON(ctx, fmt.Sprintf("/api/product-reviews/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProductReview(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/product-reviews/%d", id))
}

// AnswerProductReview posts the shop's reply to a product review (admin).
func (c *Client) AnswerProductReview(ctx context.Context, id int64, answer string) (*domain.ProductReview, error) {
	payload := struct {
		Answer string `json:"answer"`
	}{Answer: answer}

	var out domain.ProductReview
	if err := c.postJSON(ctx, fmt.Sprintf("/api/product-reviews/answer/%d", id), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/chimcuccuccu/T2BIKE-sub000/internal/domain"
)

// ProductFilter carries the catalog filter query. Prices are in VND base
// units; zero min and max means "no price constraint" to the backend.
type ProductFilter struct {
	MinPrice int64
	MaxPrice int64
	Category string
	Brand    string
}

// Products fetches one page of the full catalog.
func (c *Client) Products(ctx context.Context, page, size int) (*Page[domain.Product], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	var out Page[domain.Product]
	if err := c.get(ctx, "/api/all-products", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FilterProducts fetches the products matching the filter. The backend
// answers with a plain list, not a page.
func (c *Client) FilterProducts(ctx context.Context, f ProductFilter) ([]domain.Product, error) {
	q := url.Values{}
	q.Set("minPrice", strconv.FormatInt(f.MinPrice, 10))
	q.Set("maxPrice", strconv.FormatInt(f.MaxPrice, 10))
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Brand != "" {
		q.Set("brand", f.Brand)
	}

	var out []domain.Product
	if err := c.get(ctx, "/api/all-products/filter", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchProducts runs a keyword search over the catalog.
func (c *Client) SearchProducts(ctx context.Context, keyword string) ([]domain.Product, error) {
	q := url.Values{}
	q.Set("keyword", keyword)

	var out []domain.Product
	if err := c.get(ctx, "/api/all-products/search", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ProductsByCategory fetches every product of one category.
func (c *Client) ProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.get(ctx, "/api/all-products/category/"+url.PathEscape(category), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Product fetches a single product, including image URLs and color options.
func (c *Client) Product(ctx context.Context, id int64) (*domain.Product, error) {
	var out domain.Product
	if err := c.get(ctx, fmt.Sprintf("/api/all-products/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProduct replaces a product's base fields (admin).
func (c *Client) UpdateProduct(ctx context.Context, id int64, p domain.Product) (*domain.Product, error) {
	var out domain.Product
	if err := c.putJSON(ctx, fmt.Sprintf("/api/all-products/%d", id), p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProduct removes a product (admin). The backend does not cascade to
// orders referencing it.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/all-products/%d", id))
}

// Package catalog drives the product listing and category browsing views:
// it turns user filter selections into backend queries and keeps a
// client-side pagination window over the returned list.
package catalog

import (
	"context"
	"log"

	"golang.org/x/sync/singleflight"

	"github.com/chimcuccuccu/T2BIKE-sub000/internal/backend"
	"github.com/chimcuccuccu/T2BIKE-sub000/internal/domain"
	"github.com/chimcuccuccu/T2BIKE-sub000/internal/money"
)

// ProductsPerPage is the catalog grid's client-side window size.
const ProductsPerPage = 9

// DefaultMaxPriceUnits is the filter slider's upper bound in millions of VND.
const DefaultMaxPriceUnits = 50

// Filters is the user's filter selection. Prices are in coarse million-VND
// slider units, converted to base units at query time.
type Filters struct {
	PriceMinUnits int64  `json:"price_min"`
	PriceMaxUnits int64  `json:"price_max"`
	Brand         string `json:"brand"`
	Category      string `json:"category"`
}

func DefaultFilters() Filters {
	return Filters{PriceMinUnits: 0, PriceMaxUnits: DefaultMaxPriceUnits}
}

// ProductSource is the slice of the backend client the catalog needs.
type ProductSource interface {
	FilterProducts(ctx context.Context, f backend.ProductFilter) ([]domain.Product, error)
	SearchProducts(ctx context.Context, keyword string) ([]domain.Product, error)
	ProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)
	Products(ctx context.Context, page, size int) (*backend.Page[domain.Product], error)
	Product(ctx context.Context, id int64) (*domain.Product, error)
}

type Service struct {
	source ProductSource
	cache  *ProductCache     // nil disables caching
	sfg    singleflight.Group // collapses concurrent detail-page cache misses
}

func NewService(source ProductSource, cache *ProductCache) *Service {
	return &Service{source: source, cache: cache}
}

// Search fetches the products matching the filters. Fetch errors are logged
// and rendered as "no results": the query is read-only and user-retriable,
// so there is no retry here.
func (s *Service) Search(ctx context.Context, f Filters) []domain.Product {
	products, err := s.source.FilterProducts(ctx, backend.ProductFilter{
		MinPrice: money.FromMillions(f.PriceMinUnits),
		MaxPrice: money.FromMillions(f.PriceMaxUnits),
		Brand:    f.Brand,
		Category: f.Category,
	})
	if err != nil {
		log.Printf("catalog filter fetch failed: %v", err)
		return nil
	}
	return products
}

// Reset restores default filters and refetches the unfiltered first page.
func (s *Service) Reset(ctx context.Context) (Filters, []domain.Product) {
	page, err := s.source.Products(ctx, 0, ProductsPerPage)
	if err != nil {
		log.Printf("catalog reset fetch failed: %v", err)
		return DefaultFilters(), nil
	}
	return DefaultFilters(), page.Content
}

// Browse lists every product of a category.
func (s *Service) Browse(ctx context.Context, category string) []domain.Product {
	products, err := s.source.ProductsByCategory(ctx, category)
	if err != nil {
		log.Printf("catalog category fetch failed: %v", err)
		return nil
	}
	return products
}

// Keyword runs a free-text search.
func (s *Service) Keyword(ctx context.Context, keyword string) []domain.Product {
	products, err := s.source.SearchProducts(ctx, keyword)
	if err != nil {
		log.Printf("catalog search fetch failed: %v", err)
		return nil
	}
	return products
}

// Paginate cuts the client-side window for one grid page. Pages are
// 1-based; out-of-range pages return an empty window.
func Paginate(products []domain.Product, page, perPage int) ([]domain.Product, int) {
	if perPage < 1 {
		perPage = ProductsPerPage
	}
	totalPages := (len(products) + perPage - 1) / perPage

	if page < 1 || page > totalPages {
		return nil, totalPages
	}
	start := (page - 1) * perPage
	end := start + perPage
	if end > len(products) {
		end = len(products)
	}
	return products[start:end], totalPages
}

package admin

import (
	"context"
	"fmt"
	"sync"

	"github.com/chimcuccuccu/T2BIKE-sub000/internal/backend"
	"github.com/chimcuccuccu/T2BIKE-sub000/internal/domain"
)

// ProductBackend is the slice of the backend client the product table needs.
type ProductBackend interface {
	Products(ctx context.Context, page, size int) (*backend.Page[domain.Product], error)
	Product(ctx context.Context, id int64) (*domain.Product, error)
	SearchProducts(ctx context.Context, keyword string) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, p domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	ProductAttributes(ctx context.Context, productID int64) ([]domain.ProductAttribute, error)
	DeleteProductAttributes(ctx context.Context, productID int64) error
	CreateProductAttributes(ctx context.Context, productID int64, attrs []domain.ProductAttribute) error
}

type Products struct {
	mu      sync.Mutex
	backend ProductBackend
	page    int
	size    int
}

func NewProducts(b ProductBackend) *Products {
	return &Products{backend: b, size: defaultPageSize}
}

// Load fetches the current table page.
func (p *Products) Load(ctx context.Context) (*backend.Page[domain.Product], error) {
	p.mu.Lock()
	page, size := p.page, p.size
	p.mu.Unlock()
	return p.backend.Products(ctx, page, size)
}

// SetPage moves the table cursor; the next Load uses it.
func (p *Products) SetPage(page int) {
	if page < 0 {
		page = 0
	}
	p.mu.Lock()
	p.page = page
	p.mu.Unlock()
}

// Search issues a fresh keyword fetch, bypassing the page cursor.
func (p *Products) Search(ctx context.Context, keyword string) ([]domain.Product, error) {
	return p.backend.SearchProducts(ctx, keyword)
}

// Detail fetches one product with its attribute lines for the view modal.
func (p *Products) Detail(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := p.backend.Product(ctx, id)
	if err != nil {
		return nil, err
	}
	attrs, err := p.backend.ProductAttributes(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Attributes = attrs
	return product, nil
}

// Update saves an edited product: base fields first, then a replace-all of
// its attribute lines. The steps are independent backend calls with no
// rollback; a failure mid-sequence leaves the product partially updated and
// is reported to the caller. On full success the current page is refetched.
func (p *Products) Update(ctx context.Context, id int64, product domain.Product, attrs []domain.ProductAttribute) (*backend.Page[domain.Product], error) {
	if _, err := p.backend.UpdateProduct(ctx, id, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	if err := p.backend.DeleteProductAttributes(ctx, id); err != nil {
		return nil, fmt.Errorf("clear product attributes: %w", err)
	}
	if len(attrs) > 0 {
		if err := p.backend.CreateProductAttributes(ctx, id, attrs); err != nil {
			return nil, fmt.Errorf("create product attributes: %w", err)
		}
	}

	return p.Load(ctx)
}

// Delete removes a product after explicit confirmation and refetches the
// current page.
func (p *Products) Delete(ctx context.Context, id int64, confirmed bool) (*backend.Page[domain.Product], error) {
	if !confirmed {
		return nil, ErrConfirmRequired
	}
	if err := p.backend.DeleteProduct(ctx, id); err != nil {
		return nil, err
	}
	return p.Load(ctx)
}

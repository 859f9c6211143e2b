package backend

import (
	"context"
	"fmt"

	"github.com/chimcuccuccu/T2BIKE-sub000/internal/domain"
)

type attributeDetails struct {
	ProductID  int64                     `json:"productId"`
	Attributes []domain.ProductAttribute `json:"attributes"`
}

// ProductAttributes fetches the spec lines of one product.
func (c *Client) ProductAttributes(ctx context.Context, productID int64) ([]domain.ProductAttribute, error) {
	var out []domain.ProductAttribute
	if err := c.get(ctx, fmt.Sprintf("/api/product-attributes/details/%d", productID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteProductAttributes drops every attribute of a product. Paired with
// CreateProductAttributes this is the replace-all half of an admin product
// edit; there is no rollback between the two calls.
func (c *Client) DeleteProductAttributes(ctx context.Context, productID int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/product-attributes/product-details/%d", productID))
}

// CreateProductAttributes posts a fresh attribute set for a product.
func (c *Client) CreateProductAttributes(ctx context.Context, productID int64, attrs []domain.ProductAttribute) error {
	return c.postJSON(ctx, "/api/product-attributes/details", attributeDetails{
		ProductID:  productID,
		Attributes: attrs,
	}, nil)
}

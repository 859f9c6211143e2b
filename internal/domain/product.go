package domain

// Product mirrors the bikeshop backend's product entity. The storefront only
// ever displays fetched copies; the backend owns the record.
type Product struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Price       int64              `json:"price"` // VND, base units
	Category    string             `json:"category"`
	Brand       string             `json:"brand"`
	Colors      []string           `json:"color"`
	Quantity    int                `json:"quantity"`
	ImageURLs   []string           `json:"imageUrls"`
	Attributes  []ProductAttribute `json:"attributes,omitempty"`
}

// ProductAttribute is a named spec line shown on the detail page
// (frame size, wheel size, ...).
type ProductAttribute struct {
	ID    int64  `json:"id,omitempty"`
	Name  string `json:"attributeName"`
	Value string `json:"attributeValue"`
}

package domain

import "time"

// ShopReview is a storefront-level rating left by a customer.
type ShopReview struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Avatar    string    `json:"avatar,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProductReview is a rating attached to a single product. Answer holds the
// shop's reply, if any.
type ProductReview struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"productId"`
	Username  string    `json:"username"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Answer    string    `json:"answer,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// RatingStats aggregates review ratings: the mean plus a count per star.
type RatingStats struct {
	Average float64       `json:"average"`
	Total   int           `json:"total"`
	Counts  map[int]int64 `json:"counts"`
}

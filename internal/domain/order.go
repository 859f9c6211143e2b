package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipping  OrderStatus = "SHIPPING"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusReturned  OrderStatus = "RETURNED"
)

func (s OrderStatus) String() string {
	return string(s)
}

// Valid reports whether s is one of the statuses the backend accepts.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipping,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusReturned:
		return true
	}
	return false
}

// Label is the display text shown next to the status in the order history.
func (s OrderStatus) Label() string {
	switch s {
	case OrderStatusPending:
		return "Chờ xác nhận"
	case OrderStatusConfirmed:
		return "Đã xác nhận"
	case OrderStatusShipping:
		return "Đang giao"
	case OrderStatusDelivered:
		return "Đã giao"
	case OrderStatusCancelled:
		return "Đã hủy"
	case OrderStatusReturned:
		return "Trả hàng"
	}
	return string(s)
}

// Order is read back from the backend; the storefront never mutates one
// directly except through the status-update endpoint.
type Order struct {
	ID           int64         `json:"id"`
	CustomerName string        `json:"customerName"`
	CreatedAt    time.Time     `json:"createdAt"`
	User         *User         `json:"user,omitempty"`
	Items        []OrderItem   `json:"items"`
	Status       OrderStatus   `json:"status"`
	ShippingInfo *ShippingInfo `json:"shippingInfo"`
	TotalPrice   *int64        `json:"totalPrice"`
}

type OrderItem struct {
	ID           int64   `json:"id"`
	Quantity     int     `json:"quantity"`
	PriceAtOrder int64   `json:"priceAtOrder"`
	Product      Product `json:"product"`
}

// ShippingInfo is the address snapshot the backend keeps with each order.
type ShippingInfo struct {
	ID           int64  `json:"id,omitempty"`
	ReceiverName string `json:"receiverName"`
	Phone        string `json:"phone"`
	Province     string `json:"province"`
	District     string `json:"district"`
	Address      string `json:"address"`
	Note         string `json:"note"`
}

// CreateOrderRequest is the order-creation payload. Each cart line is reduced
// to a (product id, quantity) pair; the backend re-resolves prices and stock.
type CreateOrderRequest struct {
	CustomerName string             `json:"customerName"`
	Items        []OrderItemRequest `json:"items"`
	ShippingInfo ShippingInfo       `json:"shippingInfo"`
}

type OrderItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

// OrderStatus is the fulfillment state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
)

// ValidOrderStatus reports whether s names a known fulfillment state.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderShipped, OrderDelivered:
		return true
	}
	return false
}

// OrderItem is a single line of an order.
type OrderItem struct {
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Order represents a placed order and its fulfillment state.
type Order struct {
	ID       string      `json:"id"`
	UserID   string      `json:"userId"`
	PlacedAt time.Time   `json:"placedAt"`
	Status   OrderStatus `json:"status"`
	Total    float64     `json:"total"`
	Items    []OrderItem `json:"items"`
}

// OrderSummary holds per-status order counts for the account overview.
type OrderSummary struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Shipped   int `json:"shipped"`
	Delivered int `json:"delivered"`
}

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
}

package memory

import (
	"context"
	"time"

	"eastern-store/internal/domain"
)

// OrderRepository serves the demo order history. Every demo customer sees
// the same four sample orders, attributed to the signed-in user.
type OrderRepository struct {
	orders []*domain.Order
}

// NewOrderRepository creates an order repository seeded with the demo
// order history.
func NewOrderRepository() *OrderRepository {
	day := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}
	return &OrderRepository{
		orders: []*domain.Order{
			{
				ID: "ORD-001", PlacedAt: day("2024-01-15"), Status: domain.OrderDelivered, Total: 450,
				Items: []domain.OrderItem{
					{ProductName: "بخور العود الأصلي", Quantity: 1, Price: 300},
					{ProductName: "عطر الياسمين الأبيض", Quantity: 1, Price: 150},
				},
			},
			{
				ID: "ORD-002", PlacedAt: day("2024-01-10"), Status: domain.OrderShipped, Total: 200,
				Items: []domain.OrderItem{
					{ProductName: "بخور العنبر الملكي", Quantity: 2, Price: 100},
				},
			},
			{
				ID: "ORD-003", PlacedAt: day("2024-01-08"), Status: domain.OrderPending, Total: 350,
				Items: []domain.OrderItem{
					{ProductName: "عطر العود الملكي", Quantity: 1, Price: 350},
				},
			},
			{
				ID: "ORD-004", PlacedAt: day("2024-01-05"), Status: domain.OrderDelivered, Total: 180,
				Items: []domain.OrderItem{
					{ProductName: "بخور الورد الجوري", Quantity: 3, Price: 60},
				},
			},
		},
	}
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	out := make([]*domain.Order, len(r.orders))
	for i, o := range r.orders {
		cp := *o
		cp.UserID = userID
		cp.Items = append([]domain.OrderItem(nil), o.Items...)
		out[i] = &cp
	}
	return out, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			cp := *o
			cp.Items = append([]domain.OrderItem(nil), o.Items...)
			return &cp, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

package service

import (
	"context"

	"eastern-store/internal/domain"
)

type OrderService struct {
	repo domain.OrderRepository
}

func NewOrderService(repo domain.OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// Orders lists a customer's orders. A non-empty status narrows the result;
// an unknown status is rejected.
func (s *OrderService) Orders(ctx context.Context, userID string, status domain.OrderStatus) ([]*domain.Order, error) {
	if status != "" && !domain.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidOrderStatus
	}

	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return orders, nil
	}

	filtered := make([]*domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == status {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

func (s *OrderService) Order(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// Summary counts a customer's orders per fulfillment state.
func (s *OrderService) Summary(ctx context.Context, userID string) (*domain.OrderSummary, error) {
	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &domain.OrderSummary{Total: len(orders)}
	for _, o := range orders {
		switch o.Status {
		case domain.OrderPending:
			summary.Pending++
		case domain.OrderShipped:
			summary.Shipped++
		case domain.OrderDelivered:
			summary.Delivered++
		}
	}
	return summary, nil
}

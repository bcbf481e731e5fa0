package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"eastern-store/internal/domain"
)

// Counter for generating unique IDs
var idCounter atomic.Int64

// NextID generates a unique ID for test fixtures
func NextID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, idCounter.Add(1))
}

// NewTestProfile creates a registration profile with sensible defaults
func NewTestProfile(overrides ...func(*domain.Profile)) domain.Profile {
	p := domain.Profile{
		FirstName: "Ahmed",
		LastName:  "Ali",
		Email:     fmt.Sprintf("customer%d@example.com", idCounter.Add(1)),
		Phone:     "123",
		City:      "Riyadh",
		Country:   "Saudi Arabia",
	}
	for _, o := range overrides {
		o(&p)
	}
	return p
}

// NewTestOrder creates an order fixture with one line item
func NewTestOrder(userID string, status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		ID:       NextID("ORD"),
		UserID:   userID,
		PlacedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Status:   status,
		Total:    300,
		Items: []domain.OrderItem{
			{ProductName: "بخور العود الأصلي", Quantity: 1, Price: 300},
		},
	}
}

// StringPtr returns a pointer to s, for building ProfileUpdate values
func StringPtr(s string) *string {
	return &s
}

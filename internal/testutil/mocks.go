// Package testutil provides shared test utilities, mocks, and fixtures
// for testing the eastern-store application.
package testutil

import (
	"context"
	"errors"
	"sync"

	"eastern-store/internal/domain"
)

// ErrMockNotImplemented is returned by mocks without an override or default.
var ErrMockNotImplemented = errors.New("mock function not implemented")

// MockVault implements domain.SessionVault for testing. Without overrides it
// behaves like an in-memory slot; set the Func fields to inject failures.
type MockVault struct {
	mu    sync.Mutex
	value string
	set   bool

	LoadFunc  func(ctx context.Context) (string, bool, error)
	SaveFunc  func(ctx context.Context, value string) error
	ClearFunc func(ctx context.Context) error

	SaveCalls  int
	ClearCalls int
}

func (m *MockVault) Load(ctx context.Context) (string, bool, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value, m.set, nil
}

func (m *MockVault) Save(ctx context.Context, value string) error {
	m.mu.Lock()
	m.SaveCalls++
	m.mu.Unlock()
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, value)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = value
	m.set = true
	return nil
}

func (m *MockVault) Clear(ctx context.Context) error {
	m.mu.Lock()
	m.ClearCalls++
	m.mu.Unlock()
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = ""
	m.set = false
	return nil
}

// Seed puts a raw value into the slot, as if a previous process persisted it.
func (m *MockVault) Seed(value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = value
	m.set = true
}

// Value returns the current slot content and whether it is set.
func (m *MockVault) Value() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value, m.set
}

// MockOrderRepository implements domain.OrderRepository for testing
type MockOrderRepository struct {
	ListByUserFunc func(ctx context.Context, userID string) ([]*domain.Order, error)
	GetByIDFunc    func(ctx context.Context, id string) (*domain.Order, error)

	Orders []*domain.Order
}

func (m *MockOrderRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	out := make([]*domain.Order, 0, len(m.Orders))
	for _, o := range m.Orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	for _, o := range m.Orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

// MockContactRepository implements domain.ContactRepository for testing
type MockContactRepository struct {
	CreateFunc func(ctx context.Context, msg *domain.ContactMessage) error

	Messages []*domain.ContactMessage
}

func (m *MockContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, msg)
	}
	m.Messages = append(m.Messages, msg)
	return nil
}

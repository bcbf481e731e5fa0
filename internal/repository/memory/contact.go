package memory

import (
	"context"
	"sync"
	"time"

	"eastern-store/internal/domain"

	"github.com/google/uuid"
)

// ContactRepository keeps submitted contact messages in memory. Demo mode
// only; nothing reads them back except tests.
type ContactRepository struct {
	mu       sync.Mutex
	messages []*domain.ContactMessage
}

func NewContactRepository() *ContactRepository {
	return &ContactRepository{}
}

func (r *ContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.ReceivedAt.IsZero() {
		msg.ReceivedAt = time.Now()
	}
	cp := *msg
	r.messages = append(r.messages, &cp)
	return nil
}

// Messages returns a copy of everything submitted so far.
func (r *ContactRepository) Messages() []*domain.ContactMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.ContactMessage, len(r.messages))
	copy(out, r.messages)
	return out
}

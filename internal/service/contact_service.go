package service

import (
	"context"
	"strings"

	"eastern-store/internal/domain"
)

type ContactService struct {
	repo domain.ContactRepository
}

func NewContactService(repo domain.ContactRepository) *ContactService {
	return &ContactService{repo: repo}
}

// Submit stores a contact-form message. Name, email and message body are
// required; subject and phone are optional.
func (s *ContactService) Submit(ctx context.Context, msg *domain.ContactMessage) error {
	if strings.TrimSpace(msg.Name) == "" ||
		strings.TrimSpace(msg.Email) == "" ||
		strings.TrimSpace(msg.Message) == "" {
		return domain.ErrInvalidContactMessage
	}
	return s.repo.Create(ctx, msg)
}

package service

import (
	"context"
	"testing"

	"eastern-store/internal/domain"
	"eastern-store/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactService_Submit(t *testing.T) {
	repo := &testutil.MockContactRepository{}
	svc := NewContactService(repo)

	msg := &domain.ContactMessage{
		Name:    "Sara",
		Email:   "sara@example.com",
		Message: "Do you ship internationally?",
	}
	require.NoError(t, svc.Submit(context.Background(), msg))
	assert.Len(t, repo.Messages, 1)
}

func TestContactService_SubmitRejectsIncomplete(t *testing.T) {
	tests := []struct {
		name string
		msg  domain.ContactMessage
	}{
		{"missing_name", domain.ContactMessage{Email: "a@x.com", Message: "hi"}},
		{"missing_email", domain.ContactMessage{Name: "Sara", Message: "hi"}},
		{"missing_message", domain.ContactMessage{Name: "Sara", Email: "a@x.com"}},
		{"blank_message", domain.ContactMessage{Name: "Sara", Email: "a@x.com", Message: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &testutil.MockContactRepository{}
			svc := NewContactService(repo)

			err := svc.Submit(context.Background(), &tt.msg)
			assert.ErrorIs(t, err, domain.ErrInvalidContactMessage)
			assert.Empty(t, repo.Messages)
		})
	}
}

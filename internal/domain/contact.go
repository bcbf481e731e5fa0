package domain

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidContactMessage = errors.New("invalid contact message")

// ContactMessage is a customer inquiry submitted through the contact form.
type ContactMessage struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// ContactRepository defines the interface for contact message storage
type ContactRepository interface {
	Create(ctx context.Context, msg *ContactMessage) error
}

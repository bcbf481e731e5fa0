package postgres

import (
	"context"
	"database/sql"

	"eastern-store/internal/domain"
)

// ContactRepository implements domain.ContactRepository for PostgreSQL
type ContactRepository struct {
	db *sql.DB
}

// NewContactRepository creates a new PostgreSQL contact repository
func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create inserts a submitted contact message
func (r *ContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (name, email, phone, subject, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, received_at
	`
	return r.db.QueryRowContext(ctx, query,
		msg.Name,
		msg.Email,
		msg.Phone,
		msg.Subject,
		msg.Message,
	).Scan(&msg.ID, &msg.ReceivedAt)
}

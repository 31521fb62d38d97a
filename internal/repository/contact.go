package repository

import (
	"context"

	"coachapi/internal/model"
)

// ContactRepository defines data access for contact messages.
// Messages are insert-only; there is no update or delete path.
type ContactRepository interface {
	// Create inserts a new contact message. The caller provides ID and Timestamp.
	Create(ctx context.Context, msg *model.ContactMessage) (*model.ContactMessage, error)

	// List returns all messages ordered by timestamp, newest first. No pagination.
	List(ctx context.Context) ([]model.ContactMessage, error)
}

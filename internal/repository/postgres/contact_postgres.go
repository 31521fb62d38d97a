package postgres

import (
	"context"
	"database/sql"

	"coachapi/internal/model"
	"coachapi/internal/repository"
)

// ContactPostgres is a PostgreSQL implementation of repository.ContactRepository.
type ContactPostgres struct {
	db *sql.DB
}

// NewContactPostgres creates a new ContactPostgres repository.
func NewContactPostgres(db *sql.DB) *ContactPostgres {
	return &ContactPostgres{db: db}
}

var _ repository.ContactRepository = (*ContactPostgres)(nil)

// Create inserts a new contact message row and returns the stored record.
func (r *ContactPostgres) Create(ctx context.Context, msg *model.ContactMessage) (*model.ContactMessage, error) {
	const q = `
		INSERT INTO contact_messages (id, name, phone, email, course_interested, message, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, name, phone, email, course_interested, message, timestamp
	`
	row := r.db.QueryRowContext(ctx, q,
		msg.ID,
		msg.Name,
		msg.Phone,
		msg.Email,
		msg.CourseInterested,
		msg.Message,
		msg.Timestamp,
	)
	var out model.ContactMessage
	if err := row.Scan(
		&out.ID,
		&out.Name,
		&out.Phone,
		&out.Email,
		&out.CourseInterested,
		&out.Message,
		&out.Timestamp,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns all contact messages, newest first. Result size is unbounded.
func (r *ContactPostgres) List(ctx context.Context) ([]model.ContactMessage, error) {
	const q = `
		SELECT id, name, phone, email, course_interested, message, timestamp
		FROM contact_messages
		ORDER BY timestamp DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ContactMessage, 0)
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(
			&m.ID,
			&m.Name,
			&m.Phone,
			&m.Email,
			&m.CourseInterested,
			&m.Message,
			&m.Timestamp,
		); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

package repository

import (
	"context"

	"coachapi/internal/model"
)

// PDFRepository defines data access for PDF metadata records using SQL queries only.
// No business logic here, strictly persistence operations.
type PDFRepository interface {
	// Create inserts a new PDF record. The caller provides ID and UploadDate.
	// Returns the stored record (may include values set by the DB).
	Create(ctx context.Context, doc *model.PDFDocument) (*model.PDFDocument, error)

	// FindByID returns a record by its ID. Missing rows surface as sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.PDFDocument, error)

	// List returns all records ordered by upload date, newest first.
	List(ctx context.Context) ([]model.PDFDocument, error)

	// ListByExamType returns records whose exam_type matches exactly, newest first.
	ListByExamType(ctx context.Context, examType string) ([]model.PDFDocument, error)

	// Delete removes a record by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}

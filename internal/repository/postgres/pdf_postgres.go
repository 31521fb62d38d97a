package postgres

import (
	"context"
	"database/sql"

	"coachapi/internal/model"
	"coachapi/internal/repository"
)

// PDFPostgres is a PostgreSQL implementation of repository.PDFRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type PDFPostgres struct {
	db *sql.DB
}

// NewPDFPostgres creates a new PDFPostgres repository.
func NewPDFPostgres(db *sql.DB) *PDFPostgres {
	return &PDFPostgres{db: db}
}

var _ repository.PDFRepository = (*PDFPostgres)(nil)

const pdfColumns = `id, title, exam_type, subject, batch, filename, file_path, description, upload_date`

// Create inserts a new PDF row and returns the stored record.
func (r *PDFPostgres) Create(ctx context.Context, doc *model.PDFDocument) (*model.PDFDocument, error) {
	const q = `
		INSERT INTO pdf_documents (id, title, exam_type, subject, batch, filename, file_path, description, upload_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + pdfColumns
	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.Title,
		doc.ExamType,
		doc.Subject,
		doc.Batch,
		doc.Filename,
		doc.FilePath,
		doc.Description,
		doc.UploadDate,
	)
	var out model.PDFDocument
	if err := scanPDF(row, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single PDF record by its ID.
func (r *PDFPostgres) FindByID(ctx context.Context, id string) (*model.PDFDocument, error) {
	const q = `
		SELECT ` + pdfColumns + `
		FROM pdf_documents
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var d model.PDFDocument
	if err := scanPDF(row, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// List returns all PDF records, newest upload first.
func (r *PDFPostgres) List(ctx context.Context) ([]model.PDFDocument, error) {
	const q = `
		SELECT ` + pdfColumns + `
		FROM pdf_documents
		ORDER BY upload_date DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	return collectPDFs(rows)
}

// ListByExamType returns PDF records with an exact exam_type match, newest upload first.
func (r *PDFPostgres) ListByExamType(ctx context.Context, examType string) ([]model.PDFDocument, error) {
	const q = `
		SELECT ` + pdfColumns + `
		FROM pdf_documents
		WHERE exam_type = $1
		ORDER BY upload_date DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, examType)
	if err != nil {
		return nil, err
	}
	return collectPDFs(rows)
}

// Delete removes a PDF record by ID. It does not return an error if the row does not exist;
// existence is established by the service before deletion.
func (r *PDFPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM pdf_documents WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPDF(row rowScanner, d *model.PDFDocument) error {
	return row.Scan(
		&d.ID,
		&d.Title,
		&d.ExamType,
		&d.Subject,
		&d.Batch,
		&d.Filename,
		&d.FilePath,
		&d.Description,
		&d.UploadDate,
	)
}

func collectPDFs(rows *sql.Rows) ([]model.PDFDocument, error) {
	defer rows.Close()

	items := make([]model.PDFDocument, 0)
	for rows.Next() {
		var d model.PDFDocument
		if err := scanPDF(rows, &d); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

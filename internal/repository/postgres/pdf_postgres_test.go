package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"coachapi/internal/model"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var pdfCols = []string{"id", "title", "exam_type", "subject", "batch", "filename", "file_path", "description", "upload_date"}

func pdfRow(id string, examType string, uploaded time.Time) []driver.Value {
	return []driver.Value{id, "Algebra Notes", examType, "Mathematics", "2025", "notes.pdf", id + ".pdf", "", uploaded}
}

func addPDFRows(rows *sqlmock.Rows, vals ...[]driver.Value) *sqlmock.Rows {
	for _, v := range vals {
		rows.AddRow(v...)
	}
	return rows
}

func TestPDFPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPDFPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	doc := &model.PDFDocument{
		ID:         "test-id",
		Title:      "Algebra Notes",
		ExamType:   "SSC CGL",
		Subject:    "Mathematics",
		Batch:      "2025",
		Filename:   "notes.pdf",
		FilePath:   "test-id.pdf",
		UploadDate: now,
	}

	rows := sqlmock.NewRows(pdfCols).
		AddRow(doc.ID, doc.Title, doc.ExamType, doc.Subject, doc.Batch, doc.Filename, doc.FilePath, doc.Description, doc.UploadDate)

	mock.ExpectQuery("INSERT INTO pdf_documents").
		WithArgs(doc.ID, doc.Title, doc.ExamType, doc.Subject, doc.Batch, doc.Filename, doc.FilePath, doc.Description, doc.UploadDate).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, doc)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, doc.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPDFPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPDFPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := addPDFRows(sqlmock.NewRows(pdfCols), pdfRow("test-id", "SSC CGL", time.Now()))

		mock.ExpectQuery("SELECT (.+) FROM pdf_documents WHERE id = ?").
			WithArgs("test-id").
			WillReturnRows(rows)

		doc, err := repo.FindByID(ctx, "test-id")

		assert.NoError(t, err)
		assert.NotNil(t, doc)
		assert.Equal(t, "test-id", doc.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM pdf_documents WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		doc, err := repo.FindByID(ctx, "missing")

		assert.Error(t, err)
		assert.True(t, errors.Is(err, sql.ErrNoRows))
		assert.Nil(t, doc)
	})
}

func TestPDFPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPDFPostgres(db)
	ctx := context.Background()

	t.Run("newest first", func(t *testing.T) {
		newer := time.Now()
		older := newer.Add(-time.Hour)
		rows := addPDFRows(sqlmock.NewRows(pdfCols),
			pdfRow("new-id", "SSC CGL", newer),
			pdfRow("old-id", "UPSC", older),
		)

		mock.ExpectQuery("SELECT (.+) FROM pdf_documents ORDER BY upload_date DESC").
			WillReturnRows(rows)

		docs, err := repo.List(ctx)

		assert.NoError(t, err)
		assert.Len(t, docs, 2)
		assert.Equal(t, "new-id", docs[0].ID)
		assert.Equal(t, "old-id", docs[1].ID)
	})

	t.Run("empty result is a slice, not nil", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM pdf_documents ORDER BY upload_date DESC").
			WillReturnRows(sqlmock.NewRows(pdfCols))

		docs, err := repo.List(ctx)

		assert.NoError(t, err)
		assert.NotNil(t, docs)
		assert.Len(t, docs, 0)
	})
}

func TestPDFPostgres_ListByExamType(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPDFPostgres(db)
	ctx := context.Background()

	rows := addPDFRows(sqlmock.NewRows(pdfCols), pdfRow("test-id", "SSC CGL", time.Now()))

	mock.ExpectQuery("SELECT (.+) FROM pdf_documents WHERE exam_type = (.+) ORDER BY upload_date DESC").
		WithArgs("SSC CGL").
		WillReturnRows(rows)

	docs, err := repo.ListByExamType(ctx, "SSC CGL")

	assert.NoError(t, err)
	assert.Len(t, docs, 1)
	assert.Equal(t, "SSC CGL", docs[0].ExamType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPDFPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPDFPostgres(db)
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM pdf_documents WHERE id = ?").
			WithArgs("test-id").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "test-id"))
	})

	t.Run("absent row is not an error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM pdf_documents WHERE id = ?").
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.Delete(ctx, "missing"))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

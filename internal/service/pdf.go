package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"coachapi/internal/model"
	"coachapi/internal/repository"
	"coachapi/internal/storage"
)

var (
	ErrIDRequired    = errors.New("id is required")
	ErrNotFound      = errors.New("record not found")
	ErrReaderNil     = errors.New("reader is nil")
	ErrNotPDF        = errors.New("only PDF files are allowed")
	ErrFieldRequired = errors.New("field is required")
)

// PDFUpload carries the multipart form fields accompanying an uploaded file.
type PDFUpload struct {
	Title       string
	ExamType    string
	Subject     string
	Batch       string
	Description string
	Filename    string
	Size        int64
}

// PDFService defines the use cases for study-material PDFs.
type PDFService interface {
	// Upload validates the upload, stores the content, then inserts the
	// metadata record. If the insert fails the stored object is deleted
	// again so no orphan is left behind.
	Upload(ctx context.Context, r io.Reader, in PDFUpload) (*model.PDFDocument, error)

	// List returns all PDF records, newest upload first.
	List(ctx context.Context) ([]model.PDFDocument, error)

	// ListByExamType returns PDF records matching the exam type exactly, newest first.
	ListByExamType(ctx context.Context, examType string) ([]model.PDFDocument, error)

	// Download returns the stored content and its record. A missing record
	// and a record whose backing object is gone both report ErrNotFound.
	Download(ctx context.Context, id string) (io.ReadCloser, *model.PDFDocument, error)

	// Delete removes the stored object (tolerating an already-absent one),
	// then the record.
	Delete(ctx context.Context, id string) error
}

// pdfService is a concrete implementation of PDFService.
type pdfService struct {
	store storage.Storage
	repo  repository.PDFRepository
}

// NewPDFService constructs a new PDFService.
func NewPDFService(store storage.Storage, repo repository.PDFRepository) PDFService {
	return &pdfService{store: store, repo: repo}
}

func (s *pdfService) Upload(ctx context.Context, r io.Reader, in PDFUpload) (*model.PDFDocument, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	for field, v := range map[string]string{
		"title":     in.Title,
		"exam_type": in.ExamType,
		"subject":   in.Subject,
		"batch":     in.Batch,
	} {
		if v == "" {
			return nil, fmt.Errorf("%w: %s", ErrFieldRequired, field)
		}
	}
	// Extension check matches the original client contract exactly: the
	// uploaded name must end in ".pdf". Rejected before any side effect.
	if !strings.HasSuffix(in.Filename, ".pdf") {
		return nil, ErrNotPDF
	}

	// One generated identifier serves as both record id and storage key;
	// uploaded files land flat in the store as "<uuid>.pdf".
	id := uuid.New().String()
	key := id + ".pdf"

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        in.Size,
		ContentType: "application/pdf",
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	doc := &model.PDFDocument{
		ID:          id,
		Title:       in.Title,
		ExamType:    in.ExamType,
		Subject:     in.Subject,
		Batch:       in.Batch,
		Filename:    in.Filename,
		FilePath:    objInfo.Key,
		Description: in.Description,
		UploadDate:  time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *pdfService) List(ctx context.Context) ([]model.PDFDocument, error) {
	return s.repo.List(ctx)
}

func (s *pdfService) ListByExamType(ctx context.Context, examType string) ([]model.PDFDocument, error) {
	return s.repo.ListByExamType(ctx, examType)
}

// Download resolves the record, then opens the stored content for streaming.
// "never existed" and "record present but object lost" are indistinguishable
// to the caller; both are ErrNotFound.
func (s *pdfService) Download(ctx context.Context, id string) (io.ReadCloser, *model.PDFDocument, error) {
	if id == "" {
		return nil, nil, ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	rc, _, err := s.store.Get(ctx, doc.FilePath)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	return rc, doc, nil
}

// Delete removes the stored object first, then its record. The two steps are
// not transactional; a failure in between leaves the record for a retry.
func (s *pdfService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	// Storage backends treat an already-absent object as deleted, so a
	// dangling record from an earlier partial delete still clears here.
	if err := s.store.Delete(ctx, doc.FilePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return s.repo.Delete(ctx, id)
}

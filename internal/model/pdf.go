package model

import "time"

// PDFDocument represents one uploaded study-material PDF.
// This is a pure domain model with no database-specific dependencies or tags;
// it is shared across the HTTP, service, and storage layers.
//
// Filename is the name the file was uploaded under and is the name offered
// back on download. FilePath is the storage key the content lives at.
type PDFDocument struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	ExamType    string    `json:"exam_type"`
	Subject     string    `json:"subject"`
	Batch       string    `json:"batch"`
	Filename    string    `json:"filename"`
	FilePath    string    `json:"file_path"`
	Description string    `json:"description,omitempty"`
	UploadDate  time.Time `json:"upload_date"`
}

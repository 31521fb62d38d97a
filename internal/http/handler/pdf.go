package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"coachapi/internal/service"
)

// UploadPDF handles the admin multipart upload (field name: file, plus
// title/exam_type/subject/batch and optional description).
func UploadPDF(svc service.PDFService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		doc, err := svc.Upload(c.UserContext(), f, service.PDFUpload{
			Title:       c.FormValue("title"),
			ExamType:    c.FormValue("exam_type"),
			Subject:     c.FormValue("subject"),
			Batch:       c.FormValue("batch"),
			Description: c.FormValue("description"),
			Filename:    fh.Filename,
			Size:        fh.Size,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(doc)
	}
}

// ListPDFs returns all PDF records, newest upload first.
func ListPDFs(svc service.PDFService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(docs)
	}
}

// ListPDFsByExam returns PDF records filtered by exact exam type.
func ListPDFsByExam(svc service.PDFService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		examType := c.Params("examType")
		// Path params arrive percent-encoded; exam types contain spaces.
		if decoded, err := url.PathUnescape(examType); err == nil {
			examType = decoded
		}
		docs, err := svc.ListByExamType(c.UserContext(), examType)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(docs)
	}
}

// DownloadPDF streams the stored content with the original filename and a
// PDF content type. A missing record and a missing backing file both yield
// the same 404.
func DownloadPDF(svc service.PDFService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rc, doc, err := svc.Download(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		// fasthttp closes the stream reader when the response is done.
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+doc.Filename+`"`)
		return c.SendStream(rc)
	}
}

// DeletePDF removes the stored file (best effort) and the metadata record.
func DeletePDF(svc service.PDFService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "PDF deleted successfully"})
	}
}

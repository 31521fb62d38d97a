package handler

import (
	"database/sql"
	_ "embed"

	"github.com/gofiber/fiber/v2"

	"coachapi/internal/service"
)

//go:embed openapi.yaml
var openapiSpec []byte

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// All business routes live under the /api prefix; admin is the guard
// middleware applied per protected route. Handlers stay minimal and free
// of business logic.
func RegisterRoutes(
	app *fiber.App,
	db *sql.DB,
	pdfSvc service.PDFService,
	contactSvc service.ContactService,
	schedSvc service.ScheduleService,
	admin fiber.Handler,
) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.Send(openapiSpec)
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Health endpoint checks DB connectivity; healthz is a bare liveness probe.
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")
	api.Get("/", Root())

	// PDF study material
	api.Post("/admin/pdfs", admin, UploadPDF(pdfSvc))
	api.Get("/pdfs", ListPDFs(pdfSvc))
	api.Get("/pdfs/exam/:examType", ListPDFsByExam(pdfSvc))
	api.Get("/pdfs/download/:id", DownloadPDF(pdfSvc))
	api.Delete("/admin/pdfs/:id", admin, DeletePDF(pdfSvc))

	// Contact form
	api.Post("/contact", SubmitContact(contactSvc))
	api.Get("/admin/contacts", admin, ListContacts(contactSvc))

	// Class schedule board
	api.Post("/admin/schedule", admin, CreateSchedule(schedSvc))
	api.Get("/schedule", ListSchedules(schedSvc))
	api.Delete("/admin/schedule/:id", admin, DeleteSchedule(schedSvc))
}

package handler

import (
	"github.com/gofiber/fiber/v2"

	"docvault/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Handlers
// stay thin; all document logic lives in the service.
func RegisterRoutes(app *fiber.App, docSvc service.DocumentService) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
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

	app.Get("/healthz", LivenessProbe())

	app.Post("/orgs/:org_id/documents", UploadDocument(docSvc))
	app.Get("/orgs/:org_id/documents/:file_name/link", IssueLink(docSvc))
	app.Delete("/orgs/:org_id/documents/:file_name", DeleteDocument(docSvc))
}

// LivenessProbe is a simple liveness check.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// UploadDocument accepts a multipart upload (field name: file) and stores it
// under the organization's key prefix.
func UploadDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orgID := c.Params("org_id")

		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		doc, err := docSvc.UploadStream(c.UserContext(), orgID, fh.Filename, f, fh.Size, ct)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// IssueLink returns a time-limited signed download URL for an existing
// document.
func IssueLink(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orgID := c.Params("org_id")
		fileName := c.Params("file_name")

		link, err := docSvc.SignedLink(c.UserContext(), orgID, fileName)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(link)
	}
}

// DeleteDocument removes a stored document.
func DeleteDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orgID := c.Params("org_id")
		fileName := c.Params("file_name")

		if err := docSvc.Delete(c.UserContext(), orgID, fileName); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

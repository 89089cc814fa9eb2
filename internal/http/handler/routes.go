package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"docshelf/internal/service"
)

// RegisterRoutes attaches the HTTP routes to the provided Fiber app.
// Handlers stay thin: decode, validate, call the injected service, shape the
// envelope.
func RegisterRoutes(app *fiber.App, db *sql.DB, docSvc service.DocumentService, folderSvc service.FolderService) {
	app.Get("/", APIInfo())
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")

	documents := api.Group("/documents")
	documents.Get("/", ListDocuments(docSvc))
	documents.Post("/", CreateDocument(docSvc))
	documents.Get("/:id", GetDocument(docSvc))
	documents.Delete("/:id", DeleteDocument(docSvc))

	folders := api.Group("/folders")
	folders.Get("/", ListFolders(folderSvc))
	folders.Post("/", CreateFolder(folderSvc))
	folders.Get("/:id", GetFolderDocuments(docSvc))
	folders.Delete("/:id", DeleteFolder(folderSvc))
}

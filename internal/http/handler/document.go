package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"docshelf/internal/model"
	"docshelf/internal/service"
	"docshelf/internal/validation"
)

// ListDocuments lists documents. A search query takes priority over a folder
// filter, which takes priority over the unfiltered listing; exactly one of
// the three is applied per request.
//
// @Summary List documents
// @Param search query string false "case-insensitive name substring"
// @Param folderId query string false "restrict to one folder"
// @Success 200 {object} Response
// @Router /api/documents [get]
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var (
			docs []model.Document
			err  error
		)
		switch {
		case c.Query("search") != "":
			docs, err = svc.Search(c.UserContext(), c.Query("search"))
		case c.Query("folderId") != "":
			docs, err = svc.ListByFolder(c.UserContext(), c.Query("folderId"))
		default:
			docs, err = svc.List(c.UserContext())
		}
		if err != nil {
			return err
		}
		return writeData(c, fiber.StatusOK, docs)
	}
}

// GetDocument fetches one document by ID.
//
// @Summary Get a document
// @Param id path string true "document id"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/documents/{id} [get]
func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			if errors.Is(err, service.ErrDocumentNotFound) {
				return writeError(c, fiber.StatusNotFound, "Document not found")
			}
			return err
		}
		return writeData(c, fiber.StatusOK, doc)
	}
}

// CreateDocument validates the request body and creates a document.
//
// @Summary Create a document
// @Param request body model.CreateDocumentRequest true "document to create"
// @Success 201 {object} Response
// @Failure 400 {object} Response
// @Router /api/documents [post]
func CreateDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.CreateDocumentRequest
		if err := c.BodyParser(&req); err != nil {
			return writeValidationError(c, "Invalid request body")
		}
		if verr := validation.CreateDocument(&req); verr != nil {
			return writeValidationError(c, verr.Message)
		}

		doc, err := svc.Create(c.UserContext(), &req)
		if err != nil {
			return err
		}
		return writeCreated(c, doc, "Document created successfully")
	}
}

// DeleteDocument removes a document by ID. Deleting an already-deleted ID
// returns 404, so the operation is idempotent at the boundary.
//
// @Summary Delete a document
// @Param id path string true "document id"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/documents/{id} [delete]
func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			if errors.Is(err, service.ErrDocumentNotFound) {
				return writeError(c, fiber.StatusNotFound, "Document not found")
			}
			return err
		}
		return writeMessage(c, "Document deleted successfully")
	}
}

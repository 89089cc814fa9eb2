package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"docshelf/internal/model"
	"docshelf/internal/service"
	"docshelf/internal/validation"
)

// ListFolders lists folders, optionally filtered by a search query. Each
// folder carries its live document count.
//
// @Summary List folders
// @Param search query string false "case-insensitive name substring"
// @Success 200 {object} Response
// @Router /api/folders [get]
func ListFolders(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var (
			folders []model.Folder
			err     error
		)
		if q := c.Query("search"); q != "" {
			folders, err = svc.Search(c.UserContext(), q)
		} else {
			folders, err = svc.List(c.UserContext())
		}
		if err != nil {
			return err
		}
		return writeData(c, fiber.StatusOK, folders)
	}
}

// GetFolderDocuments lists the documents inside a folder. A folder with no
// documents, or an unknown folder ID, yields an empty list with 200.
//
// @Summary List documents in a folder
// @Param id path string true "folder id"
// @Success 200 {object} Response
// @Router /api/folders/{id} [get]
func GetFolderDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := svc.ListByFolder(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		return writeData(c, fiber.StatusOK, docs)
	}
}

// CreateFolder validates the request body and creates a folder.
//
// @Summary Create a folder
// @Param request body model.CreateFolderRequest true "folder to create"
// @Success 201 {object} Response
// @Failure 400 {object} Response
// @Router /api/folders [post]
func CreateFolder(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.CreateFolderRequest
		if err := c.BodyParser(&req); err != nil {
			return writeValidationError(c, "Invalid request body")
		}
		if verr := validation.CreateFolder(&req); verr != nil {
			return writeValidationError(c, verr.Message)
		}

		folder, err := svc.Create(c.UserContext(), &req)
		if err != nil {
			return err
		}
		return writeCreated(c, folder, "Folder created successfully")
	}
}

// DeleteFolder removes a folder by ID. Documents referencing the folder are
// not cascaded; they keep their folder reference.
//
// @Summary Delete a folder
// @Param id path string true "folder id"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/folders/{id} [delete]
func DeleteFolder(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			if errors.Is(err, service.ErrFolderNotFound) {
				return writeError(c, fiber.StatusNotFound, "Folder not found")
			}
			return err
		}
		return writeMessage(c, "Folder deleted successfully")
	}
}

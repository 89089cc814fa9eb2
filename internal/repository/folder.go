package repository

import (
	"context"

	"docshelf/internal/model"
)

// FolderRepository defines data access for folders. Every read computes the
// folder's document count with an aggregate join, so the count always
// reflects the live set of documents referencing the folder.
type FolderRepository interface {
	// Insert writes a new folder row. Timestamps are assigned by the database.
	Insert(ctx context.Context, folder *model.Folder) error

	// FindByID returns a folder by its ID, or sql.ErrNoRows when absent.
	FindByID(ctx context.Context, id string) (*model.Folder, error)

	// ListAll returns every folder, newest first.
	ListAll(ctx context.Context) ([]model.Folder, error)

	// Search returns folders whose name contains q, case-insensitively.
	Search(ctx context.Context, q string) ([]model.Folder, error)

	// Delete removes a folder by ID and reports whether a row was removed.
	// Documents referencing the folder are left untouched.
	Delete(ctx context.Context, id string) (bool, error)
}

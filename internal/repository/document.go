package repository

import (
	"context"

	"docshelf/internal/model"
)

// DocumentRepository defines data access for documents using SQL queries only.
// No business logic here — strictly persistence operations. All listing
// methods order rows by creation time, newest first, with no pagination.
type DocumentRepository interface {
	// Insert writes a new document row. Timestamps are assigned by the
	// database; callers re-read the row to obtain the persisted object.
	Insert(ctx context.Context, doc *model.Document) error

	// FindByID returns a document by its ID, or sql.ErrNoRows when absent.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// ListAll returns every document.
	ListAll(ctx context.Context) ([]model.Document, error)

	// ListByFolder returns the documents whose folder reference equals folderID.
	ListByFolder(ctx context.Context, folderID string) ([]model.Document, error)

	// Search returns documents whose name contains q, case-insensitively.
	Search(ctx context.Context, q string) ([]model.Document, error)

	// Delete removes a document by ID. It reports whether a row was actually
	// removed; deleting an absent ID is not an error.
	Delete(ctx context.Context, id string) (bool, error)
}

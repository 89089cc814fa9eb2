package postgres

import (
	"context"
	"database/sql"

	"docshelf/internal/model"
	"docshelf/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

const documentColumns = `id, name, type, size, folder_id, created_at, updated_at`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanDocument maps a documents row onto the domain model. The size and
// folder_id columns are nullable; a NULL folder_id means the root.
func scanDocument(s rowScanner) (*model.Document, error) {
	var (
		d        model.Document
		size     sql.NullInt64
		folderID sql.NullString
	)
	if err := s.Scan(&d.ID, &d.Name, &d.Type, &size, &folderID, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	d.Size = size.Int64
	if folderID.Valid {
		d.FolderID = &folderID.String
	}
	return &d, nil
}

// Insert writes a new document row. created_at and updated_at are assigned
// by the database defaults.
func (r *DocumentPostgres) Insert(ctx context.Context, doc *model.Document) error {
	const q = `
		INSERT INTO documents (id, name, type, size, folder_id)
		VALUES ($1, $2, $3, $4, $5)
	`
	var folderID any
	if doc.FolderID != nil {
		folderID = *doc.FolderID
	}
	_, err := r.db.ExecContext(ctx, q, doc.ID, doc.Name, doc.Type, doc.Size, folderID)
	return err
}

// FindByID fetches a single document by its ID.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.Document, error) {
	const q = `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE id = $1
	`
	return scanDocument(r.db.QueryRowContext(ctx, q, id))
}

// ListAll returns every document, newest first.
func (r *DocumentPostgres) ListAll(ctx context.Context) ([]model.Document, error) {
	const q = `
		SELECT ` + documentColumns + `
		FROM documents
		ORDER BY created_at DESC
	`
	return r.queryDocuments(ctx, q)
}

// ListByFolder returns documents whose folder_id equals folderID, newest first.
func (r *DocumentPostgres) ListByFolder(ctx context.Context, folderID string) ([]model.Document, error) {
	const q = `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE folder_id = $1
		ORDER BY created_at DESC
	`
	return r.queryDocuments(ctx, q, folderID)
}

// Search matches the document name against q as a case-insensitive substring.
func (r *DocumentPostgres) Search(ctx context.Context, q string) ([]model.Document, error) {
	const query = `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC
	`
	return r.queryDocuments(ctx, query, q)
}

// Delete removes a document by ID and reports whether a row was removed.
func (r *DocumentPostgres) Delete(ctx context.Context, id string) (bool, error) {
	const q = `DELETE FROM documents WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *DocumentPostgres) queryDocuments(ctx context.Context, q string, args ...any) ([]model.Document, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

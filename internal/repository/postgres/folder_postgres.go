package postgres

import (
	"context"
	"database/sql"

	"docshelf/internal/model"
	"docshelf/internal/repository"
)

// FolderPostgres is a PostgreSQL implementation of repository.FolderRepository.
// Reads join against documents so document_count is always the live count;
// folders with no documents report 0 via the LEFT JOIN.
type FolderPostgres struct {
	db *sql.DB
}

// NewFolderPostgres creates a new FolderPostgres repository.
func NewFolderPostgres(db *sql.DB) *FolderPostgres {
	return &FolderPostgres{db: db}
}

var _ repository.FolderRepository = (*FolderPostgres)(nil)

const folderSelect = `
		SELECT f.id, f.name, f.created_at, f.updated_at, COUNT(d.id) AS document_count
		FROM folders f
		LEFT JOIN documents d ON d.folder_id = f.id
`

func scanFolder(s rowScanner) (*model.Folder, error) {
	var f model.Folder
	if err := s.Scan(&f.ID, &f.Name, &f.CreatedAt, &f.UpdatedAt, &f.DocumentCount); err != nil {
		return nil, err
	}
	return &f, nil
}

// Insert writes a new folder row. Timestamps come from the database defaults.
func (r *FolderPostgres) Insert(ctx context.Context, folder *model.Folder) error {
	const q = `INSERT INTO folders (id, name) VALUES ($1, $2)`
	_, err := r.db.ExecContext(ctx, q, folder.ID, folder.Name)
	return err
}

// FindByID fetches a single folder with its live document count.
func (r *FolderPostgres) FindByID(ctx context.Context, id string) (*model.Folder, error) {
	const q = folderSelect + `
		WHERE f.id = $1
		GROUP BY f.id
	`
	return scanFolder(r.db.QueryRowContext(ctx, q, id))
}

// ListAll returns every folder with document counts, newest first.
func (r *FolderPostgres) ListAll(ctx context.Context) ([]model.Folder, error) {
	const q = folderSelect + `
		GROUP BY f.id
		ORDER BY f.created_at DESC
	`
	return r.queryFolders(ctx, q)
}

// Search matches the folder name against q as a case-insensitive substring.
func (r *FolderPostgres) Search(ctx context.Context, q string) ([]model.Folder, error) {
	const query = folderSelect + `
		WHERE f.name ILIKE '%' || $1 || '%'
		GROUP BY f.id
		ORDER BY f.created_at DESC
	`
	return r.queryFolders(ctx, query, q)
}

// Delete removes a folder by ID and reports whether a row was removed.
// Documents referencing the folder are intentionally left in place.
func (r *FolderPostgres) Delete(ctx context.Context, id string) (bool, error) {
	const q = `DELETE FROM folders WHERE id = $1`
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

func (r *FolderPostgres) queryFolders(ctx context.Context, q string, args ...any) ([]model.Folder, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Folder, 0)
	for rows.Next() {
		f, err := scanFolder(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

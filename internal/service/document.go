package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"docshelf/internal/model"
	"docshelf/internal/repository"
)

// maxPlaceholderSize bounds the pseudo-random byte count assigned at
// creation. There is no upload path, so sizes are stand-ins for real file
// measurement; any move toward production storage must replace this.
const maxPlaceholderSize = 5_000_000

// DocumentService defines the use cases for handling documents.
// Inputs are assumed validated upstream; the service performs none itself.
type DocumentService interface {
	// List returns all documents, newest first.
	List(ctx context.Context) ([]model.Document, error)

	// Get returns a single document by its ID.
	Get(ctx context.Context, id string) (*model.Document, error)

	// ListByFolder returns the documents inside the given folder.
	ListByFolder(ctx context.Context, folderID string) ([]model.Document, error)

	// Search returns documents whose name contains q, case-insensitively.
	Search(ctx context.Context, q string) ([]model.Document, error)

	// Create generates an ID and placeholder size, inserts the row, then
	// re-reads it so the returned object carries the server-assigned
	// timestamps. A failed re-read is an internal consistency error.
	Create(ctx context.Context, req *model.CreateDocumentRequest) (*model.Document, error)

	// Delete removes a document by ID. Deleting an absent ID yields
	// ErrDocumentNotFound, never a hard failure.
	Delete(ctx context.Context, id string) error
}

type documentService struct {
	repo repository.DocumentRepository
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(repo repository.DocumentRepository) DocumentService {
	return &documentService{repo: repo}
}

func (s *documentService) List(ctx context.Context) ([]model.Document, error) {
	return s.repo.ListAll(ctx)
}

func (s *documentService) Get(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *documentService) ListByFolder(ctx context.Context, folderID string) ([]model.Document, error) {
	return s.repo.ListByFolder(ctx, folderID)
}

func (s *documentService) Search(ctx context.Context, q string) ([]model.Document, error) {
	return s.repo.Search(ctx, q)
}

func (s *documentService) Create(ctx context.Context, req *model.CreateDocumentRequest) (*model.Document, error) {
	doc := &model.Document{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Type:     req.Type,
		Size:     rand.Int64N(maxPlaceholderSize),
		FolderID: req.FolderID,
	}
	if err := s.repo.Insert(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert document: %w", err)
	}

	// Re-read so the caller gets the database-assigned timestamps. The row
	// was just inserted, so absence means the store is inconsistent; the
	// operation fails and is not retried.
	stored, err := s.repo.FindByID(ctx, doc.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	return stored, nil
}

func (s *documentService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDocumentNotFound
	}
	return nil
}

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"docshelf/internal/model"
	"docshelf/internal/repository"
)

// FolderService defines the use cases for handling folders. Document counts
// on returned folders are always computed live by the query layer.
type FolderService interface {
	// List returns all folders, newest first.
	List(ctx context.Context) ([]model.Folder, error)

	// Get returns a single folder by its ID.
	Get(ctx context.Context, id string) (*model.Folder, error)

	// Search returns folders whose name contains q, case-insensitively.
	Search(ctx context.Context, q string) ([]model.Folder, error)

	// Create generates an ID, inserts the row, then re-reads it for the
	// server-assigned timestamps and the (zero) document count.
	Create(ctx context.Context, req *model.CreateFolderRequest) (*model.Folder, error)

	// Delete removes a folder by ID. Documents referencing it are left in
	// place; there is no cascade.
	Delete(ctx context.Context, id string) error
}

type folderService struct {
	repo repository.FolderRepository
}

// NewFolderService constructs a new FolderService.
func NewFolderService(repo repository.FolderRepository) FolderService {
	return &folderService{repo: repo}
}

func (s *folderService) List(ctx context.Context) ([]model.Folder, error) {
	return s.repo.ListAll(ctx)
}

func (s *folderService) Get(ctx context.Context, id string) (*model.Folder, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	folder, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFolderNotFound
		}
		return nil, err
	}
	return folder, nil
}

func (s *folderService) Search(ctx context.Context, q string) ([]model.Folder, error) {
	return s.repo.Search(ctx, q)
}

func (s *folderService) Create(ctx context.Context, req *model.CreateFolderRequest) (*model.Folder, error) {
	folder := &model.Folder{
		ID:   uuid.NewString(),
		Name: req.Name,
	}
	if err := s.repo.Insert(ctx, folder); err != nil {
		return nil, fmt.Errorf("insert folder: %w", err)
	}

	stored, err := s.repo.FindByID(ctx, folder.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}
	return stored, nil
}

func (s *folderService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrFolderNotFound
	}
	return nil
}

package service

import "errors"

var (
	ErrIDRequired       = errors.New("id is required")
	ErrDocumentNotFound = errors.New("document not found")
	ErrFolderNotFound   = errors.New("folder not found")
)

// Package validation holds the field-level rules applied to create requests
// before any persistence call. Rules are declarative: an ordered list of
// predicate + message pairs per entity, evaluated in order and
// short-circuiting on the first failure. Any client-side form layer should
// mirror these same rules rather than duplicate them ad hoc.
package validation

import (
	"strings"
	"unicode/utf8"

	"docshelf/internal/model"
)

const (
	// maxNameLength is the longest accepted name, counted in characters.
	maxNameLength = 255

	// invalidNameChars are never allowed in document or folder names.
	invalidNameChars = `<>:"/\|?*`
)

// Rule pairs a predicate with the message reported when the predicate fails.
type Rule[T any] struct {
	Valid   func(T) bool
	Message string
}

// Error is a validation failure carrying the first failing rule's message.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

// apply evaluates rules in order and returns the first failure, or nil.
func apply[T any](v T, rules []Rule[T]) *Error {
	for _, r := range rules {
		if !r.Valid(v) {
			return &Error{Message: r.Message}
		}
	}
	return nil
}

// nameRules builds the shared name constraints with entity-specific messages.
func nameRules(entity string) []Rule[string] {
	return []Rule[string]{
		{
			Valid:   func(name string) bool { return name != "" },
			Message: entity + " name is required",
		},
		{
			Valid:   func(name string) bool { return utf8.RuneCountInString(name) <= maxNameLength },
			Message: entity + " name must be less than 255 characters",
		},
		{
			Valid:   func(name string) bool { return !strings.ContainsAny(name, invalidNameChars) },
			Message: entity + " name contains invalid characters",
		},
	}
}

var (
	documentNameRules = nameRules("Document")
	folderNameRules   = nameRules("Folder")

	documentTypeRules = []Rule[model.DocumentType]{
		{
			Valid:   model.DocumentType.Valid,
			Message: "Invalid document type",
		},
	}
)

// CreateDocument normalizes and validates a document create request.
// The name is trimmed in place; an empty folderId collapses to nil (root).
// The referenced folder is deliberately not checked for existence.
func CreateDocument(req *model.CreateDocumentRequest) *Error {
	req.Name = strings.TrimSpace(req.Name)
	if req.FolderID != nil && strings.TrimSpace(*req.FolderID) == "" {
		req.FolderID = nil
	}
	if err := apply(req.Name, documentNameRules); err != nil {
		return err
	}
	return apply(req.Type, documentTypeRules)
}

// CreateFolder normalizes and validates a folder create request.
func CreateFolder(req *model.CreateFolderRequest) *Error {
	req.Name = strings.TrimSpace(req.Name)
	return apply(req.Name, folderNameRules)
}

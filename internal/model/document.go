package model

import "time"

// DocumentType classifies a document's format. It is a closed enumeration
// used for display and validation only; storage behavior does not depend on it.
type DocumentType string

const (
	TypePDF   DocumentType = "PDF"
	TypeDOCX  DocumentType = "DOCX"
	TypeTXT   DocumentType = "TXT"
	TypeXLSX  DocumentType = "XLSX"
	TypePPTX  DocumentType = "PPTX"
	TypeIMAGE DocumentType = "IMAGE"
	TypeOTHER DocumentType = "OTHER"
)

// DocumentTypes lists every valid DocumentType. Membership checks are
// case-sensitive exact matches.
var DocumentTypes = []DocumentType{
	TypePDF, TypeDOCX, TypeTXT, TypeXLSX, TypePPTX, TypeIMAGE, TypeOTHER,
}

// Valid reports whether t is one of the known document types.
func (t DocumentType) Valid() bool {
	for _, dt := range DocumentTypes {
		if t == dt {
			return true
		}
	}
	return false
}

// Document represents a stored document in the system.
// This is a pure domain model with no database-specific dependencies or tags.
// FolderID is nil for documents at the root (no folder). Size is currently a
// placeholder assigned at creation, not derived from uploaded bytes.
type Document struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Type      DocumentType `json:"type"`
	Size      int64        `json:"size"`
	FolderID  *string      `json:"folderId"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// CreateDocumentRequest is the payload accepted when creating a document.
// FolderID is optional; nil means the document lives at the root.
type CreateDocumentRequest struct {
	Name     string       `json:"name"`
	Type     DocumentType `json:"type"`
	FolderID *string      `json:"folderId"`
}

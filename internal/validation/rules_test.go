package validation

import (
	"strings"
	"testing"

	"docshelf/internal/model"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestCreateDocument(t *testing.T) {
	tests := []struct {
		name    string
		req     model.CreateDocumentRequest
		wantMsg string
	}{
		{
			name: "valid request",
			req:  model.CreateDocumentRequest{Name: "Q1 Report.pdf", Type: model.TypePDF},
		},
		{
			name: "name with parentheses is accepted",
			req:  model.CreateDocumentRequest{Name: "Report (Final).pdf", Type: model.TypePDF},
		},
		{
			name:    "empty name",
			req:     model.CreateDocumentRequest{Name: "", Type: model.TypePDF},
			wantMsg: "Document name is required",
		},
		{
			name:    "whitespace-only name",
			req:     model.CreateDocumentRequest{Name: "   ", Type: model.TypePDF},
			wantMsg: "Document name is required",
		},
		{
			name: "255 character name is accepted",
			req:  model.CreateDocumentRequest{Name: strings.Repeat("a", 255), Type: model.TypeTXT},
		},
		{
			name:    "256 character name is rejected",
			req:     model.CreateDocumentRequest{Name: strings.Repeat("a", 256), Type: model.TypeTXT},
			wantMsg: "Document name must be less than 255 characters",
		},
		{
			name:    "name with slash",
			req:     model.CreateDocumentRequest{Name: "reports/q1.pdf", Type: model.TypePDF},
			wantMsg: "Document name contains invalid characters",
		},
		{
			name:    "name with angle bracket",
			req:     model.CreateDocumentRequest{Name: "<script>.txt", Type: model.TypeTXT},
			wantMsg: "Document name contains invalid characters",
		},
		{
			name:    "unknown type",
			req:     model.CreateDocumentRequest{Name: "notes.txt", Type: "EXE"},
			wantMsg: "Invalid document type",
		},
		{
			name:    "lowercase type is rejected",
			req:     model.CreateDocumentRequest{Name: "notes.txt", Type: "pdf"},
			wantMsg: "Invalid document type",
		},
		{
			name:    "name checked before type",
			req:     model.CreateDocumentRequest{Name: "", Type: "EXE"},
			wantMsg: "Document name is required",
		},
		{
			name: "optional folder reference",
			req:  model.CreateDocumentRequest{Name: "notes.txt", Type: model.TypeTXT, FolderID: strPtr("folder-1")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CreateDocument(&tt.req)
			if tt.wantMsg == "" {
				assert.Nil(t, err)
			} else {
				assert.NotNil(t, err)
				assert.Equal(t, tt.wantMsg, err.Message)
			}
		})
	}
}

func TestCreateDocumentNormalizes(t *testing.T) {
	req := model.CreateDocumentRequest{Name: "  notes.txt  ", Type: model.TypeTXT, FolderID: strPtr("")}

	err := CreateDocument(&req)

	assert.Nil(t, err)
	assert.Equal(t, "notes.txt", req.Name, "name should be trimmed")
	assert.Nil(t, req.FolderID, "empty folderId should collapse to root")
}

func TestCreateFolder(t *testing.T) {
	tests := []struct {
		name    string
		req     model.CreateFolderRequest
		wantMsg string
	}{
		{
			name: "valid folder",
			req:  model.CreateFolderRequest{Name: "Contracts"},
		},
		{
			name:    "empty name",
			req:     model.CreateFolderRequest{Name: ""},
			wantMsg: "Folder name is required",
		},
		{
			name:    "256 character name is rejected",
			req:     model.CreateFolderRequest{Name: strings.Repeat("x", 256)},
			wantMsg: "Folder name must be less than 255 characters",
		},
		{
			name:    "name with pipe",
			req:     model.CreateFolderRequest{Name: "a|b"},
			wantMsg: "Folder name contains invalid characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CreateFolder(&tt.req)
			if tt.wantMsg == "" {
				assert.Nil(t, err)
			} else {
				assert.NotNil(t, err)
				assert.Equal(t, tt.wantMsg, err.Message)
			}
		})
	}
}

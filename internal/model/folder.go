package model

import "time"

// Folder groups documents. DocumentCount is derived at read time by counting
// documents that reference the folder; it is never stored or cached.
type Folder struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	DocumentCount int       `json:"documentCount"`
}

// CreateFolderRequest is the payload accepted when creating a folder.
type CreateFolderRequest struct {
	Name string `json:"name"`
}

package models

import "time"

type DocumentType string

const (
	DocumentNote  DocumentType = "NOTE"
	DocumentFile  DocumentType = "FILE"
	DocumentImage DocumentType = "IMAGE"
)

// Document is a server-owned record cached per screen visit. Content is set
// for notes only; the file fields are set for uploaded files and images.
type Document struct {
	ID           int64        `json:"id"`
	Title        string       `json:"title"`
	DocumentType DocumentType `json:"documentType"`
	Content      string       `json:"content,omitempty"`
	FileName     string       `json:"fileName,omitempty"`
	FilePath     string       `json:"filePath,omitempty"`
	FileSize     int64        `json:"fileSize,omitempty"`
	MimeType     string       `json:"mimeType,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

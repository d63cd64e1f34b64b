package models

import "time"

// UploadSlot is a one-time destination for image bytes.
type UploadSlot struct {
	UploadURL string `json:"uploadUrl"`
}

// StorageReference identifies stored image bytes. It is returned by the
// upload endpoint and later linked to a contact.
type StorageReference struct {
	StorageID string `json:"storageId"`
}

// Blob is the metadata of one stored image.
type Blob struct {
	StorageID   string
	ContentType string
	Size        int64
	Checksum    string
	CreatedAt   time.Time
}

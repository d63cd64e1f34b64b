// Package service holds the server-side business logic of the contact
// store: contact CRUD, image upload slots and build information.
package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-contacts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=ContactServiceWrapper

// ContactService manages contact records. Images are returned as directly
// fetchable URLs.
type ContactService interface {
	ListContacts(ctx context.Context) ([]models.Contact, error)
	GetContact(ctx context.Context, id string) (models.Contact, error)

	// CreateContact assigns a new identifier and returns it. An empty
	// LastContact is set to today.
	CreateContact(ctx context.Context, fields models.ContactFields) (string, error)
	UpdateContact(ctx context.Context, id string, patch models.ContactPatch) error
	DeleteContact(ctx context.Context, id string) error

	// LinkImage fails with [ErrBlobNotFound] unless ref names a stored image.
	LinkImage(ctx context.Context, id string, ref models.StorageReference) error

	// ExportContacts writes every contact as an XLSX workbook to w.
	ExportContacts(ctx context.Context, w io.Writer) error
}

// ContactServiceWrapper defines middleware composition for ContactService.
// Implementations wrap an existing ContactService to add behavior such as
// validating.
type ContactServiceWrapper interface {
	Wrap(ContactService) ContactService
}

// MediaService issues one-time upload slots and stores the uploaded images.
type MediaService interface {
	CreateUploadSlot(ctx context.Context) (models.UploadSlot, error)

	// StoreUpload consumes the slot named by token and stores body under
	// the slot ID.
	StoreUpload(ctx context.Context, token, contentType string, body io.Reader) (models.StorageReference, error)

	GetBlob(ctx context.Context, storageID string) (models.Blob, error)
	OpenBlob(ctx context.Context, storageID string) (models.Blob, io.ReadSeekCloser, error)

	// ResolveURL returns the public URL the stored image is served from.
	ResolveURL(storageID string) string
}

// AppInfoService reports the running server's version and uptime.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetServerInfo(ctx context.Context) models.ServerInfo
}

// Package store persists contacts and uploaded images.
//
// Contacts and image metadata live in a relational database (PostgreSQL via
// pgx, or SQLite for local setups); image bytes live on disk. SQL is built
// with squirrel so both dialects share one set of builders.
package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-contacts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ContactRepository stores contact rows. Image holds the storage ID of the
// linked blob, not a URL.
//
// All methods retry transient driver errors. Lookups and writes on a missing
// row fail with [ErrContactNotFound].
type ContactRepository interface {
	// ListContacts returns every row ordered by creation time.
	ListContacts(ctx context.Context) ([]models.Contact, error)
	GetContact(ctx context.Context, id string) (models.Contact, error)

	// CreateContact inserts contact as given; the caller assigns the ID.
	// A duplicate ID yields [ErrContactAlreadyExists].
	CreateContact(ctx context.Context, contact models.Contact) error

	// UpdateContact sets only the non-nil fields of patch.
	UpdateContact(ctx context.Context, id string, patch models.ContactPatch) error
	DeleteContact(ctx context.Context, id string) error
	SetContactImage(ctx context.Context, id, storageID string) error
}

// BlobRepository stores metadata of uploaded images.
type BlobRepository interface {
	SaveBlob(ctx context.Context, blob models.Blob) error
	GetBlob(ctx context.Context, storageID string) (models.Blob, error)
}

// BlobFileStorage stores image bytes. Each storage ID can be written once.
type BlobFileStorage interface {
	// Write copies at most limit bytes from r into a new blob and returns
	// its size and checksum.
	Write(ctx context.Context, storageID string, r io.Reader, limit int64) (size int64, checksum string, err error)

	// Open returns the stored bytes, or [ErrBlobNotFound]. The caller
	// closes the reader.
	Open(ctx context.Context, storageID string) (io.ReadSeekCloser, error)

	// Remove deletes the bytes. Removing a missing blob succeeds.
	Remove(ctx context.Context, storageID string) error
}

// ErrorClassificator tells retryable driver errors from permanent ones.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}

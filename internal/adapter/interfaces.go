// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the contact store contract.
//
// [ContactStore] decouples the client form session and terminal UI from the
// transport. The package ships an HTTP/REST implementation
// ([NewHTTPContactStore]) built on resty.
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel values in
// errors.go so that callers can use [errors.Is] regardless of transport
// (e.g. [ErrNotFound] for 404, [ErrPayloadTooLarge] for 413).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-contacts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/contact_store_mock.go -package=mock

// ContactStore is the authoritative remote persistence for contacts and
// their images.
//
// Errors are the sentinels of this package ([ErrNotFound],
// [ErrBadRequest], [ErrConflict], [ErrPayloadTooLarge] and the transport
// errors), wrapped with request context.
//
// An image is attached in three steps, each after the previous succeeded:
//
//	slot, err := store.RequestUploadSlot(ctx)
//	ref, err := store.SendBytes(ctx, slot, data, "image/png")
//	err = store.LinkImage(ctx, id, ref)
type ContactStore interface {
	// List returns every contact; image references are resolved to
	// directly fetchable URLs or left nil.
	List(ctx context.Context) ([]models.Contact, error)

	// Get returns one contact by identifier.
	Get(ctx context.Context, id string) (models.Contact, error)

	// Create persists a new contact and returns its identifier.
	Create(ctx context.Context, fields models.ContactFields) (string, error)

	// Update applies a partial update. Fails with ErrNotFound when the
	// contact does not exist.
	Update(ctx context.Context, id string, patch models.ContactPatch) error

	// Delete removes a contact. A second delete of the same identifier
	// fails with ErrNotFound.
	Delete(ctx context.Context, id string) error

	// RequestUploadSlot returns a one-time destination for image bytes.
	RequestUploadSlot(ctx context.Context) (models.UploadSlot, error)

	// SendBytes uploads data to slot and returns the storage reference.
	SendBytes(ctx context.Context, slot models.UploadSlot, data []byte, contentType string) (models.StorageReference, error)

	// LinkImage attaches or replaces the image of a contact.
	LinkImage(ctx context.Context, id string, ref models.StorageReference) error
}

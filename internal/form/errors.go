package form

import (
	"errors"
	"strings"
)

// Submission and draft errors. Store failures are mapped onto these by
// mapStoreError, so callers never need to know the transport.
var (
	ErrValidation            = errors.New("contact is invalid")
	ErrNotFound              = errors.New("contact no longer exists")
	ErrPayloadTooLarge       = errors.New("image exceeds 5 MiB")
	ErrEmptyImage            = errors.New("image is empty")
	ErrUploadFailure         = errors.New("image upload failed")
	ErrLinkFailure           = errors.New("image link failed")
	ErrTransientStoreFailure = errors.New("store request failed")

	ErrSubmitInProgress = errors.New("submission already in progress")
	ErrSessionClosed    = errors.New("session is closed")
	ErrUnknownField     = errors.New("unknown field")
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD format")
)

// ValidationError carries the per-field flags of a failed validation.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + strings.Join(e.Fields.Names(), ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contacts/internal/store"
)

// mapStoreError translates repository errors into service errors. Unknown
// errors pass through unchanged.
func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrContactNotFound):
		return ErrContactNotFound
	case errors.Is(err, store.ErrBlobNotFound):
		return ErrBlobNotFound
	case errors.Is(err, store.ErrNothingToUpdate):
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	case errors.Is(err, store.ErrContactAlreadyExists):
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	case errors.Is(err, store.ErrBlobAlreadyExists):
		return ErrSlotAlreadyUsed
	case errors.Is(err, store.ErrBlobTooLarge):
		return ErrPayloadTooLarge
	case errors.Is(err, store.ErrInvalidStorageID):
		return ErrBlobNotFound
	}
	return err
}

package form

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contacts/internal/adapter"
)

// mapStoreError translates a failed create/update into the session's error
// taxonomy. The adapter error stays in the chain for logging.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %w", ErrValidation, err)
	default:
		return fmt.Errorf("%w: %w", ErrTransientStoreFailure, err)
	}
}

// mapImageError tags a failure of the trailing image steps with stage
// (ErrUploadFailure or ErrLinkFailure).
func mapImageError(stage, err error) error {
	if errors.Is(err, adapter.ErrPayloadTooLarge) {
		return fmt.Errorf("%w: %w: %w", stage, ErrPayloadTooLarge, err)
	}
	if errors.Is(err, adapter.ErrNotFound) {
		return fmt.Errorf("%w: %w: %w", stage, ErrNotFound, err)
	}
	return fmt.Errorf("%w: %w", stage, err)
}

package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/internal/validators"
	"github.com/MKhiriev/go-contacts/models"
)

// ContactValidationService rejects invalid input before it reaches the
// wrapped [ContactService].
type ContactValidationService struct {
	inner     ContactService
	validator validators.Validator
}

// NewContactValidationService returns the wrapper that validates fields and
// patches before delegating.
//
// Example usage:
//
//	contacts := service.NewContactValidationService().Wrap(
//	    service.NewContactService(repo, media, log),
//	)
func NewContactValidationService() ContactServiceWrapper {
	return &ContactValidationService{
		validator: validators.NewContactValidator(),
	}
}

func (v *ContactValidationService) ListContacts(ctx context.Context) ([]models.Contact, error) {
	return v.inner.ListContacts(ctx)
}

func (v *ContactValidationService) GetContact(ctx context.Context, id string) (models.Contact, error) {
	if id == "" {
		return models.Contact{}, ErrContactNotFound
	}
	return v.inner.GetContact(ctx, id)
}

// CreateContact requires names and a valid email. The last-contact date is
// checked only when given; the inner service fills in today otherwise.
func (v *ContactValidationService) CreateContact(ctx context.Context, fields models.ContactFields) (string, error) {
	check := []string{
		validators.FieldFirstName,
		validators.FieldLastName,
		validators.FieldEmail,
		validators.FieldBirthday,
	}
	if fields.LastContact != "" {
		check = append(check, validators.FieldLastContact)
	}

	if err := v.validator.Validate(ctx, fields, check...); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateContact(ctx, fields)
}

func (v *ContactValidationService) UpdateContact(ctx context.Context, id string, patch models.ContactPatch) error {
	if id == "" {
		return ErrContactNotFound
	}
	if err := v.validator.Validate(ctx, patch); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateContact(ctx, id, patch)
}

func (v *ContactValidationService) DeleteContact(ctx context.Context, id string) error {
	if id == "" {
		return ErrContactNotFound
	}
	return v.inner.DeleteContact(ctx, id)
}

func (v *ContactValidationService) LinkImage(ctx context.Context, id string, ref models.StorageReference) error {
	if id == "" {
		return ErrContactNotFound
	}
	if !utils.IsUUID(ref.StorageID) {
		return fmt.Errorf("%w: storage id is not valid", ErrInvalidDataProvided)
	}

	return v.inner.LinkImage(ctx, id, ref)
}

func (v *ContactValidationService) ExportContacts(ctx context.Context, w io.Writer) error {
	return v.inner.ExportContacts(ctx, w)
}

func (v *ContactValidationService) Wrap(inner ContactService) ContactService {
	v.inner = inner
	return v
}

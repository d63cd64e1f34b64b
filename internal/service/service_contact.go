package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/store"
	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/models"
	"github.com/xuri/excelize/v2"
)

const exportSheetName = "Contacts"

var exportHeader = []any{
	"First Name", "Last Name", "Email", "Last Contact",
	"Phone", "Company", "Occupation", "Birthday", "Notes", "Image",
}

type contactService struct {
	contacts store.ContactRepository
	media    MediaService
	ids      utils.IDGenerator
	now      func() time.Time

	logger *logger.Logger
}

// NewContactService returns the [ContactService] backed by contacts.
// media resolves image references and checks that linked images exist.
func NewContactService(contacts store.ContactRepository, media MediaService, logger *logger.Logger) ContactService {
	return &contactService{
		contacts: contacts,
		media:    media,
		ids:      utils.NewUUIDGenerator(),
		now:      time.Now,
		logger:   logger,
	}
}

func (s *contactService) ListContacts(ctx context.Context) ([]models.Contact, error) {
	contacts, err := s.contacts.ListContacts(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}

	for i := range contacts {
		contacts[i] = s.resolveImage(contacts[i])
	}
	return contacts, nil
}

func (s *contactService) GetContact(ctx context.Context, id string) (models.Contact, error) {
	contact, err := s.contacts.GetContact(ctx, id)
	if err != nil {
		return models.Contact{}, mapStoreError(err)
	}
	return s.resolveImage(contact), nil
}

func (s *contactService) resolveImage(c models.Contact) models.Contact {
	if c.Image == nil {
		return c
	}
	url := s.media.ResolveURL(*c.Image)
	c.Image = &url
	return c
}

// CreateContact assigns a new ID and stores the contact. A missing
// last-contact date defaults to today.
func (s *contactService) CreateContact(ctx context.Context, fields models.ContactFields) (string, error) {
	log := logger.FromContext(ctx)

	if fields.LastContact == "" {
		fields.LastContact = s.now().Format(time.DateOnly)
	}

	contact := fields.Patch().Apply(models.Contact{ID: s.ids.Generate()})
	if err := s.contacts.CreateContact(ctx, contact); err != nil {
		log.Err(err).Str("func", "contactService.CreateContact").Msg("error creating contact")
		return "", mapStoreError(err)
	}

	log.Info().Str("func", "contactService.CreateContact").Str("contact_id", contact.ID).Msg("contact created")
	return contact.ID, nil
}

func (s *contactService) UpdateContact(ctx context.Context, id string, patch models.ContactPatch) error {
	if err := s.contacts.UpdateContact(ctx, id, patch); err != nil {
		return mapStoreError(err)
	}
	return nil
}

// DeleteContact removes the contact. Deleting it again yields
// [ErrContactNotFound].
func (s *contactService) DeleteContact(ctx context.Context, id string) error {
	if err := s.contacts.DeleteContact(ctx, id); err != nil {
		return mapStoreError(err)
	}
	return nil
}

// LinkImage attaches an uploaded image to the contact, replacing any
// previous one.
func (s *contactService) LinkImage(ctx context.Context, id string, ref models.StorageReference) error {
	if _, err := s.media.GetBlob(ctx, ref.StorageID); err != nil {
		return err
	}

	if err := s.contacts.SetContactImage(ctx, id, ref.StorageID); err != nil {
		return mapStoreError(err)
	}
	return nil
}

func (s *contactService) ExportContacts(ctx context.Context, w io.Writer) error {
	log := logger.FromContext(ctx)

	contacts, err := s.ListContacts(ctx)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err = f.SetSheetName("Sheet1", exportSheetName); err != nil {
		return fmt.Errorf("error naming export sheet: %w", err)
	}
	if err = f.SetSheetRow(exportSheetName, "A1", &exportHeader); err != nil {
		return fmt.Errorf("error writing export header: %w", err)
	}

	for i, c := range contacts {
		image := ""
		if c.Image != nil {
			image = *c.Image
		}
		row := []any{
			c.FirstName, c.LastName, c.Email, c.LastContact,
			c.Phone, c.Company, c.Occupation, c.Birthday, c.Notes, image,
		}

		cell, cellErr := excelize.CoordinatesToCellName(1, i+2)
		if cellErr != nil {
			return fmt.Errorf("error addressing export row: %w", cellErr)
		}
		if err = f.SetSheetRow(exportSheetName, cell, &row); err != nil {
			return fmt.Errorf("error writing export row: %w", err)
		}
	}

	if err = f.Write(w); err != nil {
		log.Err(err).Str("func", "contactService.ExportContacts").Msg("error writing workbook")
		return fmt.Errorf("error writing workbook: %w", err)
	}
	return nil
}

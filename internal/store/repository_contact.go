package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/models"
)

// contactRepository is the SQL implementation of [ContactRepository].
// Every method logs through the context-scoped logger.
type contactRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewContactRepository constructs a [ContactRepository] on db. Queries are
// built for the dialect db was opened with.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	return &contactRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (models.Contact, error) {
	var (
		c       models.Contact
		imageID sql.NullString
	)

	err := row.Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.LastContact,
		&c.Phone,
		&c.Company,
		&c.Occupation,
		&c.Birthday,
		&c.Notes,
		&imageID,
	)
	if err != nil {
		return models.Contact{}, err
	}

	if imageID.Valid && imageID.String != "" {
		c.Image = &imageID.String
	}
	return c, nil
}

// ListContacts returns every contact ordered by creation time. An empty
// table yields an empty, non-nil slice.
func (r *contactRepository) ListContacts(ctx context.Context) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListContactsQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "contactRepository.ListContacts").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var contacts []models.Contact
	err = r.withRetry(ctx, func(ctx context.Context) error {
		rows, queryErr := r.DB.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		contacts = make([]models.Contact, 0, 50)
		for rows.Next() {
			c, scanErr := scanContact(rows)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			contacts = append(contacts, c)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "contactRepository.ListContacts").Msg("failed to list contacts")
		return nil, err
	}

	return contacts, nil
}

// GetContact returns one contact or [ErrContactNotFound].
func (r *contactRepository) GetContact(ctx context.Context, id string) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetContactQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "contactRepository.GetContact").Str("contact_id", id).Msg("failed to create query")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var contact models.Contact
	err = r.withRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		contact, scanErr = scanContact(r.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	switch {
	case isNoRows(err):
		return models.Contact{}, ErrContactNotFound
	case err != nil:
		log.Err(err).Str("func", "contactRepository.GetContact").Str("contact_id", id).Msg("failed to get contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return contact, nil
}

// CreateContact inserts contact. Its ID must be set by the caller.
func (r *contactRepository) CreateContact(ctx context.Context, contact models.Contact) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertContactQuery(r.builder, contact, r.now())
	if err != nil {
		log.Err(err).Str("func", "contactRepository.CreateContact").Str("contact_id", contact.ID).Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	switch {
	case r.isUniqueViolation(err):
		return ErrContactAlreadyExists
	case err != nil:
		log.Err(err).Str("func", "contactRepository.CreateContact").Str("contact_id", contact.ID).Msg("failed to insert contact")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "contactRepository.CreateContact").Str("contact_id", contact.ID).Msg("contact created")
	return nil
}

// UpdateContact writes the non-nil fields of patch.
func (r *contactRepository) UpdateContact(ctx context.Context, id string, patch models.ContactPatch) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateContactQuery(r.builder, id, patch, r.now())
	if err != nil {
		log.Err(err).Str("func", "contactRepository.UpdateContact").Str("contact_id", id).Msg("failed to create query")
		if errors.Is(err, ErrNothingToUpdate) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "contactRepository.UpdateContact", id, query, args)
}

// DeleteContact removes the contact. A missing row is [ErrContactNotFound].
func (r *contactRepository) DeleteContact(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteContactQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "contactRepository.DeleteContact").Str("contact_id", id).Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "contactRepository.DeleteContact", id, query, args)
}

// SetContactImage links a stored blob to the contact, replacing any
// previous one.
func (r *contactRepository) SetContactImage(ctx context.Context, id, storageID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetContactImageQuery(r.builder, id, storageID, r.now())
	if err != nil {
		log.Err(err).Str("func", "contactRepository.SetContactImage").Str("contact_id", id).Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "contactRepository.SetContactImage", id, query, args)
}

// execAffectingOne runs a statement keyed by contact id and maps zero
// affected rows to [ErrContactNotFound].
func (r *contactRepository) execAffectingOne(ctx context.Context, funcName, id, query string, args []any) error {
	log := logger.FromContext(ctx)

	var affected int64
	err := r.withRetry(ctx, func(ctx context.Context) error {
		res, execErr := r.DB.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		var rowsErr error
		affected, rowsErr = res.RowsAffected()
		return rowsErr
	})
	if err != nil {
		log.Err(err).Str("func", funcName).Str("contact_id", id).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		log.Debug().Str("func", funcName).Str("contact_id", id).Msg("contact not found")
		return ErrContactNotFound
	}
	return nil
}

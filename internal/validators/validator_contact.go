package validators

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/MKhiriev/go-contacts/models"
)

const (
	FieldFirstName   = "firstName"
	FieldLastName    = "lastName"
	FieldEmail       = "email"
	FieldLastContact = "lastContact"
	FieldBirthday    = "birthday"
	FieldPatch       = "patch"
)

// RequiredContactFields lists the fields every contact must carry.
var RequiredContactFields = []string{FieldFirstName, FieldLastName, FieldEmail, FieldLastContact}

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether s looks like "local@domain.tld".
func IsValidEmail(s string) bool {
	return emailRegexp.MatchString(s)
}

// IsValidDate reports whether s is an ISO date (YYYY-MM-DD) or an RFC 3339
// timestamp.
func IsValidDate(s string) bool {
	if _, err := time.Parse(time.DateOnly, s); err == nil {
		return true
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

// ContactValidator checks contact fields and patches: required names,
// email shape and ISO dates.
type ContactValidator struct {
}

// NewContactValidator returns a [Validator] accepting [models.ContactFields]
// and [models.ContactPatch] values, by value or pointer.
func NewContactValidator() Validator {
	return &ContactValidator{}
}

// Validate checks contacts, create payloads and patches. When fields are
// given only those are checked; the first failing field is reported.
func (v *ContactValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ContactFields:
		return v.validateFields(ctx, value, fields...)
	case *models.ContactFields:
		return v.validateFields(ctx, *value, fields...)

	case models.Contact:
		return v.validateFields(ctx, value.Fields(), fields...)
	case *models.Contact:
		return v.validateFields(ctx, value.Fields(), fields...)

	case models.ContactPatch:
		return v.validatePatch(ctx, value, fields...)
	case *models.ContactPatch:
		return v.validatePatch(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ContactValidator) validateFields(ctx context.Context, c models.ContactFields, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldLastName, FieldEmail, FieldLastContact, FieldBirthday}
	}

	for _, f := range fields {
		switch f {
		case FieldFirstName:
			if strings.TrimSpace(c.FirstName) == "" {
				return ErrEmptyFirstName
			}
		case FieldLastName:
			if strings.TrimSpace(c.LastName) == "" {
				return ErrEmptyLastName
			}
		case FieldEmail:
			if !IsValidEmail(c.Email) {
				return ErrInvalidEmail
			}
		case FieldLastContact:
			if strings.TrimSpace(c.LastContact) == "" {
				return ErrEmptyLastContact
			}
			if !IsValidDate(c.LastContact) {
				return ErrInvalidDate
			}
		case FieldBirthday:
			if c.Birthday != "" && !IsValidDate(c.Birthday) {
				return ErrInvalidDate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePatch checks only the fields a patch sets: a required field may be
// left untouched but never cleared.
func (v *ContactValidator) validatePatch(ctx context.Context, p models.ContactPatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPatch, FieldFirstName, FieldLastName, FieldEmail, FieldLastContact, FieldBirthday}
	}

	for _, f := range fields {
		switch f {
		case FieldPatch:
			if p.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldFirstName:
			if p.FirstName != nil && strings.TrimSpace(*p.FirstName) == "" {
				return ErrEmptyFirstName
			}
		case FieldLastName:
			if p.LastName != nil && strings.TrimSpace(*p.LastName) == "" {
				return ErrEmptyLastName
			}
		case FieldEmail:
			if p.Email != nil && !IsValidEmail(*p.Email) {
				return ErrInvalidEmail
			}
		case FieldLastContact:
			if p.LastContact == nil {
				continue
			}
			if strings.TrimSpace(*p.LastContact) == "" {
				return ErrEmptyLastContact
			}
			if !IsValidDate(*p.LastContact) {
				return ErrInvalidDate
			}
		case FieldBirthday:
			if p.Birthday != nil && *p.Birthday != "" && !IsValidDate(*p.Birthday) {
				return ErrInvalidDate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

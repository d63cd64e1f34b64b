package form

import (
	"context"

	"github.com/MKhiriev/go-contacts/internal/validators"
	"github.com/MKhiriev/go-contacts/models"
)

// Field names accepted by SetField. They match the JSON names of
// models.Contact.
const (
	FieldFirstName   = validators.FieldFirstName
	FieldLastName    = validators.FieldLastName
	FieldEmail       = validators.FieldEmail
	FieldLastContact = validators.FieldLastContact
	FieldBirthday    = validators.FieldBirthday
	FieldPhone       = "phone"
	FieldCompany     = "company"
	FieldOccupation  = "occupation"
	FieldNotes       = "notes"
)

// FieldErrors flags every checked field. A validation always sets all flags,
// so a false flag means the field passed.
type FieldErrors struct {
	FirstName   bool
	LastName    bool
	Email       bool
	LastContact bool
	// Birthday is flagged only when set and malformed.
	Birthday bool
}

// Any reports whether at least one field failed.
func (e FieldErrors) Any() bool {
	return e.FirstName || e.LastName || e.Email || e.LastContact || e.Birthday
}

// Has reports whether the named field failed.
func (e FieldErrors) Has(field string) bool {
	switch field {
	case FieldFirstName:
		return e.FirstName
	case FieldLastName:
		return e.LastName
	case FieldEmail:
		return e.Email
	case FieldLastContact:
		return e.LastContact
	case FieldBirthday:
		return e.Birthday
	}
	return false
}

// Names returns the failed field names in form order.
func (e FieldErrors) Names() []string {
	names := make([]string, 0, 5)
	for _, f := range []string{FieldFirstName, FieldLastName, FieldEmail, FieldLastContact, FieldBirthday} {
		if e.Has(f) {
			names = append(names, f)
		}
	}
	return names
}

func (e *FieldErrors) clear(field string) {
	switch field {
	case FieldFirstName:
		e.FirstName = false
	case FieldLastName:
		e.LastName = false
	case FieldEmail:
		e.Email = false
	case FieldLastContact:
		e.LastContact = false
	case FieldBirthday:
		e.Birthday = false
	}
}

func validateFields(v validators.Validator, fields models.ContactFields) FieldErrors {
	ctx := context.Background()
	failed := func(field string) bool {
		return v.Validate(ctx, fields, field) != nil
	}

	return FieldErrors{
		FirstName:   failed(FieldFirstName),
		LastName:    failed(FieldLastName),
		Email:       failed(FieldEmail),
		LastContact: failed(FieldLastContact),
		Birthday:    failed(FieldBirthday),
	}
}

func setField(f *models.ContactFields, name, value string) error {
	switch name {
	case FieldFirstName:
		f.FirstName = value
	case FieldLastName:
		f.LastName = value
	case FieldEmail:
		f.Email = value
	case FieldLastContact:
		f.LastContact = value
	case FieldBirthday:
		f.Birthday = value
	case FieldPhone:
		f.Phone = value
	case FieldCompany:
		f.Company = value
	case FieldOccupation:
		f.Occupation = value
	case FieldNotes:
		f.Notes = value
	default:
		return ErrUnknownField
	}
	return nil
}

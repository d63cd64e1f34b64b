package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFirstName   = errors.New("first name is required")
	ErrEmptyLastName    = errors.New("last name is required")
	ErrInvalidEmail     = errors.New("email is invalid")
	ErrEmptyLastContact = errors.New("last contact date is required")
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD format")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)

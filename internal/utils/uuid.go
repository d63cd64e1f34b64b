package utils

import "github.com/google/uuid"

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator generates time-ordered UUIDv7 identifiers, falling back to
// random UUIDv4 if the clock source fails.
type UUIDGenerator struct {
}

// NewUUIDGenerator returns the generator used for contact identifiers and
// upload slots.
//
// Example usage:
//
//	ids := utils.NewUUIDGenerator()
//	contact.ID = ids.Generate()
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new identifier in canonical 36-character form.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsUUID reports whether s parses as a UUID.
func IsUUID(s string) bool {
	return uuid.Validate(s) == nil
}

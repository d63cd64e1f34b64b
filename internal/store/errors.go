package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrContactNotFound is returned when no contact has the requested ID.
	ErrContactNotFound = errors.New("contact not found")

	// ErrContactAlreadyExists is returned when a contact ID is reused.
	ErrContactAlreadyExists = errors.New("contact already exists")

	// ErrNothingToUpdate is returned for an update that changes no field.
	ErrNothingToUpdate = errors.New("nothing to update")

	// ErrBlobNotFound is returned when no blob has the requested storage ID.
	ErrBlobNotFound = errors.New("blob not found")

	// ErrBlobAlreadyExists is returned when a storage ID is written twice,
	// i.e. an upload slot is reused.
	ErrBlobAlreadyExists = errors.New("blob already exists")

	// ErrBlobTooLarge is returned when a blob exceeds the write limit.
	ErrBlobTooLarge = errors.New("blob too large")

	// ErrInvalidStorageID is returned for storage IDs that are not UUIDs.
	ErrInvalidStorageID = errors.New("invalid storage id")

	// ErrUnsupportedDSN is returned when the DSN matches no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)

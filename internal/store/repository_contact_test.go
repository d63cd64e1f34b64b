package store

import (
	"database/sql"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	selectContactsSQL = `^SELECT id, first_name, last_name, email, last_contact, phone, company, occupation, birthday, notes, image_id FROM contacts`
	insertContactSQL  = `^INSERT INTO contacts`
	updateContactSQL  = `^UPDATE contacts SET`
	deleteContactSQL  = `^DELETE FROM contacts WHERE id = \$1`
)

func newTestContactRepo(t *testing.T, db *sql.DB) ContactRepository {
	t.Helper()
	return NewContactRepository(newDBFromSQL(db), logger.Nop())
}

func contactRows() *sqlmock.Rows {
	return sqlmock.NewRows(contactColumns)
}

// ── ListContacts ──

func TestContactRepository_ListContacts(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestContactRepo(t, db)

	// Arrange
	mock.ExpectQuery(selectContactsSQL + ` ORDER BY created_at ASC, id ASC`).
		WillReturnRows(contactRows().
			AddRow("1", "Ada", "Lovelace", "ada@example.com", "2026-01-01", "", "", "", "", "", nil).
			AddRow("2", "Alan", "Turing", "alan@example.com", "2026-02-01", "+44", "NPL", "", "1912-06-23", "n", "blob-2"))

	// Act
	contacts, err := repo.ListContacts(testContext())

	// Assert
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "Ada", contacts[0].FirstName)
	assert.Nil(t, contacts[0].Image)
	require.NotNil(t, contacts[1].Image)
	assert.Equal(t, "blob-2", *contacts[1].Image)
	assert.Equal(t, "1912-06-23", contacts[1].Birthday)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_ListContacts_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestContactRepo(t, db)

	mock.ExpectQuery(selectContactsSQL).WillReturnRows(contactRows())

	contacts, err := repo.ListContacts(testContext())

	require.NoError(t, err)
	assert.NotNil(t, contacts)
	assert.Empty(t, contacts)
}

func TestContactRepository_ListContacts_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestContactRepo(t, db)

	mock.ExpectQuery(selectContactsSQL).WillReturnError(errors.New("boom"))

	_, err := repo.ListContacts(testContext())

	assert.ErrorIs(t, err, ErrExecutingQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_ListContacts_RetriesTransientError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestContactRepo(t, db)

	// Arrange: serialization failure once, then success
	mock.ExpectQuery(selectContactsSQL).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})
	mock.ExpectQuery(selectContactsSQL).
		WillReturnRows(contactRows().AddRow("1", "Ada", "L", "a@b.c", "2026-01-01", "", "", "", "", "", nil))

	// Act
	contacts, err := repo.ListContacts(testContext())

	// Assert
	require.NoError(t, err)
	assert.Len(t, contacts, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_ListContacts_RowError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestContactRepo(t, db)

	mock.ExpectQuery(selectContactsSQL).
		WillReturnRows(contactRows().
			AddRow("1", "Ada", "L", "a@b.c", "2026-01-01", "", "", "", "", "", nil).
			RowError(0, errors.New("broken row")))

	_, err := repo.ListContacts(testContext())

	assert.ErrorIs(t, err, ErrScanningRows)
}

// ── GetContact ──

func TestContactRepository_GetContact(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestContactRepo(t, db)

	mock.ExpectQuery(selectContactsSQL + ` WHERE id = \$1`).
		WithArgs("1").
		WillReturnRows(contactRows().AddRow("1", "Ada", "Lovelace", "ada@example.com", "2026-01-01", "", "", "", "", "", "blob-1"))

	c, err := repo.GetContact(testContext(), "1")

	require.NoError(t, err)
	assert.Equal(t, "1", c.ID)
	require.NotNil(t, c.Image)
	assert.Equal(t, "blob-1", *c.Image)
}

func TestContactRepository_GetContact_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestContactRepo(t, db)

	mock.ExpectQuery(selectContactsSQL).WithArgs("missing").WillReturnRows(contactRows())

	_, err := repo.GetContact(testContext(), "missing")

	assert.ErrorIs(t, err, ErrContactNotFound)
}

// ── CreateContact ──

func TestContactRepository_CreateContact(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestContactRepo(t, db)

	c := models.Contact{ID: "1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", LastContact: "2026-01-01"}
	mock.ExpectExec(insertContactSQL).
		WithArgs("1", "Ada", "Lovelace", "ada@example.com", "2026-01-01", "", "", "", "", "", nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateContact(testContext(), c)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_CreateContact_Duplicate(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestContactRepo(t, db)

	mock.ExpectExec(insertContactSQL).WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	err := repo.CreateContact(testContext(), models.Contact{ID: "1"})

	assert.ErrorIs(t, err, ErrContactAlreadyExists)
}

func TestContactRepository_CreateContact_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestContactRepo(t, db)

	mock.ExpectExec(insertContactSQL).WillReturnError(errors.New("boom"))

	err := repo.CreateContact(testContext(), models.Contact{ID: "1"})

	assert.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}

// ── UpdateContact / SetContactImage ──

func TestContactRepository_UpdateContact(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestContactRepo(t, db)

	mock.ExpectExec(updateContactSQL+` email = \$1, updated_at = \$2 WHERE id = \$3`).
		WithArgs("new@example.com", sqlmock.AnyArg(), "1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateContact(testContext(), "1", models.ContactPatch{Email: strPtr("new@example.com")})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_UpdateContact_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestContactRepo(t, db)

	mock.ExpectExec(updateContactSQL).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateContact(testContext(), "missing", models.ContactPatch{Email: strPtr("x@y.z")})

	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestContactRepository_UpdateContact_EmptyPatch(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestContactRepo(t, db)

	err := repo.UpdateContact(testContext(), "1", models.ContactPatch{})

	assert.ErrorIs(t, err, ErrNothingToUpdate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_SetContactImage(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestContactRepo(t, db)

	mock.ExpectExec(updateContactSQL+` image_id = \$1`).
		WithArgs("blob-1", sqlmock.AnyArg(), "1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetContactImage(testContext(), "1", "blob-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

// ── DeleteContact ──

func TestContactRepository_DeleteContact_Twice(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestContactRepo(t, db)

	mock.ExpectExec(deleteContactSQL).WithArgs("1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(deleteContactSQL).WithArgs("1").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteContact(testContext(), "1"))
	assert.ErrorIs(t, repo.DeleteContact(testContext(), "1"), ErrContactNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_DeleteContact_NonRetryableErrorIsNotRetried(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestContactRepo(t, db)

	mock.ExpectExec(deleteContactSQL).WillReturnError(&pgconn.PgError{Code: pgerrcode.SyntaxError})

	err := repo.DeleteContact(testContext(), "1")

	assert.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}

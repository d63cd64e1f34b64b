package store

import (
	"time"

	"github.com/MKhiriev/go-contacts/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	contactsTable = "contacts"
	blobsTable    = "media_blobs"
)

var contactColumns = []string{
	"id", "first_name", "last_name", "email", "last_contact",
	"phone", "company", "occupation", "birthday", "notes", "image_id",
}

var blobColumns = []string{"storage_id", "content_type", "size", "checksum", "created_at"}

// buildListContactsQuery selects all contacts in insertion order.
func buildListContactsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(contactColumns...).
		From(contactsTable).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
}

func buildGetContactQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(contactColumns...).
		From(contactsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertContactQuery(b sq.StatementBuilderType, c models.Contact, now time.Time) (string, []any, error) {
	var imageID any
	if c.Image != nil {
		imageID = *c.Image
	}

	columns := append(append([]string(nil), contactColumns...), "created_at", "updated_at")
	return b.Insert(contactsTable).
		Columns(columns...).
		Values(
			c.ID, c.FirstName, c.LastName, c.Email, c.LastContact,
			c.Phone, c.Company, c.Occupation, c.Birthday, c.Notes, imageID,
			now, now,
		).
		ToSql()
}

// buildUpdateContactQuery writes only the non-nil fields of patch.
func buildUpdateContactQuery(b sq.StatementBuilderType, id string, patch models.ContactPatch, now time.Time) (string, []any, error) {
	if patch.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	update := b.Update(contactsTable)
	set := func(column string, value *string) {
		if value != nil {
			update = update.Set(column, *value)
		}
	}

	set("first_name", patch.FirstName)
	set("last_name", patch.LastName)
	set("email", patch.Email)
	set("last_contact", patch.LastContact)
	set("phone", patch.Phone)
	set("company", patch.Company)
	set("occupation", patch.Occupation)
	set("birthday", patch.Birthday)
	set("notes", patch.Notes)

	return update.
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSetContactImageQuery(b sq.StatementBuilderType, id, storageID string, now time.Time) (string, []any, error) {
	return b.Update(contactsTable).
		Set("image_id", storageID).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteContactQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Delete(contactsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertBlobQuery(b sq.StatementBuilderType, blob models.Blob) (string, []any, error) {
	return b.Insert(blobsTable).
		Columns(blobColumns...).
		Values(blob.StorageID, blob.ContentType, blob.Size, blob.Checksum, blob.CreatedAt).
		ToSql()
}

func buildGetBlobQuery(b sq.StatementBuilderType, storageID string) (string, []any, error) {
	return b.Select(blobColumns...).
		From(blobsTable).
		Where(sq.Eq{"storage_id": storageID}).
		ToSql()
}

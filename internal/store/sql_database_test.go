// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── classifiers ──

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name       string
		err        error
		want       ErrorClassification
		wantUnique bool
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("x"), want: NonRetryable},
		{name: "deadlock", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, want: Retryable},
		{name: "connection failure", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, want: Retryable},
		{name: "cannot connect now", err: &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, want: Retryable},
		{name: "serialization failure", err: &pgconn.PgError{Code: pgerrcode.SerializationFailure}, want: Retryable},
		{name: "too many connections", err: &pgconn.PgError{Code: pgerrcode.TooManyConnections}, want: Retryable},
		{name: "query canceled", err: &pgconn.PgError{Code: pgerrcode.QueryCanceled}, want: NonRetryable},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: NonRetryable, wantUnique: true},
		{name: "wrapped unique violation", err: errors.Join(errors.New("ctx"), &pgconn.PgError{Code: pgerrcode.UniqueViolation}), want: NonRetryable, wantUnique: true},
		{name: "syntax error", err: &pgconn.PgError{Code: pgerrcode.SyntaxError}, want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
			assert.Equal(t, tt.wantUnique, c.IsUniqueViolation(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrLocked}))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("x")))

	assert.True(t, c.IsUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}))
	assert.True(t, c.IsUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}))
	assert.False(t, c.IsUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}))
	assert.False(t, c.IsUniqueViolation(nil))
}

// ── DB helpers ──

func TestNewConnectDB_EmptyDSN(t *testing.T) {
	_, err := NewConnectDB(context.Background(), config.DB{DSN: " "}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}

func TestIsPostgresDSN(t *testing.T) {
	assert.True(t, isPostgresDSN("postgres://u:p@localhost/db"))
	assert.True(t, isPostgresDSN("postgresql://localhost/db"))
	assert.False(t, isPostgresDSN("contacts.db"))
	assert.False(t, isPostgresDSN("file:contacts.db?cache=shared"))
}

func TestSqliteFilePath(t *testing.T) {
	assert.Equal(t, "contacts.db", sqliteFilePath("contacts.db"))
	assert.Equal(t, "data/contacts.db", sqliteFilePath("file:data/contacts.db?_busy_timeout=5000"))
	assert.Equal(t, ":memory:", sqliteFilePath(":memory:"))
}

func TestWithRetry_GivesUpAfterMaxRetries(t *testing.T) {
	db, _ := newTestDB(t)
	storeDB := newDBFromSQL(db)

	calls := 0
	transient := &pgconn.PgError{Code: pgerrcode.SerializationFailure}
	err := storeDB.withRetry(context.Background(), func(context.Context) error {
		calls++
		return transient
	})

	assert.ErrorIs(t, err, transient)
	assert.Equal(t, int(defaultMaxRetries)+1, calls)
}

func TestWithRetry_StopsOnContextCancel(t *testing.T) {
	db, _ := newTestDB(t)
	storeDB := newDBFromSQL(db)
	storeDB.retryBackoff = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := storeDB.withRetry(ctx, func(context.Context) error {
		calls++
		cancel()
		return &pgconn.PgError{Code: pgerrcode.DeadlockDetected}
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

// ── SQLite end to end ──

func TestStorages_SQLite(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Storage{
		DB:    config.DB{DSN: filepath.Join(dir, "db", "contacts.db")},
		Files: config.Files{MediaDir: filepath.Join(dir, "media")},
	}
	ctx := testContext()

	storages, err := NewStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	contacts := storages.ContactRepository

	// create two, list in creation order
	first := models.Contact{ID: uuid.Must(uuid.NewV7()).String(), FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", LastContact: "2026-01-01"}
	second := models.Contact{ID: uuid.Must(uuid.NewV7()).String(), FirstName: "Alan", LastName: "Turing", Email: "alan@example.com", LastContact: "2026-02-01"}
	require.NoError(t, contacts.CreateContact(ctx, first))
	require.NoError(t, contacts.CreateContact(ctx, second))
	assert.ErrorIs(t, contacts.CreateContact(ctx, first), ErrContactAlreadyExists)

	list, err := contacts.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)

	// partial update keeps untouched fields
	require.NoError(t, contacts.UpdateContact(ctx, first.ID, models.ContactPatch{Company: strPtr("Analytical Engines")}))
	got, err := contacts.GetContact(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Analytical Engines", got.Company)
	assert.Equal(t, "ada@example.com", got.Email)

	// image link
	blobID := uuid.NewString()
	size, sum, err := storages.BlobFileStorage.Write(ctx, blobID, strings.NewReader("img"), 10)
	require.NoError(t, err)
	require.NoError(t, storages.BlobRepository.SaveBlob(ctx, models.Blob{StorageID: blobID, ContentType: "image/png", Size: size, Checksum: sum, CreatedAt: time.Now().UTC()}))
	assert.ErrorIs(t, storages.BlobRepository.SaveBlob(ctx, models.Blob{StorageID: blobID, CreatedAt: time.Now().UTC()}), ErrBlobAlreadyExists)
	require.NoError(t, contacts.SetContactImage(ctx, first.ID, blobID))

	got, err = contacts.GetContact(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Image)
	assert.Equal(t, blobID, *got.Image)

	// delete twice
	require.NoError(t, contacts.DeleteContact(ctx, second.ID))
	assert.ErrorIs(t, contacts.DeleteContact(ctx, second.ID), ErrContactNotFound)
	_, err = contacts.GetContact(ctx, second.ID)
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestStorages_CloseNil(t *testing.T) {
	var s *Storages
	assert.NoError(t, s.Close())
}

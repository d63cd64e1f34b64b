package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL wraps a mocked *sql.DB as a postgres DB with a short backoff.
func newDBFromSQL(db *sql.DB) *DB {
	storeDB := newDB(db, DialectPostgres, NewPostgresErrorClassifier(), logger.Nop())
	storeDB.retryBackoff = time.Millisecond
	return storeDB
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

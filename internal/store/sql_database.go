package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/migrations"
	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"
)

// Dialect names the SQL driver behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

const (
	defaultMaxRetries   = 3
	defaultRetryBackoff = 50 * time.Millisecond
)

// DB is a database handle shared by all repositories.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	maxRetries   uint64
	retryBackoff time.Duration
}

// NewConnectDB opens the database named by cfg.DSN. postgres:// and
// postgresql:// DSNs go to pgx, anything else is treated as a SQLite file.
//
// Parameters:
//
//	ctx - bounds the initial ping
//	cfg - DSN and retry settings
//	log - logger attached to the returned handle
//
// Example usage:
//
//	db, err := store.NewConnectDB(ctx, config.DB{DSN: "file:contacts.db"}, log)
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case strings.TrimSpace(cfg.DSN) == "":
		return nil, ErrUnsupportedDSN
	case isPostgresDSN(cfg.DSN):
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return NewConnectSQLite(ctx, cfg, log)
	}
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func newDB(conn *sql.DB, dialect Dialect, classificator ErrorClassificator, log *logger.Logger) *DB {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Question)
	if dialect == DialectPostgres {
		builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            builder,
		errorClassificator: classificator,
		logger:             log,
		maxRetries:         defaultMaxRetries,
		retryBackoff:       defaultRetryBackoff,
	}
}

// Dialect returns the SQL dialect of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// withRetry runs fn and repeats it with exponential backoff while the
// classifier reports the failure as retryable.
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(db.maxRetries, retry.NewExponential(db.retryBackoff))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			db.logger.Warn().Err(err).Str("func", "DB.withRetry").Msg("retryable database error")
			return retry.RetryableError(err)
		}
		return err
	})
}

// isUniqueViolation reports whether err comes from a unique constraint.
func (db *DB) isUniqueViolation(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.IsUniqueViolation(err)
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

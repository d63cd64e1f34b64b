package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
)

// Storages groups every persistence component of the server.
type Storages struct {
	ContactRepository ContactRepository
	BlobRepository    BlobRepository
	BlobFileStorage   BlobFileStorage

	db *DB
}

// NewStorages connects to the database, applies migrations and prepares the
// media directory.
//
// The returned [Storages] owns the database handle; call [Storages.Close]
// on shutdown.
//
// Example usage:
//
//	storages, err := store.NewStorages(ctx, cfg.Storage, log)
//	if err != nil {
//	    log.Fatal().Err(err).Msg("error creating storages")
//	}
//	defer storages.Close()
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	files, err := NewBlobFileStorage(cfg.Files.MediaDir, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		ContactRepository: NewContactRepository(db, log),
		BlobRepository:    NewBlobRepository(db, log),
		BlobFileStorage:   files,
		db:                db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

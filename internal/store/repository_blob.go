package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/models"
)

type blobRepository struct {
	*DB
	logger *logger.Logger
}

// NewBlobRepository constructs a [BlobRepository] on db.
func NewBlobRepository(db *DB, logger *logger.Logger) BlobRepository {
	return &blobRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveBlob records blob metadata. A reused storage ID is
// [ErrBlobAlreadyExists].
func (r *blobRepository) SaveBlob(ctx context.Context, blob models.Blob) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertBlobQuery(r.builder, blob)
	if err != nil {
		log.Err(err).Str("func", "blobRepository.SaveBlob").Str("storage_id", blob.StorageID).Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	switch {
	case r.isUniqueViolation(err):
		return ErrBlobAlreadyExists
	case err != nil:
		log.Err(err).Str("func", "blobRepository.SaveBlob").Str("storage_id", blob.StorageID).Msg("failed to insert blob")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetBlob returns blob metadata or [ErrBlobNotFound].
func (r *blobRepository) GetBlob(ctx context.Context, storageID string) (models.Blob, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetBlobQuery(r.builder, storageID)
	if err != nil {
		log.Err(err).Str("func", "blobRepository.GetBlob").Str("storage_id", storageID).Msg("failed to create query")
		return models.Blob{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var blob models.Blob
	err = r.withRetry(ctx, func(ctx context.Context) error {
		return r.DB.QueryRowContext(ctx, query, args...).Scan(
			&blob.StorageID,
			&blob.ContentType,
			&blob.Size,
			&blob.Checksum,
			&blob.CreatedAt,
		)
	})
	switch {
	case isNoRows(err):
		return models.Blob{}, ErrBlobNotFound
	case err != nil:
		log.Err(err).Str("func", "blobRepository.GetBlob").Str("storage_id", storageID).Msg("failed to get blob")
		return models.Blob{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return blob, nil
}

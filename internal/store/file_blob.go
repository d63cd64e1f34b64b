package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/utils"
)

// blobFileStorage keeps image bytes as files under root, one file per
// storage ID. Files are created exclusively, so a storage ID is written at
// most once.
type blobFileStorage struct {
	root   string
	logger *logger.Logger
}

// NewBlobFileStorage returns a [BlobFileStorage] rooted at dir, creating the
// directory when missing.
//
// Parameters:
//
//	dir - media directory; one file per storage ID is kept directly under it
//	log - logger for file system failures
//
// Returns:
//
//	BlobFileStorage - storage that accepts UUID storage IDs only
//	error           - when dir cannot be created
func NewBlobFileStorage(dir string, log *logger.Logger) (BlobFileStorage, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.Err(err).Str("func", "NewBlobFileStorage").Str("dir", dir).Msg("error creating media directory")
		return nil, fmt.Errorf("error creating media directory: %w", err)
	}

	return &blobFileStorage{root: dir, logger: log}, nil
}

func (s *blobFileStorage) path(storageID string) (string, error) {
	if !utils.IsUUID(storageID) {
		return "", ErrInvalidStorageID
	}
	return filepath.Join(s.root, storageID), nil
}

// Write streams r into a new file. More than limit bytes yields
// [ErrBlobTooLarge] and no file is left behind, so a failed write leaves the
// storage ID free for another attempt.
func (s *blobFileStorage) Write(ctx context.Context, storageID string, r io.Reader, limit int64) (int64, string, error) {
	log := logger.FromContext(ctx)

	path, err := s.path(storageID)
	if err != nil {
		return 0, "", err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if errors.Is(err, fs.ErrExist) {
		return 0, "", ErrBlobAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("func", "blobFileStorage.Write").Str("storage_id", storageID).Msg("error creating blob file")
		return 0, "", fmt.Errorf("error creating blob file: %w", err)
	}

	checksum := utils.NewChecksumWriter()
	size, err := io.Copy(io.MultiWriter(f, checksum), io.LimitReader(r, limit+1))
	closeErr := f.Close()

	switch {
	case err != nil:
		err = fmt.Errorf("error writing blob file: %w", err)
	case closeErr != nil:
		err = fmt.Errorf("error closing blob file: %w", closeErr)
	case size > limit:
		err = ErrBlobTooLarge
	case ctx.Err() != nil:
		err = ctx.Err()
	}
	if err != nil {
		log.Err(err).Str("func", "blobFileStorage.Write").Str("storage_id", storageID).Int64("size", size).Msg("blob not stored")
		if rmErr := os.Remove(path); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			log.Err(rmErr).Str("func", "blobFileStorage.Write").Str("storage_id", storageID).Msg("error removing partial blob file")
		}
		return 0, "", err
	}

	return size, utils.ChecksumHex(checksum), nil
}

// Open returns the stored bytes or [ErrBlobNotFound].
func (s *blobFileStorage) Open(_ context.Context, storageID string) (io.ReadSeekCloser, error) {
	path, err := s.path(storageID)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error opening blob file: %w", err)
	}
	return f, nil
}

// Remove deletes the stored bytes. Removing a missing blob is not an error.
func (s *blobFileStorage) Remove(_ context.Context, storageID string) error {
	path, err := s.path(storageID)
	if err != nil {
		return err
	}

	if err = os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error removing blob file: %w", err)
	}
	return nil
}

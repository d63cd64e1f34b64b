// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/store"
	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/models"
)

const (
	UploadPathPrefix = "/api/media/upload/"
	FilesPathPrefix  = "/api/files/"

	sniffLen = 512
)

type mediaService struct {
	blobs     store.BlobRepository
	files     store.BlobFileStorage
	cfg       config.Media
	publicURL string
	ids       utils.IDGenerator
	now       func() time.Time

	logger *logger.Logger
}

// NewMediaService returns the [MediaService] storing metadata in blobs and
// bytes in files. publicURL prefixes every URL handed out to clients.
//
// Parameters:
//
//	blobs     - blob metadata repository
//	files     - byte storage; its create-once rule makes slots single-use
//	cfg       - signing key, slot TTL and upload size limit
//	publicURL - externally visible server address, without trailing slash
//	logger    - service logger
func NewMediaService(blobs store.BlobRepository, files store.BlobFileStorage, cfg config.Media, publicURL string, logger *logger.Logger) MediaService {
	return &mediaService{
		blobs:     blobs,
		files:     files,
		cfg:       cfg,
		publicURL: strings.TrimRight(publicURL, "/"),
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

// CreateUploadSlot signs a token for a fresh slot ID. The slot ID becomes
// the storage ID of the uploaded bytes.
func (s *mediaService) CreateUploadSlot(ctx context.Context) (models.UploadSlot, error) {
	log := logger.FromContext(ctx)

	slotID := s.ids.Generate()
	token, err := utils.GenerateUploadToken(s.cfg.Issuer, slotID, s.cfg.SlotTTL, s.cfg.SignKey)
	if err != nil {
		log.Err(err).Str("func", "mediaService.CreateUploadSlot").Msg("error signing upload token")
		return models.UploadSlot{}, err
	}

	return models.UploadSlot{
		UploadURL: s.publicURL + UploadPathPrefix + url.PathEscape(token),
	}, nil
}

// StoreUpload verifies token and writes body under the slot ID. Non-image
// content is rejected; a declared type that is not an image is accepted
// when the bytes sniff as one.
func (s *mediaService) StoreUpload(ctx context.Context, token, contentType string, body io.Reader) (models.StorageReference, error) {
	log := logger.FromContext(ctx)

	slotID, err := utils.ParseUploadToken(token, s.cfg.SignKey, s.cfg.Issuer)
	if err != nil {
		log.Debug().Err(err).Str("func", "mediaService.StoreUpload").Msg("rejected upload token")
		return models.StorageReference{}, ErrInvalidUploadToken
	}

	br := bufio.NewReaderSize(body, sniffLen)
	head, _ := br.Peek(sniffLen)
	if len(head) == 0 {
		return models.StorageReference{}, ErrEmptyUpload
	}

	mediaType, ok := imageMediaType(contentType, head)
	if !ok {
		return models.StorageReference{}, ErrUnsupportedMediaType
	}

	size, checksum, err := s.files.Write(ctx, slotID, br, s.cfg.MaxUploadSize)
	if err != nil {
		log.Err(err).Str("func", "mediaService.StoreUpload").Str("storage_id", slotID).Msg("error writing image")
		return models.StorageReference{}, mapStoreError(err)
	}

	blob := models.Blob{
		StorageID:   slotID,
		ContentType: mediaType,
		Size:        size,
		Checksum:    checksum,
		CreatedAt:   s.now().UTC(),
	}
	if err = s.blobs.SaveBlob(ctx, blob); err != nil {
		log.Err(err).Str("func", "mediaService.StoreUpload").Str("storage_id", slotID).Msg("error saving image metadata")
		if !errors.Is(err, store.ErrBlobAlreadyExists) {
			if rmErr := s.files.Remove(ctx, slotID); rmErr != nil {
				log.Err(rmErr).Str("storage_id", slotID).Msg("error removing orphaned image")
			}
		}
		return models.StorageReference{}, mapStoreError(err)
	}

	log.Info().Str("func", "mediaService.StoreUpload").
		Str("storage_id", slotID).
		Int64("size", size).
		Str("content_type", mediaType).
		Msg("image stored")

	return models.StorageReference{StorageID: slotID}, nil
}

func imageMediaType(declared string, head []byte) (string, bool) {
	if mediaType, _, err := mime.ParseMediaType(declared); err == nil && strings.HasPrefix(mediaType, "image/") {
		return mediaType, true
	}

	sniffed, _, _ := mime.ParseMediaType(http.DetectContentType(head))
	if strings.HasPrefix(sniffed, "image/") {
		return sniffed, true
	}
	return "", false
}

func (s *mediaService) GetBlob(ctx context.Context, storageID string) (models.Blob, error) {
	if !utils.IsUUID(storageID) {
		return models.Blob{}, ErrBlobNotFound
	}

	blob, err := s.blobs.GetBlob(ctx, storageID)
	if err != nil {
		return models.Blob{}, mapStoreError(err)
	}
	return blob, nil
}

// OpenBlob returns the metadata and contents of a stored image. The caller
// closes the reader.
func (s *mediaService) OpenBlob(ctx context.Context, storageID string) (models.Blob, io.ReadSeekCloser, error) {
	blob, err := s.GetBlob(ctx, storageID)
	if err != nil {
		return models.Blob{}, nil, err
	}

	rc, err := s.files.Open(ctx, storageID)
	if err != nil {
		return models.Blob{}, nil, fmt.Errorf("error opening image: %w", mapStoreError(err))
	}
	return blob, rc, nil
}

func (s *mediaService) ResolveURL(storageID string) string {
	return s.publicURL + FilesPathPrefix + url.PathEscape(storageID)
}

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/models"
)

const (
	contactsPath     = "/api/contacts"
	contactPath      = "/api/contacts/{id}"
	contactImagePath = "/api/contacts/{id}/image"
	uploadSlotPath   = "/api/media/upload-url"
)

type httpContactStore struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPContactStore constructs the REST implementation of [ContactStore].
// adapterCfg.HTTPAddress may be given with or without a scheme; plain
// host:port gets "http://".
//
// Parameters:
//
//	adapterCfg - server address and per-request timeout
//	logger     - client logger
//
// Returns:
//
//	ContactStore - store whose reads are retried on 502/503/504
//	error        - when the address cannot be parsed
//
// Example usage:
//
//	store, err := adapter.NewHTTPContactStore(cfg.Adapter, log)
//	contacts, err := store.List(ctx)
func NewHTTPContactStore(adapterCfg config.ClientAdapter, logger *logger.Logger) (ContactStore, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpContactStore{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// List implements [ContactStore] via GET /api/contacts.
func (h *httpContactStore) List(ctx context.Context) ([]models.Contact, error) {
	contacts := make([]models.Contact, 0)

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&contacts).
		Get(contactsPath)
	if err != nil {
		return nil, fmt.Errorf("list contacts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return contacts, nil
}

// Get implements [ContactStore] via GET /api/contacts/{id}.
func (h *httpContactStore) Get(ctx context.Context, id string) (models.Contact, error) {
	var contact models.Contact

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&contact).
		Get(contactPath)
	if err != nil {
		return models.Contact{}, fmt.Errorf("get contact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Contact{}, err
	}

	return contact, nil
}

// Create implements [ContactStore] via POST /api/contacts.
func (h *httpContactStore) Create(ctx context.Context, fields models.ContactFields) (string, error) {
	var created models.CreatedContact

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(fields).
		SetResult(&created).
		Post(contactsPath)
	if err != nil {
		return "", fmt.Errorf("create contact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if created.ID == "" {
		return "", fmt.Errorf("create contact: %w: empty id in response", ErrUnexpectedStatus)
	}

	return created.ID, nil
}

// Update implements [ContactStore] via PATCH /api/contacts/{id}.
func (h *httpContactStore) Update(ctx context.Context, id string, patch models.ContactPatch) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		Patch(contactPath)
	if err != nil {
		return fmt.Errorf("update contact request: %w", err)
	}

	return mapHTTPError(resp)
}

// Delete implements [ContactStore] via DELETE /api/contacts/{id}.
func (h *httpContactStore) Delete(ctx context.Context, id string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Delete(contactPath)
	if err != nil {
		return fmt.Errorf("delete contact request: %w", err)
	}

	return mapHTTPError(resp)
}

// RequestUploadSlot implements [ContactStore] via POST /api/media/upload-url.
func (h *httpContactStore) RequestUploadSlot(ctx context.Context) (models.UploadSlot, error) {
	var slot models.UploadSlot

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&slot).
		Post(uploadSlotPath)
	if err != nil {
		return models.UploadSlot{}, fmt.Errorf("upload slot request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadSlot{}, err
	}
	if slot.UploadURL == "" {
		return models.UploadSlot{}, ErrEmptyUploadURL
	}

	return slot, nil
}

// SendBytes implements [ContactStore]. The bytes are POSTed as the raw
// request body to the slot URL, which may point to any host.
func (h *httpContactStore) SendBytes(ctx context.Context, slot models.UploadSlot, data []byte, contentType string) (models.StorageReference, error) {
	if slot.UploadURL == "" {
		return models.StorageReference{}, ErrEmptyUploadURL
	}

	var ref models.StorageReference

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(data).
		SetResult(&ref).
		Post(slot.UploadURL)
	if err != nil {
		return models.StorageReference{}, fmt.Errorf("send bytes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StorageReference{}, err
	}
	if ref.StorageID == "" {
		return models.StorageReference{}, ErrEmptyStorageID
	}

	h.logger.Debug().
		Str("func", "httpContactStore.SendBytes").
		Int("size", len(data)).
		Str("storage_id", ref.StorageID).
		Msg("image bytes uploaded")

	return ref, nil
}

// LinkImage implements [ContactStore] via POST /api/contacts/{id}/image.
func (h *httpContactStore) LinkImage(ctx context.Context, id string, ref models.StorageReference) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetHeader("Content-Type", "application/json").
		SetBody(ref).
		Post(contactImagePath)
	if err != nil {
		return fmt.Errorf("link image request: %w", err)
	}

	return mapHTTPError(resp)
}

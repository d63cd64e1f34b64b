package form

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-contacts/internal/adapter"
	"github.com/MKhiriev/go-contacts/models"
)

// memStore is an in-memory ContactStore. Setting failUpload or failLink
// makes the matching image step fail.
type memStore struct {
	mu       sync.Mutex
	contacts []models.Contact
	blobs    map[string][]byte
	nextID   int

	failUpload bool
	failLink   bool
	calls      []string
}

func newMemStore(contacts ...models.Contact) *memStore {
	return &memStore{
		contacts: slices.Clone(contacts),
		blobs:    make(map[string][]byte),
	}
}

func (m *memStore) record(call string) {
	m.calls = append(m.calls, call)
}

func (m *memStore) List(_ context.Context) ([]models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("List")
	return slices.Clone(m.contacts), nil
}

func (m *memStore) Get(_ context.Context, id string) (models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Get")
	i := m.index(id)
	if i < 0 {
		return models.Contact{}, adapter.ErrNotFound
	}
	return m.contacts[i], nil
}

func (m *memStore) Create(_ context.Context, fields models.ContactFields) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Create")
	m.nextID++
	id := fmt.Sprintf("c-%d", m.nextID)
	m.contacts = append(m.contacts, fields.Patch().Apply(models.Contact{ID: id}))
	return id, nil
}

func (m *memStore) Update(_ context.Context, id string, patch models.ContactPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Update")
	i := m.index(id)
	if i < 0 {
		return adapter.ErrNotFound
	}
	m.contacts[i] = patch.Apply(m.contacts[i])
	return nil
}

func (m *memStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Delete")
	i := m.index(id)
	if i < 0 {
		return adapter.ErrNotFound
	}
	m.contacts = slices.Delete(m.contacts, i, i+1)
	return nil
}

func (m *memStore) RequestUploadSlot(_ context.Context) (models.UploadSlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("RequestUploadSlot")
	return models.UploadSlot{UploadURL: fmt.Sprintf("mem://slot/%d", len(m.blobs)+1)}, nil
}

func (m *memStore) SendBytes(_ context.Context, slot models.UploadSlot, data []byte, _ string) (models.StorageReference, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("SendBytes")
	if m.failUpload {
		return models.StorageReference{}, adapter.ErrServiceUnavailable
	}
	m.blobs[slot.UploadURL] = slices.Clone(data)
	return models.StorageReference{StorageID: slot.UploadURL}, nil
}

func (m *memStore) LinkImage(_ context.Context, id string, ref models.StorageReference) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("LinkImage")
	if m.failLink {
		return adapter.ErrInternalServerError
	}
	i := m.index(id)
	if i < 0 {
		return adapter.ErrNotFound
	}
	url := "https://files.test/" + ref.StorageID
	m.contacts[i].Image = &url
	return nil
}

func (m *memStore) index(id string) int {
	return slices.IndexFunc(m.contacts, func(c models.Contact) bool { return c.ID == id })
}

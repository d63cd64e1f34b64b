package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/mock"
	"github.com/MKhiriev/go-contacts/internal/store"
	"github.com/MKhiriev/go-contacts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

type fixedIDs struct{ id string }

func (f fixedIDs) Generate() string { return f.id }

func strPtr(s string) *string { return &s }

func newTestContactService(t *testing.T) (*contactService, *mock.MockContactRepository, *mock.MockMediaService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockContactRepository(ctrl)
	media := mock.NewMockMediaService(ctrl)

	svc := NewContactService(repo, media, logger.Nop()).(*contactService)
	svc.ids = fixedIDs{id: "0190c1a2-0000-7000-8000-000000000001"}
	svc.now = func() time.Time { return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC) }
	return svc, repo, media
}

// ─────────────────────────────────────────────
// ListContacts / GetContact
// ─────────────────────────────────────────────

func TestContactService_ListContacts_ResolvesImages(t *testing.T) {
	svc, repo, media := newTestContactService(t)
	ctx := context.Background()

	// Arrange
	repo.EXPECT().ListContacts(ctx).Return([]models.Contact{
		{ID: "1", FirstName: "Ada"},
		{ID: "2", FirstName: "Alan", Image: strPtr("blob-2")},
	}, nil)
	media.EXPECT().ResolveURL("blob-2").Return("http://files.test/api/files/blob-2")

	// Act
	got, err := svc.ListContacts(ctx)

	// Assert
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Nil(t, got[0].Image)
	require.NotNil(t, got[1].Image)
	assert.Equal(t, "http://files.test/api/files/blob-2", *got[1].Image)
}

func TestContactService_ListContacts_StoreError(t *testing.T) {
	svc, repo, _ := newTestContactService(t)
	boom := errors.New("boom")

	repo.EXPECT().ListContacts(gomock.Any()).Return(nil, boom)

	_, err := svc.ListContacts(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestContactService_GetContact_NotFound(t *testing.T) {
	svc, repo, _ := newTestContactService(t)

	repo.EXPECT().GetContact(gomock.Any(), "x").Return(models.Contact{}, store.ErrContactNotFound)

	_, err := svc.GetContact(context.Background(), "x")
	assert.ErrorIs(t, err, ErrContactNotFound)
}

// ─────────────────────────────────────────────
// CreateContact
// ─────────────────────────────────────────────

func TestContactService_CreateContact_AssignsIDAndDefaultsLastContact(t *testing.T) {
	svc, repo, _ := newTestContactService(t)

	repo.EXPECT().CreateContact(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.Contact) error {
			assert.Equal(t, "0190c1a2-0000-7000-8000-000000000001", c.ID)
			assert.Equal(t, "2026-03-14", c.LastContact)
			assert.Equal(t, "Ada", c.FirstName)
			assert.Nil(t, c.Image)
			return nil
		})

	id, err := svc.CreateContact(context.Background(), models.ContactFields{FirstName: "Ada", LastName: "L", Email: "a@b.c"})

	require.NoError(t, err)
	assert.Equal(t, "0190c1a2-0000-7000-8000-000000000001", id)
}

func TestContactService_CreateContact_KeepsGivenLastContact(t *testing.T) {
	svc, repo, _ := newTestContactService(t)

	repo.EXPECT().CreateContact(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.Contact) error {
			assert.Equal(t, "2025-12-31", c.LastContact)
			return nil
		})

	_, err := svc.CreateContact(context.Background(), models.ContactFields{LastContact: "2025-12-31"})
	require.NoError(t, err)
}

func TestContactService_CreateContact_StoreError(t *testing.T) {
	svc, repo, _ := newTestContactService(t)

	repo.EXPECT().CreateContact(gomock.Any(), gomock.Any()).Return(store.ErrContactAlreadyExists)

	id, err := svc.CreateContact(context.Background(), models.ContactFields{})
	assert.Empty(t, id)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// UpdateContact / DeleteContact
// ─────────────────────────────────────────────

func TestContactService_UpdateContact(t *testing.T) {
	svc, repo, _ := newTestContactService(t)
	patch := models.ContactPatch{Email: strPtr("new@example.com")}

	repo.EXPECT().UpdateContact(gomock.Any(), "1", patch).Return(nil)
	repo.EXPECT().UpdateContact(gomock.Any(), "2", patch).Return(store.ErrContactNotFound)

	require.NoError(t, svc.UpdateContact(context.Background(), "1", patch))
	assert.ErrorIs(t, svc.UpdateContact(context.Background(), "2", patch), ErrContactNotFound)
}

func TestContactService_DeleteContact_SecondCallNotFound(t *testing.T) {
	svc, repo, _ := newTestContactService(t)

	gomock.InOrder(
		repo.EXPECT().DeleteContact(gomock.Any(), "1").Return(nil),
		repo.EXPECT().DeleteContact(gomock.Any(), "1").Return(store.ErrContactNotFound),
	)

	require.NoError(t, svc.DeleteContact(context.Background(), "1"))
	assert.ErrorIs(t, svc.DeleteContact(context.Background(), "1"), ErrContactNotFound)
}

// ─────────────────────────────────────────────
// LinkImage
// ─────────────────────────────────────────────

func TestContactService_LinkImage(t *testing.T) {
	svc, repo, media := newTestContactService(t)
	ref := models.StorageReference{StorageID: "blob-1"}

	gomock.InOrder(
		media.EXPECT().GetBlob(gomock.Any(), "blob-1").Return(models.Blob{StorageID: "blob-1"}, nil),
		repo.EXPECT().SetContactImage(gomock.Any(), "1", "blob-1").Return(nil),
	)

	require.NoError(t, svc.LinkImage(context.Background(), "1", ref))
}

func TestContactService_LinkImage_UnknownBlob(t *testing.T) {
	svc, _, media := newTestContactService(t)

	media.EXPECT().GetBlob(gomock.Any(), "blob-1").Return(models.Blob{}, ErrBlobNotFound)

	err := svc.LinkImage(context.Background(), "1", models.StorageReference{StorageID: "blob-1"})
	assert.ErrorIs(t, err, ErrBlobNotFound)
}

func TestContactService_LinkImage_UnknownContact(t *testing.T) {
	svc, repo, media := newTestContactService(t)

	media.EXPECT().GetBlob(gomock.Any(), "blob-1").Return(models.Blob{}, nil)
	repo.EXPECT().SetContactImage(gomock.Any(), "1", "blob-1").Return(store.ErrContactNotFound)

	err := svc.LinkImage(context.Background(), "1", models.StorageReference{StorageID: "blob-1"})
	assert.ErrorIs(t, err, ErrContactNotFound)
}

// ─────────────────────────────────────────────
// ExportContacts
// ─────────────────────────────────────────────

func TestContactService_ExportContacts(t *testing.T) {
	svc, repo, media := newTestContactService(t)

	repo.EXPECT().ListContacts(gomock.Any()).Return([]models.Contact{
		{ID: "1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", LastContact: "2026-01-01"},
		{ID: "2", FirstName: "Alan", LastName: "Turing", Email: "alan@example.com", LastContact: "2026-02-01", Image: strPtr("b")},
	}, nil)
	media.EXPECT().ResolveURL("b").Return("http://x/api/files/b")

	var buf bytes.Buffer
	require.NoError(t, svc.ExportContacts(context.Background(), &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "First Name", rows[0][0])
	assert.Equal(t, "Ada", rows[1][0])
	assert.Equal(t, "alan@example.com", rows[2][2])
	assert.Equal(t, "http://x/api/files/b", rows[2][9])
}

// ─────────────────────────────────────────────
// mapStoreError
// ─────────────────────────────────────────────

func TestMapStoreError(t *testing.T) {
	other := errors.New("other")

	tests := []struct {
		in   error
		want error
	}{
		{in: store.ErrContactNotFound, want: ErrContactNotFound},
		{in: store.ErrBlobNotFound, want: ErrBlobNotFound},
		{in: store.ErrNothingToUpdate, want: ErrInvalidDataProvided},
		{in: store.ErrBlobAlreadyExists, want: ErrSlotAlreadyUsed},
		{in: store.ErrBlobTooLarge, want: ErrPayloadTooLarge},
		{in: other, want: other},
	}

	for _, tt := range tests {
		assert.ErrorIs(t, mapStoreError(tt.in), tt.want, tt.in.Error())
	}
	assert.NoError(t, mapStoreError(nil))
}

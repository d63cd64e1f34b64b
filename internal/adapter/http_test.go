// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore creates an httpContactStore pointed at the test server.
func newTestStore(t *testing.T, serverURL string) ContactStore {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	s, err := NewHTTPContactStore(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return s
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "https://contacts.example.com/", want: "https://contacts.example.com"},
		{in: "  http://127.0.0.1:9000  ", want: "http://127.0.0.1:9000"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPContactStore_InvalidAddress(t *testing.T) {
	_, err := NewHTTPContactStore(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}

// ── List / Get ──────────────────────────────────────────────────────────────

func TestList_Success(t *testing.T) {
	img := "http://files/1"
	want := []models.Contact{
		{ID: "1", FirstName: "Jane", LastName: "Smith", Email: "jane@x.com", LastContact: "2023-10-15", Image: &img},
		{ID: "2", FirstName: "John", LastName: "Doe", Email: "john@x.com", LastContact: "2023-11-02"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/contacts", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		writeJSON(t, w, http.StatusOK, want)
	}))
	defer srv.Close()

	got, err := newTestStore(t, srv.URL).List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestList_EmptyArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []models.Contact{})
	}))
	defer srv.Close()

	got, err := newTestStore(t, srv.URL).List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestList_RetriesUnavailable(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		writeJSON(t, w, http.StatusOK, []models.Contact{})
	}))
	defer srv.Close()

	_, err := newTestStore(t, srv.URL).List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestGet_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/contacts/missing", r.URL.Path)
		http.Error(w, "contact not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestStore(t, srv.URL).Get(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "contact not found")
}

// ── Create / Update / Delete ────────────────────────────────────────────────

func TestCreate_Success(t *testing.T) {
	fields := models.ContactFields{FirstName: "Ann", LastName: "Lee", Email: "ann@lee.io", LastContact: "2024-01-01"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/contacts", r.URL.Path)

		var got map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "Ann", got["firstName"])
		assert.NotContains(t, got, "id")
		assert.NotContains(t, got, "image")

		writeJSON(t, w, http.StatusCreated, models.CreatedContact{ID: "new-id"})
	}))
	defer srv.Close()

	id, err := newTestStore(t, srv.URL).Create(context.Background(), fields)

	require.NoError(t, err)
	assert.Equal(t, "new-id", id)
}

func TestCreate_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "first name is required", http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := newTestStore(t, srv.URL).Create(context.Background(), models.ContactFields{})

	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestCreate_EmptyID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusCreated, map[string]string{})
	}))
	defer srv.Close()

	_, err := newTestStore(t, srv.URL).Create(context.Background(), models.ContactFields{})

	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestUpdate_SendsOnlyPatchFields(t *testing.T) {
	company := "Globex"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/contacts/c-1", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"company":"Globex"}`, string(body))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := newTestStore(t, srv.URL).Update(context.Background(), "c-1", models.ContactPatch{Company: &company})

	require.NoError(t, err)
}

func TestUpdate_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	name := "x"
	err := newTestStore(t, srv.URL).Update(context.Background(), "gone", models.ContactPatch{FirstName: &name})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_SecondCallFails(t *testing.T) {
	deleted := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		if deleted {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		deleted = true
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)

	require.NoError(t, s.Delete(context.Background(), "c-1"))
	assert.ErrorIs(t, s.Delete(context.Background(), "c-1"), ErrNotFound)
}

// ── upload ──────────────────────────────────────────────────────────────────

func TestUploadFlow(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/media/upload-url":
			writeJSON(t, w, http.StatusOK, models.UploadSlot{UploadURL: srv.URL + "/api/media/upload/tok-1"})

		case r.Method == http.MethodPost && r.URL.Path == "/api/media/upload/tok-1":
			assert.Equal(t, "image/png", r.Header.Get("Content-Type"))
			body, _ := io.ReadAll(r.Body)
			assert.Equal(t, "png-bytes", string(body))
			writeJSON(t, w, http.StatusCreated, models.StorageReference{StorageID: "blob-1"})

		case r.Method == http.MethodPost && r.URL.Path == "/api/contacts/c-1/image":
			var ref models.StorageReference
			require.NoError(t, json.NewDecoder(r.Body).Decode(&ref))
			assert.Equal(t, "blob-1", ref.StorageID)
			w.WriteHeader(http.StatusNoContent)

		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusTeapot)
		}
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	ctx := context.Background()

	slot, err := s.RequestUploadSlot(ctx)
	require.NoError(t, err)

	ref, err := s.SendBytes(ctx, slot, []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "blob-1", ref.StorageID)

	require.NoError(t, s.LinkImage(ctx, "c-1", ref))
}

func TestRequestUploadSlot_EmptyURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.UploadSlot{})
	}))
	defer srv.Close()

	_, err := newTestStore(t, srv.URL).RequestUploadSlot(context.Background())

	assert.ErrorIs(t, err, ErrEmptyUploadURL)
}

func TestSendBytes_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "too large", status: http.StatusRequestEntityTooLarge, wantErr: ErrPayloadTooLarge},
		{name: "slot reused", status: http.StatusConflict, wantErr: ErrConflict},
		{name: "unsupported", status: http.StatusUnsupportedMediaType, wantErr: ErrUnsupportedMedia},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			slot := models.UploadSlot{UploadURL: srv.URL + "/upload"}
			_, err := newTestStore(t, srv.URL).SendBytes(context.Background(), slot, []byte("x"), "image/png")

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSendBytes_NoSlotURL(t *testing.T) {
	s := newTestStore(t, "http://127.0.0.1:1")

	_, err := s.SendBytes(context.Background(), models.UploadSlot{}, []byte("x"), "image/png")

	assert.ErrorIs(t, err, ErrEmptyUploadURL)
}

func TestLinkImage_ContactGone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	err := newTestStore(t, srv.URL).LinkImage(context.Background(), "gone", models.StorageReference{StorageID: "b"})

	assert.ErrorIs(t, err, ErrNotFound)
}

// ── error mapping ───────────────────────────────────────────────────────────

func TestMapHTTPError_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	err := newTestStore(t, srv.URL).Delete(context.Background(), "c-1")

	require.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.True(t, strings.Contains(err.Error(), "http 418"))
}

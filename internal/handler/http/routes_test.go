package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-contacts/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ---- Every route is registered ----

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newTestHandler(t).Init()

	registered := make(map[string]bool)
	err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	require.NoError(t, err)

	expected := []string{
		"GET /metrics",
		"GET /api/version",
		"GET /api/contacts",
		"POST /api/contacts",
		"GET /api/contacts/export.xlsx",
		"GET /api/contacts/{id}",
		"PATCH /api/contacts/{id}",
		"DELETE /api/contacts/{id}",
		"POST /api/contacts/{id}/image",
		"POST /api/media/upload-url",
		"POST /api/media/upload/{token}",
		"GET /api/files/{storageID}",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "route not registered: %s", route)
	}
}

// ---- Unknown routes return 404 ----

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	router := newTestHandler(t).Init()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/nonexistent"},
		{http.MethodGet, "/totally/wrong"},
		{http.MethodGet, "/api/contacts/c-1/image/extra"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

// ---- Wrong method on existing route returns 404 ----

func TestInit_WrongMethod_Returns404NotMethodNotAllowed(t *testing.T) {
	router := newTestHandler(t).Init()

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"PUT on /api/contacts", http.MethodPut, "/api/contacts"},
		{"POST on /api/version (GET only)", http.MethodPost, "/api/version"},
		{"GET on /api/media/upload-url (POST only)", http.MethodGet, "/api/media/upload-url"},
		{"DELETE on /api/files/{storageID} (GET only)", http.MethodDelete, "/api/files/abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusNotFound, rr.Code,
				"unsupported methods must look like unknown routes")
		})
	}
}

// ---- X-Trace-ID is always present in the response ----

func TestInit_TraceIDHeader_AlwaysSet(t *testing.T) {
	router := newTestHandler(t).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get("X-Trace-ID"))
}

func TestInit_TraceIDHeader_EchoedFromRequest(t *testing.T) {
	router := newTestHandler(t).Init()
	const customTraceID = "my-custom-trace-id-12345"

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set("X-Trace-ID", customTraceID)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, customTraceID, rr.Header().Get("X-Trace-ID"))
}

// ---- Contact responses are compressed on request ----

func TestInit_ContactRoutes_GzipWhenAccepted(t *testing.T) {
	th := newTestHandler(t)
	router := th.Init()

	th.contacts.EXPECT().ListContacts(gomock.Any()).Return([]models.Contact{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
}

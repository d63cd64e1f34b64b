package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func contactsRouter() *chi.Mux {
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

	router := chi.NewRouter()
	router.Get("/api/contacts", ok)
	router.Post("/api/contacts", ok)
	router.Get("/api/contacts/{id}", ok)
	router.Patch("/api/contacts/{id}", ok)
	router.Delete("/api/contacts/{id}", ok)
	router.MethodNotAllowed(methodNotAllowed(router))
	return router
}

func TestMethodNotAllowed(t *testing.T) {
	router := contactsRouter()

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/contacts", http.StatusOK},
		{http.MethodPost, "/api/contacts", http.StatusOK},
		{http.MethodPatch, "/api/contacts/42", http.StatusOK},
		{http.MethodDelete, "/api/contacts/42", http.StatusOK},

		{http.MethodPut, "/api/contacts", http.StatusNotFound},
		{http.MethodDelete, "/api/contacts", http.StatusNotFound},
		{http.MethodPost, "/api/contacts/42", http.StatusNotFound},
		{http.MethodPut, "/api/contacts/42", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.want, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

func TestMethodNotAllowed_BodyMatchesNotFound(t *testing.T) {
	router := contactsRouter()

	wrongMethod := httptest.NewRecorder()
	router.ServeHTTP(wrongMethod, httptest.NewRequest(http.MethodPut, "/api/contacts", nil))

	unknownPath := httptest.NewRecorder()
	router.ServeHTTP(unknownPath, httptest.NewRequest(http.MethodGet, "/api/nothing", nil))

	assert.Equal(t, unknownPath.Code, wrongMethod.Code)
	assert.Equal(t, unknownPath.Body.String(), wrongMethod.Body.String())
}

func TestAllowedMethods(t *testing.T) {
	router := contactsRouter()

	assert.Equal(t, []string{http.MethodGet, http.MethodPost}, allowedMethods(router, "/api/contacts"))
	assert.Equal(t, []string{http.MethodGet, http.MethodPatch, http.MethodDelete}, allowedMethods(router, "/api/contacts/42"))
	assert.Empty(t, allowedMethods(router, "/api/unknown"))
}

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)

	router.Get("/metrics", h.writeMetrics)
	router.Get("/api/version", h.getServerVersion)

	// contact records
	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/api/contacts", h.listContacts)
		r.Post("/api/contacts", h.createContact)
		r.Get("/api/contacts/export.xlsx", h.exportContacts)
		r.Get("/api/contacts/{id}", h.getContact)
		r.Patch("/api/contacts/{id}", h.updateContact)
		r.Delete("/api/contacts/{id}", h.deleteContact)
		r.Post("/api/contacts/{id}/image", h.linkImage)
	})

	// image upload and download
	router.Post("/api/media/upload-url", h.createUploadSlot)
	router.Post("/api/media/upload/{token}", h.uploadImage)
	router.Get("/api/files/{storageID}", h.serveFile)

	router.MethodNotAllowed(methodNotAllowed(router))

	return router
}

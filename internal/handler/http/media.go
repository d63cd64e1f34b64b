package http

import (
	"net/http"

	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createUploadSlot(w http.ResponseWriter, r *http.Request) {
	slot, err := h.services.MediaService.CreateUploadSlot(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.createUploadSlot", err)
		return
	}

	utils.WriteJSON(w, slot, http.StatusCreated)
}

// uploadImage stores the raw request body in the slot named by the token.
func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	ref, err := h.services.MediaService.StoreUpload(
		r.Context(),
		chi.URLParam(r, "token"),
		r.Header.Get("Content-Type"),
		r.Body,
	)
	if err != nil {
		writeError(w, r, "*Handler.uploadImage", err)
		return
	}

	utils.WriteJSON(w, ref, http.StatusCreated)
}

// serveFile serves a stored image. Images never change, so the checksum is
// a strong ETag.
func (h *Handler) serveFile(w http.ResponseWriter, r *http.Request) {
	blob, rc, err := h.services.MediaService.OpenBlob(r.Context(), chi.URLParam(r, "storageID"))
	if err != nil {
		writeError(w, r, "*Handler.serveFile", err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", blob.ContentType)
	w.Header().Set("ETag", `"`+blob.Checksum+`"`)
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	http.ServeContent(w, r, "", blob.CreatedAt, rc)
}

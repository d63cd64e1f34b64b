package http

import (
	"bytes"
	"net/http"

	"github.com/MKhiriev/go-contacts/internal/app"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/models"
	"github.com/go-chi/chi/v5"
)

const (
	maxJSONBodySize = 1 << 20

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.services.ContactService.ListContacts(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listContacts", err)
		return
	}

	utils.WriteJSON(w, contacts, http.StatusOK)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	contact, err := h.services.ContactService.GetContact(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.getContact", err)
		return
	}

	utils.WriteJSON(w, contact, http.StatusOK)
}

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var fields models.ContactFields
	if err := utils.DecodeJSON(r, &fields, maxJSONBodySize); err != nil {
		log.Err(err).Str("func", "*Handler.createContact").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	id, err := h.services.ContactService.CreateContact(r.Context(), fields)
	if err != nil {
		writeError(w, r, "*Handler.createContact", err)
		return
	}

	utils.WriteJSON(w, models.CreatedContact{ID: id}, http.StatusCreated)
}

// updateContact applies a partial update. Fields outside the patch, such as
// id and image, are dropped while decoding.
func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var patch models.ContactPatch
	if err := utils.DecodeJSON(r, &patch, maxJSONBodySize); err != nil {
		log.Err(err).Str("func", "*Handler.updateContact").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.services.ContactService.UpdateContact(r.Context(), chi.URLParam(r, "id"), patch); err != nil {
		writeError(w, r, "*Handler.updateContact", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ContactService.DeleteContact(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, "*Handler.deleteContact", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) linkImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var ref models.StorageReference
	if err := utils.DecodeJSON(r, &ref, maxJSONBodySize); err != nil {
		log.Err(err).Str("func", "*Handler.linkImage").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.services.ContactService.LinkImage(r.Context(), chi.URLParam(r, "id"), ref); err != nil {
		writeError(w, r, "*Handler.linkImage", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) exportContacts(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.services.ContactService.ExportContacts(r.Context(), &buf); err != nil {
		writeError(w, r, "*Handler.exportContacts", err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="contacts.xlsx"`)
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-contacts/internal/utils"
)

// getServerVersion answers with the bare version string, or with the full
// server info when the client asks for JSON.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		utils.WriteJSON(w, h.services.AppInfoService.GetServerInfo(r.Context()), http.StatusOK)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(h.services.AppInfoService.GetAppVersion(r.Context())))
}

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-contacts/internal/app"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/service"
	"github.com/MKhiriev/go-contacts/internal/store"
	"github.com/MKhiriev/go-contacts/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrContactNotFound:       http.StatusNotFound,
	service.ErrBlobNotFound:          http.StatusNotFound,
	service.ErrInvalidUploadToken:    http.StatusNotFound,
	service.ErrSlotAlreadyUsed:       http.StatusConflict,
	service.ErrPayloadTooLarge:       http.StatusRequestEntityTooLarge,
	service.ErrEmptyUpload:           http.StatusBadRequest,
	service.ErrUnsupportedMediaType:  http.StatusUnsupportedMediaType,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	utils.ErrEmptyBody: http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the mapped status. Server-side
// failures are not described to the client.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = app.MsgInternalServerError
	}
	http.Error(w, message, status)
}

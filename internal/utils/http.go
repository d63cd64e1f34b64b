package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrEmptyBody is returned by DecodeJSON when the request has no body.
var ErrEmptyBody = errors.New("empty request body")

// WriteJSON serializes data to JSON and writes it with the given status code
// and "Content-Type: application/json".
//
// If marshaling fails, it responds with 500 Internal Server Error and returns
// a wrapped error.
//
// Parameters:
//
//	w          - response writer; headers must not be written yet
//	data       - any JSON-serializable value
//	statusCode - HTTP status sent on success
//
// Returns:
//
//	int   - number of body bytes written
//	error - marshaling or write error
//
// Example usage:
//
//	utils.WriteJSON(w, models.CreatedContact{ID: id}, http.StatusCreated)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// DecodeJSON decodes at most limit bytes of the request body into v.
// Unknown fields are ignored. A missing or empty body yields [ErrEmptyBody].
//
// Example usage:
//
//	var patch models.ContactPatch
//	if err := utils.DecodeJSON(r, &patch, maxBodySize); err != nil {
//	    http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
//	}
func DecodeJSON(r *http.Request, v any, limit int64) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}

	body := io.LimitReader(r.Body, limit)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("error decoding JSON body: %w", err)
	}

	return nil
}

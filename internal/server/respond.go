package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"edgefinder/internal/catalog"
	"edgefinder/internal/parlay"
	"edgefinder/internal/session"
)

// errorBody is the payload of every rejected request.
type errorBody struct {
	Error  string          `json:"error"`
	Notice *session.Notice `json:"notice,omitempty"`
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, session.ErrNotFound), errors.Is(err, catalog.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, parlay.ErrCapacityExceeded):
		return http.StatusConflict
	case errors.Is(err, session.ErrInvalidInput), errors.Is(err, parlay.ErrIndexOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorBody{Error: message})
}

// respondRejected writes a domain error along with the notice the intent
// produced.
func respondRejected(w http.ResponseWriter, err error, n session.Notice) {
	respondJSON(w, statusFor(err), errorBody{Error: err.Error(), Notice: &n})
}

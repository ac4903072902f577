package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/codebyfaisal/e-store-pos/internal/common"
)

// envelope is the JSON shape every endpoint responds with. Result carries
// payloads, Error carries a human-readable failure reason; the two never
// appear together.
type envelope struct {
	Success bool   `json:"success"`
	Result  any    `json:"result,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondResult(w http.ResponseWriter, status int, result any) {
	writeJSON(w, status, envelope{Success: true, Result: result})
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: true, Message: message})
}

func respondError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{Success: false, Error: msg})
}

// respondServiceError maps the sentinel errors the services return onto HTTP
// statuses. Unmatched errors become opaque 500s so internals never leak.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrSessionRevoked):
		respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, common.ErrForbidden):
		respondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, common.ErrNotFound):
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, common.ErrAlreadyExists):
		respondError(w, http.StatusConflict, "already exists")
	default:
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// idParam extracts a uuid path parameter. A malformed value cannot match any
// row, so it maps to ErrNotFound without a database round trip.
func idParam(r *http.Request, name string) (string, error) {
	id := chi.URLParam(r, name)
	if err := uuid.Validate(id); err != nil {
		return "", common.ErrNotFound
	}
	return id, nil
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/brandwave/social-backend/internal/models"
	"github.com/brandwave/social-backend/internal/store"
)

// writeJSON encodes v as JSON with the provided status code and a JSON
// content-type. Encode errors are intentionally ignored.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(v)
}

// writeError sends the JSON error body every failure path uses.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// pathVar returns the mux path var value (or empty string if missing).
func pathVar(r *http.Request, key string) string {
	return mux.Vars(r)[key]
}

// decodeJSON decodes JSON request bodies using the default decoder settings
// (no unknown-field rejection).
func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// writeStoreError maps repository failures onto the HTTP error taxonomy:
// validation 400, not-found 404, anything else 500 with the store's message.
func writeStoreError(w http.ResponseWriter, err error, notFoundMsg string) {
	var ve *models.ValidationError
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, notFoundMsg)
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Msg)
	case errors.Is(err, store.ErrDuplicateEmail):
		writeError(w, http.StatusBadRequest, "User already exists")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

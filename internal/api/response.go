package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rcase/plumbjobs/internal/app"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("encoding response", "error", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// appError maps core errors onto HTTP statuses. Validation and
// missing-record errors carry their message to the client; anything else is
// an internal error.
func appError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, app.ErrValidation):
		jsonError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, app.ErrNotFound):
		jsonError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, app.ErrNotPlacing):
		jsonError(w, http.StatusConflict, err.Error())
	default:
		slog.Error("request failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

// textResponse writes a plain-text body (clipboard exports).
func textResponse(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(text))
}

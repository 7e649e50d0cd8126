package admin

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/nradhesh/Outbreak-blockchain/pkg/e"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	l.Error("handler error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)

	switch {
	case errors.Is(err, e.ErrInvalidInput):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, e.ErrMissingIdentity):
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing caller identity"})
	case errors.Is(err, e.ErrUnauthorized):
		h.writeJSON(w, http.StatusForbidden, map[string]string{"error": "caller is not the administrator"})
	case errors.Is(err, e.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	default:
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

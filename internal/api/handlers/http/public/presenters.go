package public

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/samber/lo"

	"github.com/nradhesh/Outbreak-blockchain/internal/domain"
	"github.com/nradhesh/Outbreak-blockchain/pkg/e"
)

type nearbyItem struct {
	Location       string `json:"location"`
	InfectedCount  uint64 `json:"infected_count"`
	DistanceMeters uint64 `json:"distance_m"`
}

type nearbyResponse struct {
	Outbreaks []nearbyItem `json:"outbreaks"`
	Total     int          `json:"total"`
}

func presentNearby(near []domain.NearbyOutbreak) nearbyResponse {
	items := lo.Map(near, func(n domain.NearbyOutbreak, _ int) nearbyItem {
		return nearbyItem{
			Location:       n.Location,
			InfectedCount:  n.InfectedCount,
			DistanceMeters: n.DistanceMeters,
		}
	})
	return nearbyResponse{Outbreaks: items, Total: len(items)}
}

// presentLocations keeps the parallel lists and never encodes them as null.
func presentLocations(l domain.OutbreakLocations) domain.OutbreakLocations {
	return domain.OutbreakLocations{
		Locations: lo.Ternary(l.Locations == nil, []string{}, l.Locations),
		Counts:    lo.Ternary(l.Counts == nil, []uint64{}, l.Counts),
	}
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	switch {
	case errors.Is(err, e.ErrParse), errors.Is(err, e.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, e.ErrMissingIdentity):
		status = http.StatusUnauthorized
	case errors.Is(err, e.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, e.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, e.ErrConflict):
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
	}

	l := h.log(r)
	if status == http.StatusInternalServerError {
		l.Error("handler error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		h.writeJSON(w, status, map[string]string{"error": "internal error"})
		return
	}

	l.Debug("request rejected", slog.Int("status", status), slog.Any("error", err))
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}

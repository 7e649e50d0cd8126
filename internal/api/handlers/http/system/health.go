package system

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"log/slog"
)

// Pinger is a backing dependency checked by the health endpoint.
type Pinger interface {
	Name() string
	Ping(ctx context.Context) error
}

type Handler struct {
	logger  *slog.Logger
	pingers []Pinger
}

func NewHandler(logger *slog.Logger, pingers ...Pinger) *Handler {
	return &Handler{logger: logger, pingers: pingers}
}

// SystemHealth answers 200 with per-dependency status, or 503 when any
// dependency fails its ping.
func (h *Handler) SystemHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	code := http.StatusOK
	checks := make(map[string]string, len(h.pingers))
	for _, p := range h.pingers {
		if err := p.Ping(ctx); err != nil {
			h.logger.Warn("health check failed", slog.String("dependency", p.Name()), slog.Any("error", err))
			checks[p.Name()] = "down"
			code = http.StatusServiceUnavailable
			continue
		}
		checks[p.Name()] = "ok"
	}

	status := "ok"
	if code != http.StatusOK {
		status = "degraded"
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{"status": status, "checks": checks})
}

package admin

import (
	"context"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/nradhesh/Outbreak-blockchain/internal/domain"
	"github.com/nradhesh/Outbreak-blockchain/internal/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type RadiusAdmin interface {
	SetOutbreakRadius(ctx context.Context, caller domain.Identity, req domain.SetRadiusRequest) error
	OutbreakRadius(ctx context.Context) uint64
}

type Handler struct {
	logger *slog.Logger
	Radius RadiusAdmin
}

func NewHandler(logger *slog.Logger, radius RadiusAdmin) *Handler {
	return &Handler{
		logger: logger,
		Radius: radius,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) AdminRadiusGet(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, domain.RadiusResponse{RadiusMeters: h.Radius.OutbreakRadius(r.Context())})
}

func (h *Handler) AdminRadiusSet(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	caller := middleware.IdentityFromContext(r.Context())

	req, err := middleware.DecodeJSON[domain.SetRadiusRequest](w, r)
	if err != nil {
		l.Warn("invalid radius request", slog.String("error", err.Error()))
		h.handleError(w, r, err)
		return
	}

	l.Info("updating outbreak radius",
		slog.String("identity", string(caller)),
		slog.Uint64("radius_m", *req.RadiusMeters),
	)

	if err := h.Radius.SetOutbreakRadius(r.Context(), caller, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domain.RadiusResponse{RadiusMeters: *req.RadiusMeters})
}

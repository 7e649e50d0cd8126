package public

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/nradhesh/Outbreak-blockchain/internal/domain"
	"github.com/nradhesh/Outbreak-blockchain/internal/middleware"
	"github.com/nradhesh/Outbreak-blockchain/pkg/e"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type OutbreakService interface {
	ReportInfection(ctx context.Context, caller domain.Identity, req domain.ReportInfectionRequest) error
	ReportLocation(ctx context.Context, caller domain.Identity, req domain.ReportLocationRequest) error
	CheckProximity(ctx context.Context, location string) (domain.ProximityResult, error)
	CheckExposureRisk(ctx context.Context, req domain.ExposureRequest) (domain.ExposureResult, error)
	InfectedCount(ctx context.Context) uint64
	OutbreakLocationsCount(ctx context.Context) uint64
	AllOutbreakLocations(ctx context.Context) domain.OutbreakLocations
	Outbreak(ctx context.Context, location string) (domain.OutbreakEntry, error)
	OutbreaksNear(ctx context.Context, location string) ([]domain.NearbyOutbreak, error)
	Distance(ctx context.Context, from, to string) (uint64, error)
}

type Handler struct {
	logger    *slog.Logger
	Outbreaks OutbreakService
}

func NewHandler(logger *slog.Logger, outbreaks OutbreakService) *Handler {
	return &Handler{
		logger:    logger,
		Outbreaks: outbreaks,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// POST /infections
func (h *Handler) ReportInfection(w http.ResponseWriter, r *http.Request) {
	caller := middleware.IdentityFromContext(r.Context())

	req, err := middleware.DecodeJSON[domain.ReportInfectionRequest](w, r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("infection report",
		slog.String("identity", string(caller)),
		slog.String("location", req.Location),
		slog.Bool("positive", *req.Positive),
	)

	if err := h.Outbreaks.ReportInfection(r.Context(), caller, req); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /locations
func (h *Handler) ReportLocation(w http.ResponseWriter, r *http.Request) {
	caller := middleware.IdentityFromContext(r.Context())

	req, err := middleware.DecodeJSON[domain.ReportLocationRequest](w, r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.Outbreaks.ReportLocation(r.Context(), caller, req); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// GET /proximity?location=
func (h *Handler) CheckProximity(w http.ResponseWriter, r *http.Request) {
	res, err := h.Outbreaks.CheckProximity(r.Context(), r.URL.Query().Get("location"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

// GET /exposure?location=&threshold_seconds=
func (h *Handler) CheckExposure(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	threshold, err := strconv.ParseUint(q.Get("threshold_seconds"), 10, 64)
	if err != nil {
		h.handleError(w, r, fmt.Errorf("%w: threshold_seconds must be a non-negative integer", e.ErrInvalidInput))
		return
	}

	res, err := h.Outbreaks.CheckExposureRisk(r.Context(), domain.ExposureRequest{
		Location:         q.Get("location"),
		ThresholdSeconds: threshold,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

// GET /infections/count
func (h *Handler) InfectedCount(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, domain.CountResponse{Count: h.Outbreaks.InfectedCount(r.Context())})
}

// GET /outbreaks/count
func (h *Handler) OutbreakLocationsCount(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, domain.CountResponse{Count: h.Outbreaks.OutbreakLocationsCount(r.Context())})
}

// GET /outbreaks
func (h *Handler) AllOutbreakLocations(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, presentLocations(h.Outbreaks.AllOutbreakLocations(r.Context())))
}

// GET /outbreaks/lookup?location=
func (h *Handler) Outbreak(w http.ResponseWriter, r *http.Request) {
	entry, err := h.Outbreaks.Outbreak(r.Context(), r.URL.Query().Get("location"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, entry)
}

// GET /outbreaks/nearby?location=
func (h *Handler) OutbreaksNear(w http.ResponseWriter, r *http.Request) {
	near, err := h.Outbreaks.OutbreaksNear(r.Context(), r.URL.Query().Get("location"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, presentNearby(near))
}

// GET /distance?from=&to=
func (h *Handler) Distance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	d, err := h.Outbreaks.Distance(r.Context(), q.Get("from"), q.Get("to"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, domain.DistanceResponse{DistanceMeters: d})
}

package public_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"log/slog"

	"github.com/golang/mock/gomock"

	"github.com/nradhesh/Outbreak-blockchain/internal/api/handlers/http/public"
	mock_public "github.com/nradhesh/Outbreak-blockchain/internal/api/handlers/http/public/mocks"
	"github.com/nradhesh/Outbreak-blockchain/internal/domain"
	"github.com/nradhesh/Outbreak-blockchain/internal/geo"
	"github.com/nradhesh/Outbreak-blockchain/internal/middleware"
	"github.com/nradhesh/Outbreak-blockchain/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func withCaller(r *http.Request, id domain.Identity) *http.Request {
	return r.WithContext(middleware.WithIdentity(r.Context(), id))
}

func TestReportInfection_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockOutbreakService(ctrl)
	h := public.NewHandler(newTestLogger(), svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/infections", bytes.NewBufferString(`{"location":"10,20","positive":true}`))
	req = withCaller(req, "alice")
	rr := httptest.NewRecorder()

	svc.EXPECT().
		ReportInfection(gomock.Any(), domain.Identity("alice"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Identity, got domain.ReportInfectionRequest) error {
			if got.Location != "10,20" || got.Positive == nil || !*got.Positive {
				t.Errorf("unexpected request: %+v", got)
			}
			return nil
		}).
		Times(1)

	h.ReportInfection(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
}

func TestReportInfection_MissingPositive_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := public.NewHandler(newTestLogger(), mock_public.NewMockOutbreakService(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/infections", bytes.NewBufferString(`{"location":"10,20"}`))
	rr := httptest.NewRecorder()

	h.ReportInfection(rr, withCaller(req, "alice"))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestReportInfection_ErrorMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"parse", &geo.ParseError{Input: "1,2,3", Reason: "invalid character"}, http.StatusBadRequest},
		{"missing identity", fmt.Errorf("op: %w", e.ErrMissingIdentity), http.StatusUnauthorized},
		{"journal down", fmt.Errorf("op: %w", e.ErrInternal), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := mock_public.NewMockOutbreakService(ctrl)
			h := public.NewHandler(newTestLogger(), svc)

			svc.EXPECT().ReportInfection(gomock.Any(), gomock.Any(), gomock.Any()).Return(tc.err).Times(1)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/infections", bytes.NewBufferString(`{"location":"1,2,3","positive":true}`))
			rr := httptest.NewRecorder()
			h.ReportInfection(rr, req)

			if rr.Code != tc.want {
				t.Fatalf("expected %d got %d body=%s", tc.want, rr.Code, rr.Body.String())
			}
			body := decodeJSON[map[string]string](t, rr)
			if body["error"] == "" {
				t.Fatalf("missing error message")
			}
		})
	}
}

func TestReportLocation_InvalidLocation_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := public.NewHandler(newTestLogger(), mock_public.NewMockOutbreakService(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/locations", bytes.NewBufferString(`{"location":"95,20"}`))
	rr := httptest.NewRecorder()
	h.ReportLocation(rr, withCaller(req, "bob"))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestReportLocation_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockOutbreakService(ctrl)
	h := public.NewHandler(newTestLogger(), svc)

	svc.EXPECT().
		ReportLocation(gomock.Any(), domain.Identity("bob"), domain.ReportLocationRequest{Location: "10.01,20"}).
		Return(nil).
		Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/locations", bytes.NewBufferString(`{"location":"10.01,20"}`))
	rr := httptest.NewRecorder()
	h.ReportLocation(rr, withCaller(req, "bob"))

	if rr.Code != http.StatusAccepted {
		t.Fatalf("expected %d got %d body=%s", http.StatusAccepted, rr.Code, rr.Body.String())
	}
}

func TestCheckProximity_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockOutbreakService(ctrl)
	h := public.NewHandler(newTestLogger(), svc)

	want := domain.ProximityResult{Found: true, Location: "10.000000,20.000000", InfectedCount: 1, DistanceMeters: 1114}
	svc.EXPECT().CheckProximity(gomock.Any(), "10.01,20").Return(want, nil).Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/proximity?location=10.01,20", nil)
	rr := httptest.NewRecorder()
	h.CheckProximity(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
	if got := decodeJSON[domain.ProximityResult](t, rr); got != want {
		t.Fatalf("unexpected response: got=%+v want=%+v", got, want)
	}
}

func TestCheckExposure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockOutbreakService(ctrl)
	h := public.NewHandler(newTestLogger(), svc)

	want := domain.ExposureResult{Exposed: true, ExposureCount: 2}
	svc.EXPECT().
		CheckExposureRisk(gomock.Any(), domain.ExposureRequest{Location: "10,20", ThresholdSeconds: 3600}).
		Return(want, nil).
		Times(1)

	rr := httptest.NewRecorder()
	h.CheckExposure(rr, httptest.NewRequest(http.MethodGet, "/api/v1/exposure?location=10,20&threshold_seconds=3600", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
	if got := decodeJSON[domain.ExposureResult](t, rr); got != want {
		t.Fatalf("unexpected response: got=%+v want=%+v", got, want)
	}

	rr = httptest.NewRecorder()
	h.CheckExposure(rr, httptest.NewRequest(http.MethodGet, "/api/v1/exposure?location=10,20&threshold_seconds=-1", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestCounts(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockOutbreakService(ctrl)
	h := public.NewHandler(newTestLogger(), svc)

	svc.EXPECT().InfectedCount(gomock.Any()).Return(uint64(7))
	svc.EXPECT().OutbreakLocationsCount(gomock.Any()).Return(uint64(3))

	rr := httptest.NewRecorder()
	h.InfectedCount(rr, httptest.NewRequest(http.MethodGet, "/api/v1/infections/count", nil))
	if got := decodeJSON[domain.CountResponse](t, rr); got.Count != 7 {
		t.Fatalf("infected count: got %d", got.Count)
	}

	rr = httptest.NewRecorder()
	h.OutbreakLocationsCount(rr, httptest.NewRequest(http.MethodGet, "/api/v1/outbreaks/count", nil))
	if got := decodeJSON[domain.CountResponse](t, rr); got.Count != 3 {
		t.Fatalf("outbreak count: got %d", got.Count)
	}
}

func TestAllOutbreakLocations_EmptyIsNotNull(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockOutbreakService(ctrl)
	h := public.NewHandler(newTestLogger(), svc)

	svc.EXPECT().AllOutbreakLocations(gomock.Any()).Return(domain.OutbreakLocations{})

	rr := httptest.NewRecorder()
	h.AllOutbreakLocations(rr, httptest.NewRequest(http.MethodGet, "/api/v1/outbreaks", nil))

	want := "{\"locations\":[],\"counts\":[]}\n"
	if rr.Body.String() != want {
		t.Fatalf("got %q want %q", rr.Body.String(), want)
	}
}

func TestOutbreakLookup_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockOutbreakService(ctrl)
	h := public.NewHandler(newTestLogger(), svc)

	svc.EXPECT().Outbreak(gomock.Any(), "1,1").Return(domain.OutbreakEntry{}, e.ErrNotFound)

	rr := httptest.NewRecorder()
	h.Outbreak(rr, httptest.NewRequest(http.MethodGet, "/api/v1/outbreaks/lookup?location=1,1", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d", http.StatusNotFound, rr.Code)
	}
}

func TestOutbreaksNear(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockOutbreakService(ctrl)
	h := public.NewHandler(newTestLogger(), svc)

	svc.EXPECT().OutbreaksNear(gomock.Any(), "10,20").Return([]domain.NearbyOutbreak{
		{OutbreakEntry: domain.OutbreakEntry{Location: "10.000000,20.000000", InfectedCount: 2, LastUpdatedAt: 5}, DistanceMeters: 0},
		{OutbreakEntry: domain.OutbreakEntry{Location: "10.005000,20.000000", InfectedCount: 1, LastUpdatedAt: 6}, DistanceMeters: 560},
	}, nil)

	rr := httptest.NewRecorder()
	h.OutbreaksNear(rr, httptest.NewRequest(http.MethodGet, "/api/v1/outbreaks/nearby?location=10,20", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}

	type item struct {
		Location       string `json:"location"`
		InfectedCount  uint64 `json:"infected_count"`
		DistanceMeters uint64 `json:"distance_m"`
	}
	got := decodeJSON[struct {
		Outbreaks []item `json:"outbreaks"`
		Total     int    `json:"total"`
	}](t, rr)

	want := []item{
		{"10.000000,20.000000", 2, 0},
		{"10.005000,20.000000", 1, 560},
	}
	if got.Total != 2 || !reflect.DeepEqual(got.Outbreaks, want) {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestDistance(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockOutbreakService(ctrl)
	h := public.NewHandler(newTestLogger(), svc)

	svc.EXPECT().Distance(gomock.Any(), "10,20", "10.01,20").Return(uint64(1114), nil)

	rr := httptest.NewRecorder()
	h.Distance(rr, httptest.NewRequest(http.MethodGet, "/api/v1/distance?from=10,20&to=10.01,20", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
	if got := decodeJSON[domain.DistanceResponse](t, rr); got.DistanceMeters != 1114 {
		t.Fatalf("unexpected distance %d", got.DistanceMeters)
	}
}

func TestDistance_OutOfRange_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockOutbreakService(ctrl)
	h := public.NewHandler(newTestLogger(), svc)

	svc.EXPECT().Distance(gomock.Any(), "95,20", "10,20").
		Return(uint64(0), e.Wrap("service.Public.Distance", &geo.ParseError{Input: "95,20", Reason: "outside ±90/±180 degrees", OutOfRange: true}))

	rr := httptest.NewRecorder()
	h.Distance(rr, httptest.NewRequest(http.MethodGet, "/api/v1/distance?from=95,20&to=10,20", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

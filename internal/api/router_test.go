package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nradhesh/Outbreak-blockchain/internal/config"
	"github.com/nradhesh/Outbreak-blockchain/internal/domain"
	"github.com/nradhesh/Outbreak-blockchain/internal/middleware"
	"github.com/nradhesh/Outbreak-blockchain/internal/registry"
	"github.com/nradhesh/Outbreak-blockchain/internal/service"
)

const testAPIKey = "test-key"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := registry.New("root", 1000, registry.WithLogger(logger))

	snapshots := service.NewSnapshotPublisher(reg, nil, logger)
	svc := service.NewService(
		service.NewAdminOutbreakService(reg, snapshots, logger),
		service.NewPublicOutbreakService(reg, snapshots, logger),
	)
	cfg := &config.Config{
		APIKey: testAPIKey,
		Http:   config.HttpConfig{Port: ":0", ShutdownTimeout: time.Second},
	}

	ctx, cancel := context.WithCancel(context.Background())
	srv := httptest.NewServer(NewServer(ctx, cfg, logger, svc).Handler())
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return srv
}

func do(t *testing.T, method, url, caller, body string, headers ...string) *http.Response {
	t.Helper()

	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, url, rd)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if caller != "" {
		req.Header.Set(middleware.IdentityHeader, caller)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return out
}

func TestRouter_ReportAndQuery(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	base := srv.URL + "/api/v1"

	if resp := do(t, http.MethodPost, base+"/infections", "alice", `{"location":"10,20","positive":true}`); resp.StatusCode != http.StatusNoContent {
		t.Fatalf("report: status %d", resp.StatusCode)
	}
	if resp := do(t, http.MethodPost, base+"/infections", "bob", `{"location":"10,20","positive":true}`); resp.StatusCode != http.StatusNoContent {
		t.Fatalf("second report: status %d", resp.StatusCode)
	}

	count := decode[domain.CountResponse](t, do(t, http.MethodGet, base+"/infections/count", "", ""))
	if count.Count != 2 {
		t.Fatalf("infected count = %d", count.Count)
	}

	listing := decode[domain.OutbreakLocations](t, do(t, http.MethodGet, base+"/outbreaks", "", ""))
	if len(listing.Locations) != 1 || listing.Locations[0] != "10,20" || listing.Counts[0] != 2 {
		t.Fatalf("unexpected listing: %+v", listing)
	}

	prox := decode[domain.ProximityResult](t, do(t, http.MethodGet, base+"/proximity?location=10.005,20", "", ""))
	if !prox.Found || prox.Location != "10,20" || prox.InfectedCount != 2 || prox.DistanceMeters != 560 {
		t.Fatalf("unexpected proximity: %+v", prox)
	}

	exp := decode[domain.ExposureResult](t, do(t, http.MethodGet, base+"/exposure?location=10,20&threshold_seconds=3600", "", ""))
	if !exp.Exposed || exp.ExposureCount != 2 {
		t.Fatalf("unexpected exposure: %+v", exp)
	}

	if resp := do(t, http.MethodGet, base+"/outbreaks/lookup?location=11,20", "", ""); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("lookup miss: status %d", resp.StatusCode)
	}
}

func TestRouter_Distance(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	base := srv.URL + "/api/v1"

	got := decode[domain.DistanceResponse](t, do(t, http.MethodGet, base+"/distance?from=10,20&to=10.005,20", "", ""))
	if got.DistanceMeters != 560 {
		t.Fatalf("distance = %d", got.DistanceMeters)
	}
	if resp := do(t, http.MethodGet, base+"/distance?from=95,20&to=10,20", "", ""); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("out of range: status %d", resp.StatusCode)
	}
}

func TestRouter_ReportRequiresIdentity(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	resp := do(t, http.MethodPost, srv.URL+"/api/v1/infections", "", `{"location":"10,20","positive":true}`)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestRouter_MalformedLocation(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	resp := do(t, http.MethodPost, srv.URL+"/api/v1/infections", "alice", `{"location":"10;20","positive":true}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if resp := do(t, http.MethodGet, srv.URL+"/api/v1/proximity?location=abc", "", ""); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestRouter_AdminRadius(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	url := srv.URL + "/api/v1/admin/radius"

	if resp := do(t, http.MethodPut, url, "root", `{"radius_m":50}`); resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("missing api key: expected 401, got %d", resp.StatusCode)
	}
	if resp := do(t, http.MethodPut, url, "mallory", `{"radius_m":50}`, middleware.APIKeyHeader, testAPIKey); resp.StatusCode != http.StatusForbidden {
		t.Fatalf("non-admin: expected 403, got %d", resp.StatusCode)
	}
	if resp := do(t, http.MethodPut, url, "root", `{"radius_m":50}`, middleware.APIKeyHeader, testAPIKey); resp.StatusCode != http.StatusOK {
		t.Fatalf("admin: expected 200, got %d", resp.StatusCode)
	}

	got := decode[domain.RadiusResponse](t, do(t, http.MethodGet, url, "", "", middleware.APIKeyHeader, testAPIKey))
	if got.RadiusMeters != 50 {
		t.Fatalf("radius = %d", got.RadiusMeters)
	}
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	if resp := do(t, http.MethodGet, srv.URL+"/api/v1/health", "", ""); resp.StatusCode != http.StatusOK {
		t.Fatalf("health: status %d", resp.StatusCode)
	}
}

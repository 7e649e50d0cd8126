package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/nradhesh/Outbreak-blockchain/internal/api/handlers/http/admin"
	"github.com/nradhesh/Outbreak-blockchain/internal/api/handlers/http/public"
	"github.com/nradhesh/Outbreak-blockchain/internal/api/handlers/http/system"
	"github.com/nradhesh/Outbreak-blockchain/internal/config"
	"github.com/nradhesh/Outbreak-blockchain/internal/middleware"
	"github.com/nradhesh/Outbreak-blockchain/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, svc *service.Service, pingers ...system.Pinger) *Server {
	adminHandler := admin.NewHandler(logger, svc.AdminOutbreakService)
	publicHandler := public.NewHandler(logger, svc.PublicOutbreakService)
	systemHandler := system.NewHandler(logger, pingers...)

	r := InitRouter(ctx, cfg, adminHandler, publicHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func (s *Server) Handler() http.Handler { return s.router }

// InitRouter builds the route tree. ctx bounds the rate limiters' cleanup.
func InitRouter(ctx context.Context, cfg *config.Config, adminHandler *admin.Handler, publicHandler *public.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)
	r.Use(middleware.Identity)

	r.Route("/api/v1", func(api chi.Router) {
		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			ar.Use(middleware.Limit(ctx, 2, 5, 10*time.Minute, logger))

			ar.Get("/radius", adminHandler.AdminRadiusGet)
			ar.Put("/radius", adminHandler.AdminRadiusSet)
		})

		// PUBLIC: writes
		api.Group(func(wr chi.Router) {
			wr.Use(middleware.Limit(ctx, 5, 10, 5*time.Minute, logger))
			wr.Post("/infections", publicHandler.ReportInfection)
			wr.Post("/locations", publicHandler.ReportLocation)
		})

		// PUBLIC: reads
		api.Group(func(rr chi.Router) {
			rr.Use(middleware.Limit(ctx, 10, 20, 5*time.Minute, logger))
			rr.Get("/infections/count", publicHandler.InfectedCount)
			rr.Get("/proximity", publicHandler.CheckProximity)
			rr.Get("/exposure", publicHandler.CheckExposure)
			rr.Get("/distance", publicHandler.Distance)

			rr.Route("/outbreaks", func(or chi.Router) {
				or.Get("/", publicHandler.AllOutbreakLocations)
				or.Get("/count", publicHandler.OutbreakLocationsCount)
				or.Get("/nearby", publicHandler.OutbreaksNear)
				or.Get("/lookup", publicHandler.Outbreak)
			})
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}

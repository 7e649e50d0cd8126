package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nradhesh/Outbreak-blockchain/internal/domain"
	"github.com/nradhesh/Outbreak-blockchain/internal/geo"
	"github.com/nradhesh/Outbreak-blockchain/pkg/e"
)

type publicOutbreakService struct {
	registry OutbreakRegistry
	snapshot *SnapshotPublisher
	logger   *slog.Logger
}

func NewPublicOutbreakService(registry OutbreakRegistry, snapshot *SnapshotPublisher, logger *slog.Logger) PublicOutbreakService {
	return &publicOutbreakService{
		registry: registry,
		snapshot: snapshot,
		logger:   logger,
	}
}

func (s *publicOutbreakService) ReportInfection(ctx context.Context, caller domain.Identity, req domain.ReportInfectionRequest) error {
	const op = "service.Public.ReportInfection"

	if caller == "" {
		return fmt.Errorf("%s: %w", op, e.ErrMissingIdentity)
	}
	if req.Positive == nil {
		return fmt.Errorf("%s: positive: %w", op, e.ErrInvalidInput)
	}

	if !*req.Positive {
		s.logger.Debug("negative report ignored", slog.String("identity", string(caller)))
		return nil
	}

	if err := s.registry.ReportInfection(ctx, caller, req.Location, true); err != nil {
		s.logger.Warn("report infection failed",
			slog.String("op", op),
			slog.String("identity", string(caller)),
			slog.String("location", req.Location),
			slog.Any("error", err),
		)
		return err
	}

	s.snapshot.Publish(ctx)
	return nil
}

func (s *publicOutbreakService) ReportLocation(ctx context.Context, caller domain.Identity, req domain.ReportLocationRequest) error {
	const op = "service.Public.ReportLocation"

	if caller == "" {
		return fmt.Errorf("%s: %w", op, e.ErrMissingIdentity)
	}

	res, err := s.registry.ReportNewLocation(caller, req.Location)
	if err != nil {
		s.logger.Warn("report location failed", slog.String("op", op), slog.Any("error", err))
		return err
	}

	if res.Found {
		s.logger.Info("proximity alert",
			slog.String("identity", string(caller)),
			slog.String("location", req.Location),
			slog.String("outbreak", res.Location),
			slog.Uint64("distance_m", res.DistanceMeters),
		)
	} else {
		s.logger.Debug("no outbreak nearby", slog.String("location", req.Location))
	}
	return nil
}

func (s *publicOutbreakService) CheckProximity(_ context.Context, location string) (domain.ProximityResult, error) {
	return s.registry.CheckProximity(location)
}

func (s *publicOutbreakService) CheckExposureRisk(_ context.Context, req domain.ExposureRequest) (domain.ExposureResult, error) {
	res, err := s.registry.CheckExposureRisk(req.Location, req.ThresholdSeconds)
	if err != nil {
		return domain.ExposureResult{}, err
	}
	s.logger.Debug("exposure checked",
		slog.Uint64("threshold_s", req.ThresholdSeconds),
		slog.Uint64("exposures", res.ExposureCount),
	)
	return res, nil
}

func (s *publicOutbreakService) InfectedCount(context.Context) uint64 {
	return s.registry.InfectedCount()
}

func (s *publicOutbreakService) OutbreakLocationsCount(context.Context) uint64 {
	return s.registry.OutbreakLocationsCount()
}

func (s *publicOutbreakService) AllOutbreakLocations(context.Context) domain.OutbreakLocations {
	return s.registry.AllOutbreakLocations()
}

func (s *publicOutbreakService) Outbreak(_ context.Context, location string) (domain.OutbreakEntry, error) {
	return s.registry.Outbreak(location)
}

func (s *publicOutbreakService) OutbreaksNear(_ context.Context, location string) ([]domain.NearbyOutbreak, error) {
	return s.registry.OutbreaksNear(location)
}

func (s *publicOutbreakService) Distance(_ context.Context, from, to string) (uint64, error) {
	const op = "service.Public.Distance"

	d, err := geo.Distance(from, to)
	if err != nil {
		return 0, e.Wrap(op, err)
	}
	return d, nil
}

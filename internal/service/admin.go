package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nradhesh/Outbreak-blockchain/internal/domain"
	"github.com/nradhesh/Outbreak-blockchain/pkg/e"
)

type AdminService struct {
	registry OutbreakRegistry
	snapshot *SnapshotPublisher
	logger   *slog.Logger
}

func NewAdminOutbreakService(registry OutbreakRegistry, snapshot *SnapshotPublisher, logger *slog.Logger) *AdminService {
	return &AdminService{
		registry: registry,
		snapshot: snapshot,
		logger:   logger,
	}
}

func (s *AdminService) SetOutbreakRadius(ctx context.Context, caller domain.Identity, req domain.SetRadiusRequest) error {
	const op = "service.Admin.SetOutbreakRadius"

	if caller == "" {
		return fmt.Errorf("%s: %w", op, e.ErrMissingIdentity)
	}
	if req.RadiusMeters == nil {
		return fmt.Errorf("%s: radius_m: %w", op, e.ErrInvalidInput)
	}

	if err := s.registry.SetOutbreakRadius(ctx, caller, *req.RadiusMeters); err != nil {
		s.logger.Warn("set radius rejected",
			slog.String("op", op),
			slog.String("identity", string(caller)),
			slog.Any("error", err),
		)
		return err
	}

	s.snapshot.Publish(ctx)
	return nil
}

func (s *AdminService) OutbreakRadius(context.Context) uint64 {
	return s.registry.OutbreakRadius()
}

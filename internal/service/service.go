package service

import (
	"context"

	"github.com/nradhesh/Outbreak-blockchain/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// OutbreakRegistry is the deterministic core the use cases run against.
type OutbreakRegistry interface {
	ReportInfection(ctx context.Context, caller domain.Identity, location string, positive bool) error
	ReportNewLocation(caller domain.Identity, location string) (domain.ProximityResult, error)
	CheckProximity(location string) (domain.ProximityResult, error)
	CheckExposureRisk(location string, thresholdSeconds uint64) (domain.ExposureResult, error)
	SetOutbreakRadius(ctx context.Context, caller domain.Identity, radius uint64) error
	OutbreakRadius() uint64
	InfectedCount() uint64
	OutbreakLocationsCount() uint64
	AllOutbreakLocations() domain.OutbreakLocations
	Outbreak(location string) (domain.OutbreakEntry, error)
	OutbreaksNear(location string) ([]domain.NearbyOutbreak, error)
	OutbreakSnapshot() domain.OutbreakSnapshot
}

// SnapshotCache stores the published listing. Set keeps a cached snapshot
// whose version is not older; Replace overwrites unconditionally.
type SnapshotCache interface {
	Set(ctx context.Context, snap domain.OutbreakSnapshot) error
	Replace(ctx context.Context, snap domain.OutbreakSnapshot) error
}

// Public use cases
type PublicOutbreakService interface {
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

// Administrator use cases
type AdminOutbreakService interface {
	SetOutbreakRadius(ctx context.Context, caller domain.Identity, req domain.SetRadiusRequest) error
	OutbreakRadius(ctx context.Context) uint64
}

type Service struct {
	AdminOutbreakService  AdminOutbreakService
	PublicOutbreakService PublicOutbreakService
}

func NewService(
	adminOutbreakService AdminOutbreakService,
	publicOutbreakService PublicOutbreakService,
) *Service {
	return &Service{
		AdminOutbreakService:  adminOutbreakService,
		PublicOutbreakService: publicOutbreakService,
	}
}

package registry

import (
	"math"

	"github.com/nradhesh/Outbreak-blockchain/internal/domain"
	"github.com/nradhesh/Outbreak-blockchain/internal/geo"
	"github.com/nradhesh/Outbreak-blockchain/pkg/e"
)

// CheckProximity returns the nearest entry within the radius. On equal
// distances the earliest inserted entry wins.
func (r *Registry) CheckProximity(location string) (domain.ProximityResult, error) {
	const op = "registry.CheckProximity"

	c, err := geo.ParseLocation(location)
	if err != nil {
		return domain.ProximityResult{}, e.Wrap(op, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.nearest(c), nil
}

func (r *Registry) nearest(c geo.Coordinate) domain.ProximityResult {
	var best domain.ProximityResult
	for _, en := range r.entries {
		d := geo.DistanceBetween(c, en.coord)
		if d > r.radius {
			continue
		}
		if !best.Found || d < best.DistanceMeters {
			best = domain.ProximityResult{
				Found:          true,
				Location:       en.Location,
				InfectedCount:  en.InfectedCount,
				DistanceMeters: d,
			}
		}
	}
	return best
}

// CheckExposureRisk counts ledger records within the radius that are at most
// thresholdSeconds old. A record exactly at the boundary counts.
func (r *Registry) CheckExposureRisk(location string, thresholdSeconds uint64) (domain.ExposureResult, error) {
	const op = "registry.CheckExposureRisk"

	c, err := geo.ParseLocation(location)
	if err != nil {
		return domain.ExposureResult{}, e.Wrap(op, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	now := r.clock()
	var count uint64
	for _, rec := range r.ledger {
		if tooOld(now, rec.RecordedAt, thresholdSeconds) {
			continue
		}
		if geo.DistanceBetween(c, rec.coord) <= r.radius {
			count++
		}
	}

	return domain.ExposureResult{Exposed: count > 0, ExposureCount: count}, nil
}

func tooOld(now, recordedAt int64, threshold uint64) bool {
	age := now - recordedAt
	if age <= 0 {
		return false
	}
	if threshold > math.MaxInt64 {
		return false
	}
	return age > int64(threshold)
}

func (r *Registry) InfectedCount() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return uint64(len(r.ledger))
}

func (r *Registry) OutbreakLocationsCount() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return uint64(len(r.entries))
}

// AllOutbreakLocations lists entries in insertion order as parallel slices.
func (r *Registry) AllOutbreakLocations() domain.OutbreakLocations {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.locationsLocked()
}

// OutbreakSnapshot reads radius, ledger size and listing under one lock.
// Version grows with every committed mutation of this process, so a later
// snapshot always carries a larger version than an earlier one.
func (r *Registry) OutbreakSnapshot() domain.OutbreakSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return domain.OutbreakSnapshot{
		Version:       uint64(len(r.ledger)) + r.radiusChanges,
		RadiusMeters:  r.radius,
		InfectedCount: uint64(len(r.ledger)),
		Outbreaks:     r.locationsLocked(),
	}
}

func (r *Registry) locationsLocked() domain.OutbreakLocations {
	out := domain.OutbreakLocations{
		Locations: make([]string, len(r.entries)),
		Counts:    make([]uint64, len(r.entries)),
	}
	for i, en := range r.entries {
		out.Locations[i] = en.Location
		out.Counts[i] = en.InfectedCount
	}
	return out
}

// Outbreak looks an entry up by its exact location text.
func (r *Registry) Outbreak(location string) (domain.OutbreakEntry, error) {
	const op = "registry.Outbreak"

	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.index[location]
	if !ok {
		return domain.OutbreakEntry{}, e.Wrap(op, e.ErrNotFound)
	}
	return r.entries[idx].OutbreakEntry, nil
}

// OutbreaksNear returns every entry within the radius in insertion order.
func (r *Registry) OutbreaksNear(location string) ([]domain.NearbyOutbreak, error) {
	const op = "registry.OutbreaksNear"

	c, err := geo.ParseLocation(location)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.NearbyOutbreak, 0)
	for _, en := range r.entries {
		d := geo.DistanceBetween(c, en.coord)
		if d <= r.radius {
			out = append(out, domain.NearbyOutbreak{OutbreakEntry: en.OutbreakEntry, DistanceMeters: d})
		}
	}
	return out, nil
}

package registry

import (
	"context"
	"log/slog"

	"github.com/nradhesh/Outbreak-blockchain/internal/domain"
	"github.com/nradhesh/Outbreak-blockchain/internal/geo"
	"github.com/nradhesh/Outbreak-blockchain/pkg/e"
)

// ReportInfection records a test result. Negative results are ignored.
//
// A positive result is appended to the ledger and either creates the entry
// for the exact location text (NewInfection) or bumps its count
// (PotentialOutbreak). Every other entry within the radius then produces
// one more PotentialOutbreak carrying that entry's own count; counts of
// distinct entries are never merged.
func (r *Registry) ReportInfection(ctx context.Context, caller domain.Identity, location string, positive bool) error {
	const op = "registry.ReportInfection"

	if !positive {
		return nil
	}

	c, err := geo.ParseLocation(location)
	if err != nil {
		return e.Wrap(op, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock()
	rec := domain.InfectionRecord{Identity: caller, Location: location, Positive: true, RecordedAt: now}

	idx, exists := r.index[location]
	next := domain.OutbreakEntry{Location: location, InfectedCount: 1, LastUpdatedAt: now}
	if exists {
		next.InfectedCount = r.entries[idx].InfectedCount + 1
	}

	events := make([]domain.Event, 0, 2)
	if exists {
		events = append(events, domain.PotentialOutbreak(location, next.InfectedCount, now))
	} else {
		events = append(events, domain.NewInfection(caller, location, now))
	}
	for i, en := range r.entries {
		if exists && i == idx {
			continue
		}
		if geo.DistanceBetween(c, en.coord) <= r.radius {
			events = append(events, domain.PotentialOutbreak(location, en.InfectedCount, now))
		}
	}

	if err := r.journal.AppendInfection(ctx, rec, next); err != nil {
		return e.Wrap(op, err)
	}

	r.ledger = append(r.ledger, record{InfectionRecord: rec, coord: c})
	if exists {
		r.entries[idx].OutbreakEntry = next
	} else {
		r.index[location] = len(r.entries)
		r.entries = append(r.entries, entry{OutbreakEntry: next, coord: c})
	}

	r.logger.Info("infection recorded",
		slog.String("identity", string(caller)),
		slog.String("location", location),
		slog.String("coordinate", c.String()),
		slog.Uint64("infected_count", next.InfectedCount),
		slog.Int("events", len(events)),
	)

	r.emit(events)
	return nil
}

// ReportNewLocation alerts when the caller's location falls inside the
// radius of a known outbreak. It does not change state.
func (r *Registry) ReportNewLocation(caller domain.Identity, location string) (domain.ProximityResult, error) {
	const op = "registry.ReportNewLocation"

	c, err := geo.ParseLocation(location)
	if err != nil {
		return domain.ProximityResult{}, e.Wrap(op, err)
	}

	// write lock keeps alerts ordered with the other mutations
	r.mu.Lock()
	defer r.mu.Unlock()

	res := r.nearest(c)
	if !res.Found {
		return res, nil
	}

	r.emit([]domain.Event{
		domain.ProximityAlert(caller, location, res.Location, res.DistanceMeters),
		domain.PotentialOutbreak(res.Location, res.InfectedCount, r.clock()),
	})
	return res, nil
}

func (r *Registry) emit(events []domain.Event) {
	for _, ev := range events {
		r.notifier.Notify(ev)
	}
}

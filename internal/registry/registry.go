// Package registry owns the outbreak state: the outbreak entries, the
// infection ledger, the radius and the administrator. Every mutation is
// serialized behind a single lock and is applied all-or-nothing: the
// journal write happens before the in-memory commit and notifications are
// emitted only after both succeed.
package registry

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/nradhesh/Outbreak-blockchain/internal/domain"
	"github.com/nradhesh/Outbreak-blockchain/internal/geo"
	"github.com/nradhesh/Outbreak-blockchain/pkg/e"
)

// Notifier receives outbound events. Implementations must not block.
type Notifier interface {
	Notify(ev domain.Event)
}

// Journal durably records a mutation before it is committed in memory.
type Journal interface {
	AppendInfection(ctx context.Context, rec domain.InfectionRecord, entry domain.OutbreakEntry) error
	SetRadius(ctx context.Context, radius uint64) error
}

// Clock returns the current time in unix seconds.
type Clock func() int64

type entry struct {
	domain.OutbreakEntry
	coord geo.Coordinate
}

type record struct {
	domain.InfectionRecord
	coord geo.Coordinate
}

type Registry struct {
	mu sync.RWMutex

	admin   domain.Identity
	radius  uint64
	entries []entry
	index   map[string]int
	ledger  []record

	// radiusChanges counts committed radius updates since start.
	radiusChanges uint64

	journal  Journal
	notifier Notifier
	clock    Clock
	logger   *slog.Logger
}

type Option func(*Registry)

func WithJournal(j Journal) Option { return func(r *Registry) { r.journal = j } }

func WithNotifier(n Notifier) Option { return func(r *Registry) { r.notifier = n } }

func WithClock(c Clock) Option { return func(r *Registry) { r.clock = c } }

func WithLogger(l *slog.Logger) Option { return func(r *Registry) { r.logger = l } }

// New creates an empty registry.
func New(admin domain.Identity, radius uint64, opts ...Option) *Registry {
	r, _ := Restore(domain.RegistryState{Administrator: admin, OutbreakRadiusMeters: radius}, opts...)
	return r
}

// Restore rebuilds a registry from previously persisted state.
func Restore(state domain.RegistryState, opts ...Option) (*Registry, error) {
	const op = "registry.Restore"

	r := &Registry{
		admin:    state.Administrator,
		radius:   state.OutbreakRadiusMeters,
		entries:  make([]entry, 0, len(state.Entries)),
		index:    make(map[string]int, len(state.Entries)),
		ledger:   make([]record, 0, len(state.Ledger)),
		journal:  nopJournal{},
		notifier: nopNotifier{},
		clock:    func() int64 { return time.Now().Unix() },
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, en := range state.Entries {
		c, err := geo.ParseLocation(en.Location)
		if err != nil {
			return nil, fmt.Errorf("%s: entry: %w", op, err)
		}
		if _, dup := r.index[en.Location]; dup {
			return nil, fmt.Errorf("%s: duplicate entry %q: %w", op, en.Location, e.ErrConflict)
		}
		r.index[en.Location] = len(r.entries)
		r.entries = append(r.entries, entry{OutbreakEntry: en, coord: c})
	}
	for _, rec := range state.Ledger {
		c, err := geo.ParseLocation(rec.Location)
		if err != nil {
			return nil, fmt.Errorf("%s: ledger: %w", op, err)
		}
		r.ledger = append(r.ledger, record{InfectionRecord: rec, coord: c})
	}

	return r, nil
}

func (r *Registry) Administrator() domain.Identity {
	return r.admin
}

func (r *Registry) OutbreakRadius() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.radius
}

// SetOutbreakRadius changes the radius. Only the administrator may call it.
func (r *Registry) SetOutbreakRadius(ctx context.Context, caller domain.Identity, radius uint64) error {
	const op = "registry.SetOutbreakRadius"

	if caller != r.admin {
		return fmt.Errorf("%s: caller %q: %w", op, caller, e.ErrUnauthorized)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.journal.SetRadius(ctx, radius); err != nil {
		return e.Wrap(op, err)
	}
	r.radius = radius
	r.radiusChanges++

	r.logger.Info("outbreak radius changed", slog.Uint64("radius_m", radius))
	return nil
}

// Snapshot copies the full state.
func (r *Registry) Snapshot() domain.RegistryState {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st := domain.RegistryState{
		Administrator:        r.admin,
		OutbreakRadiusMeters: r.radius,
		Entries:              make([]domain.OutbreakEntry, len(r.entries)),
		Ledger:               make([]domain.InfectionRecord, len(r.ledger)),
	}
	for i, en := range r.entries {
		st.Entries[i] = en.OutbreakEntry
	}
	for i, rec := range r.ledger {
		st.Ledger[i] = rec.InfectionRecord
	}
	return st
}

type nopJournal struct{}

func (nopJournal) AppendInfection(context.Context, domain.InfectionRecord, domain.OutbreakEntry) error {
	return nil
}

func (nopJournal) SetRadius(context.Context, uint64) error { return nil }

type nopNotifier struct{}

func (nopNotifier) Notify(domain.Event) {}

package workers

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/nradhesh/Outbreak-blockchain/internal/domain"
)

// Sink delivers one notification to an external channel.
type Sink interface {
	Name() string
	Publish(ctx context.Context, n domain.Notification) error
}

// Dispatcher is the outbound notification port. Notify never blocks: events
// go to a bounded buffer drained by a pool of workers, and an event that
// does not fit is dropped with a warning. With a single worker events reach
// each sink in emission order.
type Dispatcher struct {
	logger   *slog.Logger
	sinks    []Sink
	events   chan domain.Event
	poolSize int
	drainFor time.Duration
	now      func() time.Time
	dropped  atomic.Uint64
}

func NewDispatcher(logger *slog.Logger, bufferSize, poolSize int, sinks ...Sink) *Dispatcher {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	if poolSize <= 0 {
		poolSize = 1
	}
	return &Dispatcher{
		logger:   logger,
		sinks:    sinks,
		events:   make(chan domain.Event, bufferSize),
		poolSize: poolSize,
		drainFor: 5 * time.Second,
		now:      time.Now,
	}
}

func (d *Dispatcher) Notify(ev domain.Event) {
	select {
	case d.events <- ev:
	default:
		d.dropped.Add(1)
		d.logger.Warn("notification dropped, buffer full",
			slog.String("kind", string(ev.Kind)),
			slog.String("location", ev.Location),
		)
	}
}

// Dropped reports how many events were discarded because the buffer was full.
func (d *Dispatcher) Dropped() uint64 {
	return d.dropped.Load()
}

// Run blocks until ctx is done, then flushes what is still buffered.
func (d *Dispatcher) Run(ctx context.Context) {
	d.logger.Info("dispatcher STARTED", slog.Int("workers", d.poolSize), slog.Int("sinks", len(d.sinks)))

	var wg sync.WaitGroup
	for i := 0; i < d.poolSize; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.worker(ctx)
		}()
	}
	wg.Wait()

	d.drain()
	d.logger.Info("dispatcher STOPPED", slog.Uint64("dropped", d.Dropped()))
}

func (d *Dispatcher) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-d.events:
			d.dispatch(ctx, ev)
		}
	}
}

func (d *Dispatcher) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), d.drainFor)
	defer cancel()

	for {
		select {
		case ev := <-d.events:
			d.dispatch(ctx, ev)
		default:
			return
		}
	}
}

func (d *Dispatcher) dispatch(ctx context.Context, ev domain.Event) {
	n := domain.Notification{
		ID:          uuid.New(),
		Event:       ev,
		PublishedAt: d.now().UTC(),
	}

	for _, s := range d.sinks {
		if err := s.Publish(ctx, n); err != nil {
			d.logger.Error("notification publish failed",
				slog.String("sink", s.Name()),
				slog.String("id", n.ID.String()),
				slog.String("kind", string(ev.Kind)),
				slog.Any("error", err),
			)
			continue
		}
		d.logger.Debug("notification published", slog.String("sink", s.Name()), slog.String("id", n.ID.String()))
	}
}

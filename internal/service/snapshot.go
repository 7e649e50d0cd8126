package service

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// SnapshotPublisher pushes the listing to the cache after a mutation.
// Publishes are serialized and a snapshot older than the last one written
// is skipped, so the cache never moves backwards. Failures are logged only:
// the cache is a derived read model.
type SnapshotPublisher struct {
	registry OutbreakRegistry
	cache    SnapshotCache
	logger   *slog.Logger
	now      func() time.Time

	mu        sync.Mutex
	published bool
	version   uint64
}

func NewSnapshotPublisher(registry OutbreakRegistry, cache SnapshotCache, logger *slog.Logger) *SnapshotPublisher {
	return &SnapshotPublisher{registry: registry, cache: cache, logger: logger, now: time.Now}
}

func (p *SnapshotPublisher) Publish(ctx context.Context) {
	if p == nil || p.cache == nil {
		return
	}

	snap := p.registry.OutbreakSnapshot()
	snap.UpdatedAt = p.now().UTC()

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.published && snap.Version <= p.version {
		p.logger.Debug("stale snapshot skipped",
			slog.Uint64("version", snap.Version),
			slog.Uint64("published", p.version),
		)
		return
	}
	if err := p.cache.Set(ctx, snap); err != nil {
		p.logger.Warn("snapshot publish failed", slog.Any("error", err))
		return
	}
	p.published, p.version = true, snap.Version
}

// Prime overwrites whatever is cached with the current state. The version
// counter restarts with the process, so this runs once at start.
func (p *SnapshotPublisher) Prime(ctx context.Context) error {
	const op = "service.SnapshotPublisher.Prime"

	if p == nil || p.cache == nil {
		return nil
	}

	snap := p.registry.OutbreakSnapshot()
	snap.UpdatedAt = p.now().UTC()

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.cache.Replace(ctx, snap); err != nil {
		p.logger.Warn("snapshot prime failed", slog.String("op", op), slog.Any("error", err))
		return err
	}
	p.published, p.version = true, snap.Version
	return nil
}

package workers

import (
	"context"
	"log/slog"

	"github.com/nradhesh/Outbreak-blockchain/internal/domain"
)

// LogSink writes every notification to the structured log.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Name() string { return "log" }

func (s *LogSink) Publish(_ context.Context, n domain.Notification) error {
	s.logger.Info("notification",
		slog.String("id", n.ID.String()),
		slog.String("kind", string(n.Event.Kind)),
		slog.String("identity", string(n.Event.Identity)),
		slog.String("location", n.Event.Location),
		slog.String("outbreak_location", n.Event.OutbreakLocation),
		slog.Uint64("count", n.Event.Count),
		slog.Uint64("distance_m", n.Event.DistanceMeters),
	)
	return nil
}

package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/nradhesh/Outbreak-blockchain/internal/api"
	"github.com/nradhesh/Outbreak-blockchain/internal/config"
	"github.com/nradhesh/Outbreak-blockchain/internal/domain"
	"github.com/nradhesh/Outbreak-blockchain/internal/kafka"
	"github.com/nradhesh/Outbreak-blockchain/internal/redis"
	"github.com/nradhesh/Outbreak-blockchain/internal/registry"
	"github.com/nradhesh/Outbreak-blockchain/internal/service"
	"github.com/nradhesh/Outbreak-blockchain/internal/storage/postgres"
	"github.com/nradhesh/Outbreak-blockchain/internal/workers"
	"github.com/nradhesh/Outbreak-blockchain/pkg/logger"
)

type Components struct {
	logger        *slog.Logger
	HttpServer    *api.Server
	Postgres      *postgres.Postgres
	Redis         *redis.Redis
	Kafka         *kafka.Producer
	Registry      *registry.Registry
	Dispatcher    *workers.Dispatcher
	WebhookSender *service.WebhookSender
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	c := &Components{logger: logger}

	logger.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}
	c.Postgres = storage

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		c.ShutdownAll()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}
	c.Redis = redisClient

	sinks := []workers.Sink{workers.NewLogSink(logger)}

	var queue *redis.NotificationQueue
	if !cfg.Webhook.Disabled {
		queue = redis.NewNotificationQueue(redisClient.Client, cfg.Redis.QueueKey)
		sinks = append(sinks, queue)
	}
	if cfg.Kafka.Enabled() {
		c.Kafka = kafka.NewProducer(cfg.Kafka, logger)
		sinks = append(sinks, c.Kafka)
	}

	c.Dispatcher = workers.NewDispatcher(logger, cfg.Notify.BufferSize, cfg.Notify.Workers, sinks...)

	logger.Info("Restoring outbreak registry")
	admin := domain.Identity(cfg.Outbreak.Administrator)
	state, err := storage.Registry.Bootstrap(ctx, admin, cfg.Outbreak.RadiusMeters)
	if err != nil {
		c.ShutdownAll()
		return nil, fmt.Errorf("failed to load registry state: %w", err)
	}
	if state.Administrator != admin {
		logger.Warn("stored administrator differs from OUTBREAK_ADMIN_ID, keeping stored one",
			slog.String("stored", string(state.Administrator)))
	}

	c.Registry, err = registry.Restore(state,
		registry.WithJournal(storage.RegistryJournal()),
		registry.WithNotifier(c.Dispatcher),
		registry.WithLogger(logger),
	)
	if err != nil {
		c.ShutdownAll()
		return nil, fmt.Errorf("failed to restore registry: %w", err)
	}
	logger.Info("Registry restored",
		slog.Int("entries", len(state.Entries)),
		slog.Int("ledger", len(state.Ledger)),
		slog.Uint64("radius_m", state.OutbreakRadiusMeters),
	)

	snapshots := service.NewSnapshotPublisher(c.Registry,
		redis.NewSnapshotCache(redisClient.Client, cfg.Redis.SnapshotKey, cfg.Redis.SnapshotTTL), logger)
	if err := snapshots.Prime(ctx); err != nil {
		logger.Warn("initial snapshot not published", slog.Any("error", err))
	}

	srv := service.NewService(
		service.NewAdminOutbreakService(c.Registry, snapshots, logger),
		service.NewPublicOutbreakService(c.Registry, snapshots, logger),
	)

	c.HttpServer = api.NewServer(ctx, cfg, logger, srv, storage, redisClient)
	logger.Info("Initialized server")

	if queue != nil {
		c.WebhookSender = service.NewWebhookSender(logger, cfg.Webhook, queue)
	}

	return c, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Component shutdown started")

	if c.Kafka != nil {
		if err := c.Kafka.Close(); err != nil {
			c.logger.Error("Kafka close failed", slog.String("err", err.Error()))
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}
	if c.Postgres != nil {
		c.Postgres.Close()
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}

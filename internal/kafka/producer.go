package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/nradhesh/Outbreak-blockchain/internal/config"
	"github.com/nradhesh/Outbreak-blockchain/internal/domain"
	"github.com/nradhesh/Outbreak-blockchain/pkg/e"
)

// MessageWriter is the subset of *kafka.Writer used by Producer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer streams notifications to a Kafka topic keyed by location, so all
// events for one outbreak land on the same partition.
type Producer struct {
	writer MessageWriter
	topic  string
	logger *slog.Logger
}

func NewProducer(cfg config.KafkaConfig, logger *slog.Logger) *Producer {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
	logger.Info("Kafka producer initialized", slog.Any("brokers", cfg.Brokers), slog.String("topic", cfg.Topic))
	return NewProducerWithWriter(w, cfg.Topic, logger)
}

func NewProducerWithWriter(w MessageWriter, topic string, logger *slog.Logger) *Producer {
	return &Producer{writer: w, topic: topic, logger: logger}
}

func (p *Producer) Name() string { return "kafka:" + p.topic }

func (p *Producer) Publish(ctx context.Context, n domain.Notification) error {
	const op = "kafka.Producer.Publish"

	value, err := json.Marshal(n)
	if err != nil {
		return e.Wrap(op, err)
	}

	msg := kafka.Message{
		Key:   []byte(n.Event.Location),
		Value: value,
		Time:  n.PublishedAt,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(n.Event.Kind)},
			{Key: "id", Value: []byte(n.ID.String())},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("kafka write failed", slog.String("op", op), slog.Any("error", err))
		return e.Wrap(op, err)
	}
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

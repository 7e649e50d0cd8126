package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/nradhesh/Outbreak-blockchain/internal/config"
	"github.com/nradhesh/Outbreak-blockchain/internal/domain"
	"github.com/nradhesh/Outbreak-blockchain/pkg/e"
)

type NotificationSource interface {
	BRPop(ctx context.Context, timeout time.Duration) (domain.Notification, error)
}

// WebhookSender drains the notification queue and POSTs every envelope to
// the configured URL, retrying with a linear backoff.
type WebhookSender struct {
	logger     *slog.Logger
	cfg        config.WebhookConfig
	queue      NotificationSource
	http       *http.Client
	maxRetries int
	backoff    time.Duration
}

func NewWebhookSender(logger *slog.Logger, cfg config.WebhookConfig, q NotificationSource) *WebhookSender {
	return &WebhookSender{
		logger:     logger,
		cfg:        cfg,
		queue:      q,
		http:       &http.Client{Timeout: 5 * time.Second},
		maxRetries: 3,
		backoff:    time.Second,
	}
}

func (s *WebhookSender) Run(ctx context.Context) {
	if s.cfg.Disabled {
		s.logger.Info("webhookSender DISABLED")
		return
	}
	s.logger.Info("webhookSender STARTED", slog.String("url", s.cfg.URL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("webhookSender STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		n, err := s.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrNotificationsEmpty) || ctx.Err() != nil {
				continue
			}
			s.logger.Error("BRPop failed", slog.Any("error", err))
			sleep(ctx, 500*time.Millisecond)
			continue
		}

		s.logger.Info("sending webhook", slog.String("id", n.ID.String()), slog.String("kind", string(n.Event.Kind)))
		s.sendWithRetry(ctx, n)
	}
}

func (s *WebhookSender) sendWithRetry(ctx context.Context, n domain.Notification) bool {
	body, err := json.Marshal(n)
	if err != nil {
		s.logger.Error("marshal webhook payload failed", slog.String("error", err.Error()))
		return false
	}

	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		if ctx.Err() != nil {
			s.logger.Info("stop retries due to context cancel")
			return false
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create webhook request failed", slog.String("error", err.Error()))
			return false
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Notification-Id", n.ID.String())

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return true
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}

		s.logger.Warn("webhook failed",
			slog.Int("attempt", attempt),
			slog.String("url", s.cfg.URL),
			slog.String("reason", reason),
		)

		if attempt < s.maxRetries {
			sleep(ctx, time.Duration(attempt)*s.backoff)
		}
	}

	s.logger.Error("webhook given up", slog.String("id", n.ID.String()))
	return false
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

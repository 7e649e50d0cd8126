package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nradhesh/Outbreak-blockchain/internal/domain"
	"github.com/nradhesh/Outbreak-blockchain/pkg/e"
)

// NotificationQueue is a FIFO list: LPUSH on publish, BRPOP on consume.
type NotificationQueue struct {
	client redis.Cmdable
	key    string
}

func NewNotificationQueue(client redis.Cmdable, key string) *NotificationQueue {
	return &NotificationQueue{client: client, key: key}
}

func (q *NotificationQueue) Name() string { return "redis:" + q.key }

func (q *NotificationQueue) Publish(ctx context.Context, n domain.Notification) error {
	b, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *NotificationQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.Notification, error) {
	var n domain.Notification

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return n, e.ErrNotificationsEmpty
		}
		return n, err
	}
	if len(res) < 2 {
		return n, e.ErrNotificationsEmpty
	}
	if err := json.Unmarshal([]byte(res[1]), &n); err != nil {
		return n, err
	}
	return n, nil
}

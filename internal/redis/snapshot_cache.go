package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nradhesh/Outbreak-blockchain/internal/domain"
)

// setIfNewer writes KEYS[1] (payload) and KEYS[2] (version) unless the
// stored version is greater than or equal to ARGV[1]. ARGV[3] is the TTL in
// milliseconds, 0 for none. Returns 1 when written.
var setIfNewer = redis.NewScript(`
local cur = redis.call('GET', KEYS[2])
if cur and tonumber(cur) >= tonumber(ARGV[1]) then
	return 0
end
local ttl = tonumber(ARGV[3])
if ttl > 0 then
	redis.call('SET', KEYS[1], ARGV[2], 'PX', ttl)
	redis.call('SET', KEYS[2], ARGV[1], 'PX', ttl)
else
	redis.call('SET', KEYS[1], ARGV[2])
	redis.call('SET', KEYS[2], ARGV[1])
end
return 1
`)

// SnapshotCache holds the latest outbreak listing for map renderers.
type SnapshotCache struct {
	client redis.Cmdable
	key    string
	ttl    time.Duration
}

func NewSnapshotCache(client redis.Cmdable, key string, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{client: client, key: key, ttl: ttl}
}

func (c *SnapshotCache) versionKey() string { return c.key + ":version" }

// Get returns nil without error when nothing is cached.
func (c *SnapshotCache) Get(ctx context.Context) (*domain.OutbreakSnapshot, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var snap domain.OutbreakSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Set stores snap unless the cached snapshot has the same or a newer version.
func (c *SnapshotCache) Set(ctx context.Context, snap domain.OutbreakSnapshot) error {
	_, err := c.SetIfNewer(ctx, snap)
	return err
}

// SetIfNewer is Set that also reports whether the snapshot was written.
func (c *SnapshotCache) SetIfNewer(ctx context.Context, snap domain.OutbreakSnapshot) (bool, error) {
	b, err := json.Marshal(snap)
	if err != nil {
		return false, err
	}

	n, err := setIfNewer.Run(ctx, c.client,
		[]string{c.key, c.versionKey()},
		strconv.FormatUint(snap.Version, 10), b, c.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// Replace overwrites the cached snapshot and its version.
func (c *SnapshotCache) Replace(ctx context.Context, snap domain.OutbreakSnapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, c.key, b, c.ttl)
		pipe.Set(ctx, c.versionKey(), snap.Version, c.ttl)
		return nil
	})
	return err
}

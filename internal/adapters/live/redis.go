// Package live publishes the latest fix to Redis so other processes can
// render a shared live view.
package live

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/akhilc162005/anti-location-tracker/internal/domain"
	"github.com/akhilc162005/anti-location-tracker/internal/ports"
)

// RedisPublisher keeps the newest fix under a key with a TTL and fans it
// out on a pub/sub channel. Stale keys expire on their own when tracking
// stops.
type RedisPublisher struct {
	client  *redis.Client
	key     string
	channel string
	ttl     time.Duration
}

func NewRedisPublisher(addr, key, channel string, ttl time.Duration) *RedisPublisher {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisPublisher{
		client:  client,
		key:     key,
		channel: channel,
		ttl:     ttl,
	}
}

func (p *RedisPublisher) Publish(ctx context.Context, s domain.LocationSample) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal live fix: %w", err)
	}

	pipe := p.client.Pipeline()
	pipe.Set(ctx, p.key, payload, p.ttl)
	pipe.Publish(ctx, p.channel, payload)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("publish live fix: %w", err)
	}
	return nil
}

func (p *RedisPublisher) Name() string { return "redis" }

// Close releases the underlying connection pool.
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}

var _ ports.LivePublisher = (*RedisPublisher)(nil)

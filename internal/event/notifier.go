// Package event carries entity lifecycle notifications to other subsystems
// over a pub/sub channel. Publishing is strictly best-effort: it runs only
// after a mutation has committed, and a failed publish is logged, never
// surfaced to the caller.
package event

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// Publisher publishes entity lifecycle events under a topic.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload any)
}

// Nop discards all events. Used when no broker is configured and in tests.
type Nop struct{}

// Publish implements Publisher by doing nothing.
func (Nop) Publish(context.Context, string, any) {}

// RedisPublisher publishes events as JSON on Redis pub/sub channels.
type RedisPublisher struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisPublisher creates a publisher over the given Redis client.
func NewRedisPublisher(client *redis.Client, logger *slog.Logger) *RedisPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisPublisher{client: client, logger: logger}
}

// Publish serializes the payload and publishes it on the topic channel.
// Failures are logged and swallowed: the triggering mutation has already
// committed and must not be reported as failed.
func (p *RedisPublisher) Publish(ctx context.Context, topic string, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		p.logger.ErrorContext(ctx, "event payload marshal failed",
			slog.String("topic", topic),
			slog.Any("error", err),
		)
		return
	}

	if err := p.client.Publish(ctx, topic, raw).Err(); err != nil {
		p.logger.ErrorContext(ctx, "event publish failed",
			slog.String("topic", topic),
			slog.Any("error", err),
		)
	}
}

// Package notify forwards roster events to external subscribers.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"activityroster/internal/domain"
)

type RedisConfig struct {
	Address  string
	Password string
	DB       int
	Channel  string
}

// Message is the JSON document published for every event.
type Message struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

// RedisPublisher publishes events to a Redis pub/sub channel.
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

func NewRedisPublisher(cfg RedisConfig) *RedisPublisher {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	return &RedisPublisher{client: rdb, channel: cfg.Channel}
}

func (p *RedisPublisher) Ping(ctx context.Context) error {
	if err := p.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (p *RedisPublisher) Name() string { return "redis" }

func (p *RedisPublisher) Deliver(ctx context.Context, e domain.Event) error {
	body, err := json.Marshal(Message{
		Type:       e.Type,
		OccurredAt: e.OccurredAt,
		Payload:    e.Payload,
	})
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, body).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", p.channel, err)
	}
	return nil
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}

// Package events publishes committed lifecycle transitions to a Redis
// pub/sub channel.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/ebms-backend/internal/config"
	"github.com/heartmarshall/ebms-backend/internal/domain"
)

// Publisher sends domain.StateEvent messages as JSON.
type Publisher struct {
	rdb     *goredis.Client
	channel string
	log     *slog.Logger
}

// NewPublisher connects to Redis and verifies the connection with PING.
func NewPublisher(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (*Publisher, error) {
	if cfg.Channel == "" {
		return nil, errors.New("redis channel required")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Publisher{
		rdb:     rdb,
		channel: cfg.Channel,
		log:     logger.With("adapter", "redis_events"),
	}, nil
}

// Publish sends one event on the configured channel.
func (p *Publisher) Publish(ctx context.Context, event domain.StateEvent) error {
	raw, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal state event: %w", err)
	}
	if err := p.rdb.Publish(ctx, p.channel, raw).Err(); err != nil {
		return fmt.Errorf("publish state event: %w", err)
	}
	return nil
}

// Subscribe calls onEvent for every event received until ctx is cancelled.
// It returns once the subscription is confirmed by the server.
func (p *Publisher) Subscribe(ctx context.Context, onEvent func(domain.StateEvent)) error {
	if onEvent == nil {
		return errors.New("onEvent callback required")
	}

	sub := p.rdb.Subscribe(ctx, p.channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return fmt.Errorf("redis subscribe: %w", err)
	}

	go func() {
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-ch:
				if !ok || m == nil {
					return
				}
				var event domain.StateEvent
				if err := json.Unmarshal([]byte(m.Payload), &event); err != nil {
					p.log.Warn("bad state event payload", slog.String("error", err.Error()))
					continue
				}
				onEvent(event)
			}
		}
	}()
	return nil
}

// Close releases the Redis connection pool.
func (p *Publisher) Close() error {
	return p.rdb.Close()
}

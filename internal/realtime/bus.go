package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Publisher fans a message out to every instance's hub.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
}

// LocalBus delivers straight to the in-process hub.
type LocalBus struct {
	Hub *Hub
}

func (b LocalBus) Publish(_ context.Context, msg Message) error {
	b.Hub.Broadcast(msg)
	return nil
}

// RedisBus relays messages through a Redis pub/sub channel so that clients
// connected to any instance see them.
type RedisBus struct {
	rdb     *redis.Client
	channel string
}

func NewRedisBus(rdb *redis.Client, channel string) *RedisBus {
	if channel == "" {
		channel = "furniquote:changes"
	}
	return &RedisBus{rdb: rdb, channel: channel}
}

func (b *RedisBus) Publish(ctx context.Context, msg Message) error {
	raw, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return b.rdb.Publish(ctx, b.channel, raw).Err()
}

// StartForwarder subscribes to the Redis channel and hands every message to
// onMsg until ctx is cancelled.
func (b *RedisBus) StartForwarder(ctx context.Context, onMsg func(Message)) error {
	if onMsg == nil {
		return fmt.Errorf("onMsg callback required")
	}
	sub := b.rdb.Subscribe(ctx, b.channel)
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
				var msg Message
				if err := json.Unmarshal([]byte(m.Payload), &msg); err != nil {
					rtLogger.Warn("bad realtime payload", zap.Error(err))
					continue
				}
				onMsg(msg)
			}
		}
	}()
	return nil
}

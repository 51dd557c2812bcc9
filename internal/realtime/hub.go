// Package realtime pushes project change notifications to connected clients
// over server-sent events.
package realtime

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"furniquote/internal/logx"
)

var rtLogger = logx.GetScope("realtime")

type EventKind string

const (
	EventProjectChanged EventKind = "ProjectChanged"
	EventProjectDeleted EventKind = "ProjectDeleted"
)

type Message struct {
	Channel string    `json:"channel"`
	Event   EventKind `json:"event"`
	Data    any       `json:"data,omitempty"`
}

// UserChannel is the channel a user's clients subscribe to.
func UserChannel(ownerID string) string { return "user:" + ownerID }

type Client struct {
	ID       string
	Channels map[string]bool
	Outbound chan Message
	done     chan struct{}
	once     sync.Once
}

type Hub struct {
	mu            sync.RWMutex
	subscriptions map[string]map[*Client]bool
}

func NewHub() *Hub {
	return &Hub{subscriptions: make(map[string]map[*Client]bool)}
}

// Subscribe registers a client on the given channels.
func (h *Hub) Subscribe(channels ...string) *Client {
	c := &Client{
		ID:       uuid.NewString(),
		Channels: make(map[string]bool),
		Outbound: make(chan Message, 16),
		done:     make(chan struct{}),
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range channels {
		ch = strings.TrimSpace(ch)
		if ch == "" {
			continue
		}
		c.Channels[ch] = true
		subs, ok := h.subscriptions[ch]
		if !ok {
			subs = make(map[*Client]bool)
			h.subscriptions[ch] = subs
		}
		subs[c] = true
	}
	rtLogger.Debug("client subscribed", zap.String("client", c.ID), zap.Int("channels", len(c.Channels)))
	return c
}

// Close unsubscribes c and stops its stream. Safe to call twice.
func (h *Hub) Close(c *Client) {
	c.once.Do(func() {
		h.mu.Lock()
		for ch := range c.Channels {
			if subs, ok := h.subscriptions[ch]; ok {
				delete(subs, c)
				if len(subs) == 0 {
					delete(h.subscriptions, ch)
				}
			}
		}
		h.mu.Unlock()
		close(c.done)
	})
}

// Subscribers reports how many clients listen on channel.
func (h *Hub) Subscribers(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscriptions[channel])
}

// Broadcast delivers msg to every subscriber without blocking; slow clients
// lose messages.
func (h *Hub) Broadcast(msg Message) {
	if msg.Channel == "" {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.subscriptions[msg.Channel] {
		select {
		case c.Outbound <- msg:
		default:
			rtLogger.Warn("dropping realtime message; outbound buffer full", zap.String("client", c.ID))
		}
	}
}

// Stream writes c's messages as SSE frames until ctx ends, the client is
// closed or a write fails.
func (h *Hub) Stream(ctx context.Context, w *bufio.Writer, c *Client, heartbeat time.Duration) {
	defer h.Close(c)
	if heartbeat <= 0 {
		heartbeat = 15 * time.Second
	}
	tick := time.NewTicker(heartbeat)
	defer tick.Stop()

	if _, err := fmt.Fprintf(w, ": connected %s\n\n", c.ID); err != nil || w.Flush() != nil {
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.done:
			return
		case <-tick.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil || w.Flush() != nil {
				return
			}
		case msg := <-c.Outbound:
			raw, err := json.Marshal(msg)
			if err != nil {
				rtLogger.Warn("marshal realtime message", zap.Error(err))
				continue
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", msg.Event, raw); err != nil || w.Flush() != nil {
				return
			}
		}
	}
}

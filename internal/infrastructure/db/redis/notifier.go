package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dogwalk/dogwalk-api/internal/api/metrics"
	"github.com/dogwalk/dogwalk-api/internal/core/ports"
)

const defaultChannel = "dogwalk:notifications"

// Publisher fans walk notifications out to subscribers over a Redis pub/sub
// channel. Delivery is best effort: there is no retry and no buffering, and
// a failed publish never affects the mutation that triggered it.
type Publisher struct {
	client  *redis.Client
	channel string
}

// NewPublisher creates a Publisher on the given channel. An empty channel
// name falls back to the default.
func NewPublisher(client *redis.Client, channel string) *Publisher {
	if channel == "" {
		channel = defaultChannel
	}
	return &Publisher{client: client, channel: channel}
}

// Publish serialises the notification as JSON and publishes it.
func (p *Publisher) Publish(ctx context.Context, n ports.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		metrics.NotificationsPublishedTotal.WithLabelValues(n.Event, "error").Inc()
		return fmt.Errorf("marshal notification: %w", err)
	}

	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		metrics.NotificationsPublishedTotal.WithLabelValues(n.Event, "error").Inc()
		return fmt.Errorf("publish notification: %w", err)
	}

	metrics.NotificationsPublishedTotal.WithLabelValues(n.Event, "ok").Inc()
	return nil
}

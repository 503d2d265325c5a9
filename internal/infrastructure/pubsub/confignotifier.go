// Package pubsub implements the best-effort change-event broadcast over
// redis pub/sub.
package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"gantry/internal/domain/ratelimit"
	"gantry/internal/shared/logger"
)

// ConfigUpdateChannel is the channel enforcement nodes subscribe to for
// policy change events. Events are a latency optimization only; subscribers
// reconcile by polling the policy document regardless.
const ConfigUpdateChannel = "config_update"

// RedisConfigNotifier publishes change events over redis pub/sub. There is
// no delivery guarantee and no subscriber count consumed.
type RedisConfigNotifier struct {
	client *redis.Client
	logger logger.Interface
}

var _ ratelimit.ChangeNotifier = (*RedisConfigNotifier)(nil)

func NewRedisConfigNotifier(client *redis.Client, logger logger.Interface) *RedisConfigNotifier {
	return &RedisConfigNotifier{
		client: client,
		logger: logger,
	}
}

// NotifyChange publishes one change event, stamping an event ID and emission
// timestamp when the caller has not set them.
func (n *RedisConfigNotifier) NotifyChange(ctx context.Context, event ratelimit.ChangeEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp == 0 {
		event.Timestamp = time.Now().UnixMilli()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}

	if err := n.client.Publish(ctx, ConfigUpdateChannel, data).Err(); err != nil {
		n.logger.Errorw("failed to publish change event",
			"type", event.Type,
			"event_id", event.ID,
			"error", err,
		)
		return fmt.Errorf("failed to publish change event: %w", err)
	}

	n.logger.Debugw("change event published",
		"type", event.Type,
		"event_id", event.ID,
	)
	return nil
}

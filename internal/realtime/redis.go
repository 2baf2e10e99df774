package realtime

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ChangesChannel is the Redis pub/sub channel carrying collection names.
const ChangesChannel = "portfolio:changes"

// RedisBroadcaster shares change notifications between server instances.
// Notify publishes to Redis; Run relays everything published (including this
// instance's own messages) to the local hub.
type RedisBroadcaster struct {
	client *redis.Client
	hub    *Hub
	logger *zap.SugaredLogger
}

func NewRedisBroadcaster(client *redis.Client, hub *Hub, logger *zap.SugaredLogger) *RedisBroadcaster {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &RedisBroadcaster{client: client, hub: hub, logger: logger}
}

func (b *RedisBroadcaster) Notify(ctx context.Context, collection string) error {
	if err := b.client.Publish(ctx, ChangesChannel, collection).Err(); err != nil {
		// Local subscribers still hear about it.
		b.hub.Notify(ctx, collection)
		return err
	}
	return nil
}

// Run blocks until ctx is done.
func (b *RedisBroadcaster) Run(ctx context.Context) {
	pubsub := b.client.Subscribe(ctx, ChangesChannel)
	defer pubsub.Close()

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			b.logger.Debugw("collection changed", "collection", msg.Payload)
			b.hub.Notify(ctx, msg.Payload)
		}
	}
}

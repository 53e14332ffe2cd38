package analytics

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// RedisSink publishes each event as JSON on a Pub/Sub channel.
type RedisSink struct {
	client  redis.Cmdable
	channel string
}

func NewRedisSink(client redis.Cmdable, channel string) *RedisSink {
	return &RedisSink{client: client, channel: channel}
}

func (s *RedisSink) Publish(ctx context.Context, events []Event) error {
	if s == nil || s.client == nil || len(events) == 0 {
		return nil
	}
	pipe := s.client.Pipeline()
	for _, e := range events {
		b, err := json.Marshal(e)
		if err != nil {
			return err
		}
		pipe.Publish(ctx, s.channel, b)
	}
	_, err := pipe.Exec(ctx)
	return err
}

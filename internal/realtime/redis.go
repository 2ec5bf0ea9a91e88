package realtime

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/afrilink/platform_be/internal/logger"
)

// NewRedis creates a new Redis client
func NewRedis(addr, password string) *redis.Client {
	if addr == "" {
		addr = "localhost:6379"
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	logger.Info().Str("addr", addr).Msg("redis client created")
	return rdb
}

// Publisher fans chat notifications out to other processes.
type Publisher interface {
	Publish(ctx context.Context, recipientID string, v interface{}) error
}

// NotificationChannel is the pub/sub channel for one recipient.
func NotificationChannel(recipientID string) string {
	return "notifications:" + recipientID
}

type RedisPublisher struct {
	RDB *redis.Client
}

func NewRedisPublisher(rdb *redis.Client) *RedisPublisher {
	return &RedisPublisher{RDB: rdb}
}

func (p *RedisPublisher) Publish(ctx context.Context, recipientID string, v interface{}) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return p.RDB.Publish(ctx, NotificationChannel(recipientID), payload).Err()
}

// NopPublisher is used when Redis is not configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, interface{}) error { return nil }

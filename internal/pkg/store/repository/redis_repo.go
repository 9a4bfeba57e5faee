package repository

import (
	"context"
	"time"

	"documentstore/internal/pkg/consts"

	"github.com/redis/go-redis/v9"
)

type RedisStoreAdapter struct {
	client *redis.Client
}

func NewRedisStoreAdapter(client *redis.Client) *RedisStoreAdapter {
	return &RedisStoreAdapter{client: client}
}

func (a *RedisStoreAdapter) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return a.client.Set(ctx, key, value, expiration).Err()
}

func (a *RedisStoreAdapter) Get(ctx context.Context, key string) (interface{}, error) {
	return a.client.Get(ctx, key).Bytes()
}

func (a *RedisStoreAdapter) Delete(ctx context.Context, key string) error {
	return a.client.Del(ctx, key).Err()
}

func (a *RedisStoreAdapter) Exists(ctx context.Context, key string) (bool, error) {
	val, err := a.client.Exists(ctx, key).Result()
	return val > 0, err
}

// MarkRequestProcessed records a request id so replays of the same create or
// import request can be suppressed for the marker's lifetime.
func (a *RedisStoreAdapter) MarkRequestProcessed(ctx context.Context, requestID string) error {
	key := requestMarkerKey(requestID)
	return a.Set(ctx, key, time.Now().UTC().Format(time.RFC3339), consts.RequestMarkerTTL)
}

func (a *RedisStoreAdapter) IsRequestProcessed(ctx context.Context, requestID string) (bool, error) {
	return a.Exists(ctx, requestMarkerKey(requestID))
}

func requestMarkerKey(requestID string) string {
	return consts.RequestMarkerKeyPrefix + requestID
}

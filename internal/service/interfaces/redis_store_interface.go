package interfaces

import (
	"context"
	"time"
)

type RedisStoreInterface interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (interface{}, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	MarkRequestProcessed(ctx context.Context, requestID string) error
	IsRequestProcessed(ctx context.Context, requestID string) (bool, error)
}

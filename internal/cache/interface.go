package cache

import (
	"context"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const (
	SessionKeyPrefix = "session"

	// CartSnapshotKey is where the session snapshot of both carts lives.
	CartSnapshotKey = "session:carts"
)

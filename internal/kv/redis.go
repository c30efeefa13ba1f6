package kv

import (
	"context"

	"github.com/vroommkart/storefront/pkg/redis"
)

// RedisStore keeps blobs under namespaced redis keys without expiry.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	return r.client.GetBlob(ctx, key)
}

func (r *RedisStore) Set(ctx context.Context, key, value string) error {
	return r.client.SetBlob(ctx, key, value)
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx)
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

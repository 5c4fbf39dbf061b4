package securestore

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// redisStore shares session state between kiosk devices through one Redis instance.
type redisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) Store {
	return &redisStore{client: client, prefix: prefix}
}

func (r *redisStore) Get(ctx context.Context, key string) (string, error) {
	if r.client == nil {
		return "", nil
	}
	val, err := r.client.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *redisStore) Set(ctx context.Context, key, value string) error {
	if r.client == nil {
		return nil
	}
	return r.client.Set(ctx, r.prefix+key, value, 0).Err()
}

func (r *redisStore) Delete(ctx context.Context, key string) error {
	if r.client == nil {
		return nil
	}
	return r.client.Del(ctx, r.prefix+key).Err()
}

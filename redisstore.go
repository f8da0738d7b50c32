package goldtrack

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisStore is a Store backed by a Redis instance, for users sharing state
// between machines. Keys are namespaced under "goldtrack:" and never expire:
// staleness is a property of the record, not the store.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to the Redis instance at addr (host:port).
func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{client: redis.NewClient(&redis.Options{Addr: addr})}
}

func redisKey(key string) string { return "goldtrack:" + key }

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, redisKey(key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %q: %w", key, err)
	}
	return value, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, redisKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

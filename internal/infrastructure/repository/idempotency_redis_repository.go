package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"user-service/internal/domain/idempotency"

	"github.com/go-redis/redis/v8"
)

var _ idempotency.Store = (*RedisIdempotencyRepository)(nil)

// RedisIdempotencyRepository stores replayable responses in redis, keyed by
// the request's Idempotency-Key header.
type RedisIdempotencyRepository struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewRedisIdempotencyRepository(client redis.UniversalClient) *RedisIdempotencyRepository {
	return &RedisIdempotencyRepository{
		client: client,
		prefix: "idempotency_key:",
		ttl:    24 * time.Hour,
	}
}

func (r *RedisIdempotencyRepository) Get(ctx context.Context, key string) (*idempotency.Response, bool, error) {
	val, err := r.client.Get(ctx, r.redisKey(key)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get idempotency key from redis: %w", err)
	}

	var resp idempotency.Response
	if err := json.Unmarshal([]byte(val), &resp); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal stored response: %w", err)
	}
	return &resp, true, nil
}

func (r *RedisIdempotencyRepository) Set(ctx context.Context, key string, resp *idempotency.Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal stored response: %w", err)
	}

	if err := r.client.Set(ctx, r.redisKey(key), string(data), r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store idempotency key in redis: %w", err)
	}
	return nil
}

func (r *RedisIdempotencyRepository) redisKey(key string) string {
	return r.prefix + key
}

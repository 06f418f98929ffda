package kv

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Drafts persist with a validity window; letting Redis expire them
// a day late is harmless because reads also check savedAt.
const redisTTL = 48 * time.Hour

// ConnectRedis opens and pings a Redis client from a URL.
func ConnectRedis(redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Println("✅ Redis connected successfully")
	return client, nil
}

// RedisStore adapts a Redis client to the Store boundary.
// Failures are swallowed: a failed read is "no draft available"
// and a failed write just means this save is skipped.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, bool) {
	v, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("draft read failed for %s: %v", key, err)
		}
		return "", false
	}
	return v, true
}

func (r *RedisStore) Set(ctx context.Context, key, value string) {
	if err := r.client.Set(ctx, key, value, redisTTL).Err(); err != nil {
		log.Printf("draft save failed for %s: %v", key, err)
	}
}

func (r *RedisStore) Delete(ctx context.Context, key string) {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		log.Printf("draft delete failed for %s: %v", key, err)
	}
}

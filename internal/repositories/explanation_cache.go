package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const explanationKeyPrefix = "explanation:"

// DefaultExplanationTTL keeps explanations around for a day. The same
// medicine name always yields the same answer, so a cache hit saves an
// inference round trip without going stale in any meaningful way.
const DefaultExplanationTTL = 24 * time.Hour

type RedisExplanationCache struct {
	client *redis.Client
}

func NewRedisExplanationCache(client *redis.Client) *RedisExplanationCache {
	return &RedisExplanationCache{client: client}
}

func (c *RedisExplanationCache) Get(ctx context.Context, medicineName string) (string, error) {
	explanation, err := c.client.Get(ctx, explanationKey(medicineName)).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get explanation: %w", err)
	}
	return explanation, nil
}

func (c *RedisExplanationCache) Set(ctx context.Context, medicineName, explanation string, ttl time.Duration) error {
	err := c.client.Set(ctx, explanationKey(medicineName), explanation, ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set explanation: %w", err)
	}
	return nil
}

// Helper: build Redis key for a medicine name, case-insensitive
func explanationKey(medicineName string) string {
	return explanationKeyPrefix + strings.ToLower(strings.TrimSpace(medicineName))
}

package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/avc-dev/terabis-bot/internal/model"
)

const credentialKeyPrefix = "credential:"

var (
	ErrCacheMiss = errors.New("cache miss")
)

// GetCredential читает ключ API из кеша
// Возвращает ErrCacheMiss, если записи нет
func (c *Cache) GetCredential(ctx context.Context, userID model.UserID) (model.APIKey, error) {
	key := credentialKeyPrefix + userID.String()

	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCacheMiss
		}
		return "", fmt.Errorf("redis get failed: %w", err)
	}

	return model.APIKey(value), nil
}

// SetCredential кладет ключ API в кеш с TTL
func (c *Cache) SetCredential(ctx context.Context, userID model.UserID, apiKey model.APIKey) error {
	key := credentialKeyPrefix + userID.String()

	if err := c.client.Set(ctx, key, string(apiKey), c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

// DeleteCredential инвалидирует запись кеша
// Вызывается при set/delete ключа в основном хранилище
func (c *Cache) DeleteCredential(ctx context.Context, userID model.UserID) error {
	key := credentialKeyPrefix + userID.String()

	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}

	return nil
}

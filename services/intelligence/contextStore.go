// File: service/ai/contextStore.go
package ai

import (
	"context"
	"encoding/json"
	"time"

	"ybhotels/models"
	"ybhotels/utils"

	"github.com/go-redis/redis/v8"
)

type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, sessionID string) (*models.SessionContext, error) {
	key := utils.ContextCachePrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.SessionContext{}, nil
	}
	if err != nil {
		return nil, err
	}
	var sc models.SessionContext
	if err := json.Unmarshal([]byte(data), &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (s *RedisContextStore) Set(ctx context.Context, sessionID string, sc *models.SessionContext) error {
	key := utils.ContextCachePrefix + sessionID
	sc.UpdatedAt = time.Now().UTC()
	b, err := json.Marshal(sc)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, sessionID string) error {
	key := utils.ContextCachePrefix + sessionID
	return s.client.Del(ctx, key).Err()
}

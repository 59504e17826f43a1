package cart

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Los carritos abandonados expiran solos a los 30 días.
const cartTTL = 30 * 24 * time.Hour

type redisStore struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisStore(client *redis.Client, logger *zap.Logger) Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &redisStore{client: client, logger: logger}
}

func (s *redisStore) key(sessionID string) string {
	return StorageKeyPrefix + sessionID
}

func (s *redisStore) Load(ctx context.Context, sessionID string) ([]Item, error) {
	raw, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []Item{}, nil
		}
		return nil, err
	}
	return decodeItems(s.logger, sessionID, raw), nil
}

func (s *redisStore) Save(ctx context.Context, sessionID string, items []Item) error {
	raw, err := encodeItems(items)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(sessionID), raw, cartTTL).Err()
}

func (s *redisStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.key(sessionID)).Err()
}

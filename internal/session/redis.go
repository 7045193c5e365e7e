package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"phoenix/internal/state"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const redisKeyPrefix = "session:"

type redisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Save(ctx context.Context, id string, snapshot state.Snapshot, ttl time.Duration) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal session snapshot: %w", err)
	}

	if err := s.client.Set(ctx, redisKeyPrefix+id, payload, ttl).Err(); err != nil {
		log.Error().Err(err).Str("session_id", id).Msg("failed to save session")

		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (s *redisStore) Get(ctx context.Context, id string) (state.Snapshot, error) {
	payload, err := s.client.Get(ctx, redisKeyPrefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return state.Snapshot{}, ErrNotFound
		}

		return state.Snapshot{}, fmt.Errorf("failed to get session: %w", err)
	}

	var snapshot state.Snapshot
	if err := json.Unmarshal([]byte(payload), &snapshot); err != nil {
		log.Error().Err(err).Str("session_id", id).Msg("stored session is unreadable")

		return state.Snapshot{}, ErrNotFound
	}

	return snapshot, nil
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

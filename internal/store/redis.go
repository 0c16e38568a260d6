package store

import (
	"context"
	"encoding/json"
	"fmt"

	backend "github.com/redis/go-redis/v9"

	"github.com/ewasteheroes/carbobot/internal/domain"
)

const defaultKeyPrefix = "carbobot:session:"

// RedisStore is a conversation store backed by Redis lists. It keeps the
// same bounded-trim semantics as MemoryStore; the trim runs in the same
// pipeline as the append.
type RedisStore struct {
	client   *backend.Client
	prefix   string
	maxTurns int
}

var _ ConversationStore = (*RedisStore)(nil)

// NewRedisStore creates a Redis-backed store.
func NewRedisStore(addr string, maxHistory int) *RedisStore {
	return NewRedisStoreFromClient(backend.NewClient(&backend.Options{Addr: addr}), maxHistory)
}

// NewRedisStoreFromClient creates a Redis-backed store from an existing
// client.
func NewRedisStoreFromClient(client *backend.Client, maxHistory int) *RedisStore {
	return &RedisStore{
		client:   client,
		prefix:   defaultKeyPrefix,
		maxTurns: MaxTurns(maxHistory),
	}
}

func (s *RedisStore) key(sessionID string) string {
	return s.prefix + sessionID
}

// Append pushes the turn and trims the list to the newest maxTurns entries.
func (s *RedisStore) Append(ctx context.Context, sessionID string, turn domain.Turn) error {
	data, err := json.Marshal(turn)
	if err != nil {
		return fmt.Errorf("failed to marshal turn: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.RPush(ctx, s.key(sessionID), data)
	pipe.LTrim(ctx, s.key(sessionID), int64(-s.maxTurns), -1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append to redis: %w", err)
	}

	return nil
}

// History returns the session's turns in order.
func (s *RedisStore) History(ctx context.Context, sessionID string) ([]domain.Turn, error) {
	vals, err := s.client.LRange(ctx, s.key(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read from redis: %w", err)
	}

	turns := make([]domain.Turn, 0, len(vals))
	for _, v := range vals {
		var turn domain.Turn
		if err := json.Unmarshal([]byte(v), &turn); err != nil {
			return nil, fmt.Errorf("failed to unmarshal turn: %w", err)
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

// Clear deletes the session key. Deleting a missing key is a no-op.
func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

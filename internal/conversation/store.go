package conversation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store holds ordered conversation history keyed by session id.
type Store interface {
	// Append adds a turn to the end of the session's history.
	Append(ctx context.Context, sessionID string, turn Turn) error
	// Recent returns at most the last n turns in chronological order.
	// Unknown sessions yield an empty slice, not an error.
	Recent(ctx context.Context, sessionID string, n int) ([]Turn, error)
}

// RedisStore keeps conversation history in Redis lists. History is never
// trimmed; only reads are bounded. The optional TTL implements session
// expiry — each append refreshes it.
type RedisStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed conversation store. A zero ttl
// disables expiry.
func NewRedisStore(client redis.Cmdable, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func convKey(sessionID string) string {
	return "conv:" + sessionID
}

func (s *RedisStore) Append(ctx context.Context, sessionID string, turn Turn) error {
	key := convKey(sessionID)

	data, err := json.Marshal(turn)
	if err != nil {
		return fmt.Errorf("marshaling turn: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.RPush(ctx, key, string(data))
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("pipeline exec for %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Recent(ctx context.Context, sessionID string, n int) ([]Turn, error) {
	key := convKey(sessionID)

	// LRANGE key -n -1 returns the last n elements
	vals, err := s.client.LRange(ctx, key, int64(-n), -1).Result()
	if err != nil {
		return nil, fmt.Errorf("lrange %s: %w", key, err)
	}

	turns := make([]Turn, 0, len(vals))
	for _, v := range vals {
		var turn Turn
		if err := json.Unmarshal([]byte(v), &turn); err != nil {
			continue // skip malformed entries
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

package index

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const snapshotKeyPrefix = "statute:index:"

// RedisStore snapshots built indexes into Redis so a restarted process can
// skip re-vectorizing unchanged statutes. Every failure is surfaced as an
// error and handled by the builder as a plain cache miss.
type RedisStore struct {
	client *redis.Client
	logger *zerolog.Logger
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, logger *zerolog.Logger, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, logger: logger, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context, key string) (*DocumentIndex, error) {
	raw, err := s.client.Get(ctx, snapshotKeyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Debug().Err(err).Msg("index snapshot read failed")
		}
		return nil, err
	}

	var idx DocumentIndex
	if err := json.Unmarshal(raw, &idx); err != nil {
		return nil, fmt.Errorf("decoding index snapshot: %w", err)
	}
	return &idx, nil
}

func (s *RedisStore) Save(ctx context.Context, key string, idx *DocumentIndex) error {
	raw, err := json.Marshal(idx)
	if err != nil {
		return fmt.Errorf("encoding index snapshot: %w", err)
	}
	return s.client.Set(ctx, snapshotKeyPrefix+key, raw, s.ttl).Err()
}

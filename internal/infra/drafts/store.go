package drafts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
)

const keyPrefix = "booking:draft:"

var ErrNotFound = errors.New("drafts: draft not found or expired")

// RedisStore guarda o wizard de reserva em andamento, com expiração.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func key(id uuid.UUID) string { return keyPrefix + id.String() }

// Save renova o TTL a cada gravação.
func (s *RedisStore) Save(ctx context.Context, w *booking.Wizard) error {
	b, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("drafts: encode: %w", err)
	}
	if err := s.rdb.Set(ctx, key(w.ID), b, s.ttl).Err(); err != nil {
		return fmt.Errorf("drafts: save %s: %w", w.ID, err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, id uuid.UUID) (*booking.Wizard, error) {
	b, err := s.rdb.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("drafts: load %s: %w", id, err)
	}

	var w booking.Wizard
	if err := json.Unmarshal(b, &w); err != nil {
		return nil, fmt.Errorf("drafts: decode %s: %w", id, err)
	}
	return &w, nil
}

func (s *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.rdb.Del(ctx, key(id)).Err()
}

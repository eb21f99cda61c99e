// Package cache keeps ledger snapshots in Redis, keyed by run id.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tradematch/engine/internal/domain"
	"github.com/tradematch/engine/internal/port"
)

var _ port.Cache = (*RedisCache)(nil)

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(addr, password string, db int, ttl time.Duration) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisCache{client: rdb, ttl: ttl}
}

func key(runID string) string { return "ledger:" + runID }

func (c *RedisCache) SetLedger(ctx context.Context, runID string, snap *domain.LedgerSnapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key(runID), b, c.ttl).Err()
}

func (c *RedisCache) GetLedger(ctx context.Context, runID string) (*domain.LedgerSnapshot, error) {
	b, err := c.client.Get(ctx, key(runID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var snap domain.LedgerSnapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

package in_memory

import (
	"context"
	"sync"

	"github.com/tradematch/engine/internal/domain"
	"github.com/tradematch/engine/internal/port"
)

var _ port.Cache = (*Cache)(nil)

type Cache struct {
	mu    sync.Mutex
	store map[string]*domain.LedgerSnapshot
}

func NewCache() *Cache {
	return &Cache{store: make(map[string]*domain.LedgerSnapshot)}
}

func (c *Cache) SetLedger(ctx context.Context, runID string, snap *domain.LedgerSnapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := *snap
	c.store[runID] = &cp
	return nil
}

func (c *Cache) GetLedger(ctx context.Context, runID string) (*domain.LedgerSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap, ok := c.store[runID]
	if !ok {
		return nil, nil
	}
	cp := *snap
	return &cp, nil
}

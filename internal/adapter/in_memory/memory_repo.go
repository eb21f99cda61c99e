// Package in_memory provides map-backed implementations of the storage
// ports, used in tests and when no external storage is configured.
package in_memory

import (
	"context"
	"sync"

	"github.com/tradematch/engine/internal/domain"
	"github.com/tradematch/engine/internal/port"
)

var _ port.Repository = (*MemoryRepo)(nil)

type MemoryRepo struct {
	mu      sync.Mutex
	trades  map[string][]*domain.Trade
	ledgers map[string]*domain.LedgerSnapshot
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		trades:  make(map[string][]*domain.Trade),
		ledgers: make(map[string]*domain.LedgerSnapshot),
	}
}

func (r *MemoryRepo) SaveTrade(ctx context.Context, t *domain.Trade) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trades[t.Asset] = append(r.trades[t.Asset], t)
	return nil
}

func (r *MemoryRepo) SaveLedger(ctx context.Context, snap *domain.LedgerSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *snap
	r.ledgers[snap.RunID] = &cp
	return nil
}

func (r *MemoryRepo) LoadTrades(ctx context.Context, asset string) ([]*domain.Trade, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Trade, len(r.trades[asset]))
	copy(out, r.trades[asset])
	return out, nil
}

// Ledger returns the journaled snapshot for a run id, or nil.
func (r *MemoryRepo) Ledger(runID string) *domain.LedgerSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ledgers[runID]
}

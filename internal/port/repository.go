package port

import (
	"context"

	"github.com/tradematch/engine/internal/domain"
)

// Repository journals executed trades and the final ledger of a run. It is
// optional: a nil repository means matching runs purely in memory.
type Repository interface {
	SaveTrade(ctx context.Context, t *domain.Trade) error
	SaveLedger(ctx context.Context, snap *domain.LedgerSnapshot) error
	LoadTrades(ctx context.Context, asset string) ([]*domain.Trade, error)
}

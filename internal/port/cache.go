package port

import (
	"context"

	"github.com/tradematch/engine/internal/domain"
)

// Cache keeps final ledger snapshots addressable by run id.
type Cache interface {
	SetLedger(ctx context.Context, runID string, snap *domain.LedgerSnapshot) error
	GetLedger(ctx context.Context, runID string) (*domain.LedgerSnapshot, error)
}

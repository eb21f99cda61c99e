// Package pg journals trades and final ledgers in Postgres.
package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tradematch/engine/internal/domain"
	"github.com/tradematch/engine/internal/port"
)

var _ port.Repository = (*PgRepo)(nil)

type PgRepo struct {
	pool *pgxpool.Pool
}

// NewPgRepo connects a pool to dsn. Call Close when finished.
func NewPgRepo(ctx context.Context, dsn string) (*PgRepo, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pg: create pool: %w", err)
	}
	return &PgRepo{pool: pool}, nil
}

func (p *PgRepo) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

func (p *PgRepo) SaveTrade(ctx context.Context, t *domain.Trade) error {
	if t == nil {
		return errors.New("nil trade")
	}
	_, err := p.pool.Exec(ctx, `
INSERT INTO trades(id, asset, maker_seq, taker_seq, buyer_id, seller_id, price, quantity, executed_at)
VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9)
ON CONFLICT (id) DO NOTHING
`, t.ID, t.Asset, t.MakerSeq, t.TakerSeq, t.BuyerID, t.SellerID, t.Price, t.Quantity, t.Timestamp)
	return err
}

// SaveLedger upserts every account of the snapshot in one transaction, so a
// half-written ledger is never observable.
func (p *PgRepo) SaveLedger(ctx context.Context, snap *domain.LedgerSnapshot) error {
	if snap == nil {
		return errors.New("nil snapshot")
	}
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("pg: begin: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback(ctx)
		}
	}()

	for i := range snap.Clients {
		c := &snap.Clients[i]
		if _, err := tx.Exec(ctx, `
INSERT INTO ledger(run_id, client_id, cash, created_at)
VALUES($1,$2,$3,$4)
ON CONFLICT (run_id, client_id) DO UPDATE SET cash = EXCLUDED.cash
`, snap.RunID, c.ID, c.Cash, snap.CreatedAt); err != nil {
			return err
		}
		for sym, bal := range c.Assets {
			if _, err := tx.Exec(ctx, `
INSERT INTO ledger_assets(run_id, client_id, asset, balance)
VALUES($1,$2,$3,$4)
ON CONFLICT (run_id, client_id, asset) DO UPDATE SET balance = EXCLUDED.balance
`, snap.RunID, c.ID, sym, bal); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("pg: commit: %w", err)
	}
	committed = true
	return nil
}

// LoadTrades returns the journaled trades for an asset in execution order.
func (p *PgRepo) LoadTrades(ctx context.Context, asset string) ([]*domain.Trade, error) {
	rows, err := p.pool.Query(ctx, `
SELECT id, asset, maker_seq, taker_seq, buyer_id, seller_id, price, quantity, executed_at
FROM trades
WHERE asset = $1
ORDER BY executed_at ASC
`, asset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Trade
	for rows.Next() {
		var t domain.Trade
		if err := rows.Scan(&t.ID, &t.Asset, &t.MakerSeq, &t.TakerSeq,
			&t.BuyerID, &t.SellerID, &t.Price, &t.Quantity, &t.Timestamp); err != nil {
			return nil, err
		}
		res = append(res, &t)
	}
	return res, rows.Err()
}

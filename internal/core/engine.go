package core

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tradematch/engine/internal/domain"
	"github.com/tradematch/engine/internal/port"
)

// Engine drives one batch run: it owns the ledger and both books, assigns
// sequence ids in stream arrival order, and fully resolves each incoming
// order before the next one is admitted. repo and cache are optional
// collaborators; matching results never depend on them.
type Engine struct {
	ledger *Ledger
	bids   *Book
	asks   *Book

	repo  port.Repository
	cache port.Cache
	log   *zap.SugaredLogger

	seq  uint64
	tape []*domain.Trade
}

func NewEngine(ledger *Ledger, repo port.Repository, cache port.Cache, log *zap.SugaredLogger) *Engine {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Engine{
		ledger: ledger,
		bids:   NewBook(domain.Buy),
		asks:   NewBook(domain.Sell),
		repo:   repo,
		cache:  cache,
		log:    log,
	}
}

// Run feeds the whole order stream through matching and returns the final
// ledger snapshot. Orders are processed strictly in slice order.
func (e *Engine) Run(ctx context.Context, orders []domain.Order) (*domain.LedgerSnapshot, error) {
	for i := range orders {
		e.Process(ctx, &orders[i])
	}
	snap := &domain.LedgerSnapshot{
		RunID:     uuid.NewString(),
		Clients:   e.ledger.Snapshot(),
		CreatedAt: time.Now(),
	}
	if e.repo != nil {
		if err := e.repo.SaveLedger(ctx, snap); err != nil {
			e.log.Warnw("ledger journal failed", "err", err)
		}
	}
	if e.cache != nil {
		if err := e.cache.SetLedger(ctx, snap.RunID, snap); err != nil {
			e.log.Warnw("ledger cache failed", "err", err)
		}
	}
	e.log.Infow("batch complete",
		"orders", e.seq, "trades", len(e.tape),
		"resting_bids", e.bids.Len(), "resting_asks", e.asks.Len())
	return snap, nil
}

// Process resolves a single incoming order: zero or more fills against the
// opposite book, then either discard (fully filled) or rest on its own book.
// The returned trades are in execution order.
func (e *Engine) Process(ctx context.Context, o *domain.Order) []*domain.Trade {
	e.seq++
	o.Seq = e.seq
	if o.Remaining == 0 {
		o.Remaining = o.Quantity
	}

	var own, opp *Book
	switch o.Side {
	case domain.Buy:
		own, opp = e.bids, e.asks
	case domain.Sell:
		own, opp = e.asks, e.bids
	default:
		// Side codes are validated at ingestion; reaching here means the
		// upstream contract is broken.
		panic(fmt.Sprintf("engine: order %d has unrecognized side %q", o.Seq, o.Side))
	}

	trades := e.match(o, opp)
	if o.Remaining > 0 {
		own.Insert(o)
	}

	e.tape = append(e.tape, trades...)
	for _, t := range trades {
		if e.repo != nil {
			if err := e.repo.SaveTrade(ctx, t); err != nil {
				e.log.Warnw("trade journal failed", "trade", t.ID, "err", err)
			}
		}
	}
	return trades
}

// match runs the side-parameterized matching loop against the opposite book.
// The candidate list is a snapshot taken before any mutation for this order,
// so book removals and quantity updates are collected and applied as one
// batch after the scan.
func (e *Engine) match(taker *domain.Order, opp *Book) []*domain.Trade {
	cands := opp.Candidates(taker)

	var trades []*domain.Trade
	var filled []uint64
	updated := make(map[uint64]uint64)

	for i := range cands {
		if taker.Remaining == 0 {
			break
		}
		maker := &cands[i]

		fill := min(taker.Remaining, maker.Remaining)
		buyerID, sellerID := taker.ClientID, maker.ClientID
		if taker.Side == domain.Sell {
			buyerID, sellerID = maker.ClientID, taker.ClientID
		}

		// Both legs must settle; a candidate that can't is skipped so a
		// lower-priority one gets its chance (balance-based line jumping).
		if err := e.ledger.CanAffordBuy(buyerID, maker.Price, fill); err != nil {
			e.log.Debugw("candidate skipped", "taker", taker.Seq, "maker", maker.Seq, "err", err)
			continue
		}
		if err := e.ledger.CanAffordSell(sellerID, taker.Asset, fill); err != nil {
			e.log.Debugw("candidate skipped", "taker", taker.Seq, "maker", maker.Seq, "err", err)
			continue
		}

		// The maker sets the trade price.
		e.ledger.ApplyBuy(buyerID, taker.Asset, maker.Price, fill)
		e.ledger.ApplySell(sellerID, taker.Asset, maker.Price, fill)
		taker.Remaining -= fill
		maker.Remaining -= fill

		trades = append(trades, &domain.Trade{
			ID:        uuid.NewString(),
			Asset:     taker.Asset,
			MakerSeq:  maker.Seq,
			TakerSeq:  taker.Seq,
			BuyerID:   buyerID,
			SellerID:  sellerID,
			Price:     maker.Price,
			Quantity:  fill,
			Timestamp: time.Now(),
		})

		if maker.Remaining == 0 {
			filled = append(filled, maker.Seq)
		} else {
			updated[maker.Seq] = maker.Remaining
		}
	}

	opp.Remove(filled)
	for seq, remaining := range updated {
		opp.UpdateRemaining(seq, remaining)
	}
	return trades
}

// Ledger exposes the engine's ledger for read access after (or during) a run.
func (e *Engine) Ledger() *Ledger {
	return e.ledger
}

// Books returns the bid and ask books, mainly for tests and diagnostics.
func (e *Engine) Books() (bids, asks *Book) {
	return e.bids, e.asks
}

// Trades returns every trade executed so far, in execution order.
func (e *Engine) Trades() []*domain.Trade {
	return e.tape
}

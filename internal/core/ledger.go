package core

import (
	"fmt"
	"sort"

	"github.com/tradematch/engine/internal/domain"
)

// Ledger holds every client account for a run, keyed by client id. Accounts
// are created once at load time and never removed; balances change only
// through the checked operations below.
//
// CanAffordBuy/CanAffordSell and ApplyBuy/ApplySell form a check-then-apply
// pair: callers must run the matching check immediately before the apply for
// the same fill, with no other mutation of that client in between. Under
// that contract the apply operations cannot underflow, so they don't return
// errors — a missing client there is a caller bug and panics.
type Ledger struct {
	clients map[string]*domain.Client
}

func NewLedger(records []domain.Client) *Ledger {
	l := &Ledger{clients: make(map[string]*domain.Client, len(records))}
	for i := range records {
		c := records[i].Clone()
		l.clients[c.ID] = &c
	}
	return l
}

// Lookup returns a copy of the account, or false if the id is unknown.
func (l *Ledger) Lookup(id string) (domain.Client, bool) {
	c, ok := l.clients[id]
	if !ok {
		return domain.Client{}, false
	}
	return c.Clone(), true
}

// CanAffordBuy reports whether the buyer can pay price*qty in cash.
func (l *Ledger) CanAffordBuy(buyerID string, price, qty uint64) error {
	c, ok := l.clients[buyerID]
	if !ok {
		return fmt.Errorf("buyer %q: %w", buyerID, domain.ErrMissingClient)
	}
	if c.Cash < price*qty {
		return fmt.Errorf("buyer %q: %w", buyerID, domain.ErrInsufficientCash)
	}
	return nil
}

// CanAffordSell reports whether the seller holds at least qty of the asset.
// A client that has never held the asset is treated as holding zero.
func (l *Ledger) CanAffordSell(sellerID, asset string, qty uint64) error {
	c, ok := l.clients[sellerID]
	if !ok {
		return fmt.Errorf("seller %q: %w", sellerID, domain.ErrMissingClient)
	}
	if c.Assets[asset] < qty {
		return fmt.Errorf("seller %q asset %q: %w", sellerID, asset, domain.ErrInsufficientAsset)
	}
	return nil
}

// ApplyBuy debits cash by price*qty and credits the asset by qty.
func (l *Ledger) ApplyBuy(buyerID, asset string, price, qty uint64) {
	c, ok := l.clients[buyerID]
	if !ok {
		panic(fmt.Sprintf("ledger: ApplyBuy for unknown client %q", buyerID))
	}
	c.Cash -= price * qty
	c.Assets[asset] += qty
}

// ApplySell debits the asset by qty and credits cash by price*qty.
func (l *Ledger) ApplySell(sellerID, asset string, price, qty uint64) {
	c, ok := l.clients[sellerID]
	if !ok {
		panic(fmt.Sprintf("ledger: ApplySell for unknown client %q", sellerID))
	}
	c.Assets[asset] -= qty
	c.Cash += price * qty
}

// Snapshot returns deep copies of all accounts sorted by client id.
func (l *Ledger) Snapshot() []domain.Client {
	out := make([]domain.Client, 0, len(l.clients))
	for _, c := range l.clients {
		out = append(out, c.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (l *Ledger) Len() int {
	return len(l.clients)
}

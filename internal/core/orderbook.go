package core

import (
	"fmt"
	"sort"

	"github.com/tradematch/engine/internal/domain"
)

// Book holds the resting orders of one side (all assets), keyed by sequence
// id. The sequence id is the arrival-order key, so it both addresses entries
// and breaks price ties in favour of the earlier order.
type Book struct {
	side   domain.Side
	orders map[uint64]*domain.Order
}

func NewBook(side domain.Side) *Book {
	return &Book{side: side, orders: make(map[uint64]*domain.Order)}
}

// Insert adds or replaces a resting order by sequence id.
func (b *Book) Insert(o *domain.Order) {
	cp := *o
	b.orders[cp.Seq] = &cp
}

// Remove drops the given sequence ids. Absent ids are a no-op.
func (b *Book) Remove(seqs []uint64) {
	for _, seq := range seqs {
		delete(b.orders, seq)
	}
}

// UpdateRemaining overwrites the remaining quantity of an existing entry.
// Calling it for an absent id means the caller's candidate snapshot and the
// book have diverged, which is a logic error, not a runtime condition.
func (b *Book) UpdateRemaining(seq, remaining uint64) {
	o, ok := b.orders[seq]
	if !ok {
		panic(fmt.Sprintf("book %s: UpdateRemaining for absent order %d", b.side, seq))
	}
	o.Remaining = remaining
}

// Candidates returns value copies of every resting order that could trade
// against the taker: same asset, different client, price-compatible. The
// crossing rule is asymmetric on purpose (see DESIGN.md): a resting ask
// matches at ask <= bid, a resting bid only at bid > ask.
//
// Ordering is price-time priority for the taker: best price first (asks
// ascending, bids descending), earlier sequence id on equal prices. The
// result is a fixed snapshot — callers mutate the book afterwards via
// Remove/UpdateRemaining, never through the returned slice.
func (b *Book) Candidates(taker *domain.Order) []domain.Order {
	var out []domain.Order
	for _, o := range b.orders {
		if o.Asset != taker.Asset || o.ClientID == taker.ClientID {
			continue
		}
		if !b.crosses(o.Price, taker.Price) {
			continue
		}
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Price != out[j].Price {
			if b.side == domain.Buy {
				return out[i].Price > out[j].Price
			}
			return out[i].Price < out[j].Price
		}
		return out[i].Seq < out[j].Seq
	})
	return out
}

func (b *Book) crosses(restingPrice, takerPrice uint64) bool {
	if b.side == domain.Sell {
		return restingPrice <= takerPrice
	}
	return restingPrice > takerPrice
}

// Get returns a copy of the resting order with the given sequence id.
func (b *Book) Get(seq uint64) (domain.Order, bool) {
	o, ok := b.orders[seq]
	if !ok {
		return domain.Order{}, false
	}
	return *o, true
}

func (b *Book) Len() int {
	return len(b.orders)
}

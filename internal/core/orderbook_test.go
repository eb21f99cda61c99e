package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradematch/engine/internal/domain"
)

func resting(seq uint64, clientID string, side domain.Side, asset string, price, qty uint64) *domain.Order {
	return &domain.Order{
		Seq:       seq,
		ClientID:  clientID,
		Side:      side,
		Asset:     asset,
		Price:     price,
		Quantity:  qty,
		Remaining: qty,
	}
}

func TestInsertReplacesBySeq(t *testing.T) {
	b := NewBook(domain.Sell)
	b.Insert(resting(1, "c1", domain.Sell, "X", 5, 4))
	b.Insert(resting(1, "c1", domain.Sell, "X", 5, 9))

	assert.Equal(t, 1, b.Len())
	o, ok := b.Get(1)
	require.True(t, ok)
	assert.Equal(t, uint64(9), o.Remaining)
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	b := NewBook(domain.Sell)
	b.Insert(resting(1, "c1", domain.Sell, "X", 5, 4))
	b.Remove([]uint64{1, 2, 3})
	assert.Equal(t, 0, b.Len())
}

func TestUpdateRemaining(t *testing.T) {
	b := NewBook(domain.Buy)
	b.Insert(resting(7, "c1", domain.Buy, "X", 5, 4))
	b.UpdateRemaining(7, 2)

	o, _ := b.Get(7)
	assert.Equal(t, uint64(2), o.Remaining)
}

func TestUpdateRemainingAbsentPanics(t *testing.T) {
	b := NewBook(domain.Buy)
	assert.Panics(t, func() { b.UpdateRemaining(42, 1) })
}

func TestCandidatesFiltersAssetAndClient(t *testing.T) {
	b := NewBook(domain.Sell)
	b.Insert(resting(1, "other", domain.Sell, "X", 5, 4))
	b.Insert(resting(2, "other", domain.Sell, "Y", 5, 4)) // wrong asset
	b.Insert(resting(3, "me", domain.Sell, "X", 5, 4))    // own order

	taker := resting(9, "me", domain.Buy, "X", 10, 4)
	cands := b.Candidates(taker)
	require.Len(t, cands, 1)
	assert.Equal(t, uint64(1), cands[0].Seq)
}

func TestCandidatesAskOrderingBestPriceThenSeq(t *testing.T) {
	b := NewBook(domain.Sell)
	b.Insert(resting(1, "s1", domain.Sell, "X", 7, 4))
	b.Insert(resting(2, "s2", domain.Sell, "X", 5, 4))
	b.Insert(resting(3, "s3", domain.Sell, "X", 5, 4))
	b.Insert(resting(4, "s4", domain.Sell, "X", 11, 4)) // above the bid

	taker := resting(9, "b", domain.Buy, "X", 10, 4)
	cands := b.Candidates(taker)
	require.Len(t, cands, 3)
	assert.Equal(t, []uint64{2, 3, 1}, []uint64{cands[0].Seq, cands[1].Seq, cands[2].Seq})
}

func TestCandidatesBidOrderingBestPriceThenSeq(t *testing.T) {
	b := NewBook(domain.Buy)
	b.Insert(resting(1, "b1", domain.Buy, "X", 8, 4))
	b.Insert(resting(2, "b2", domain.Buy, "X", 12, 4))
	b.Insert(resting(3, "b3", domain.Buy, "X", 12, 4))
	b.Insert(resting(4, "b4", domain.Buy, "X", 5, 4)) // does not cross

	taker := resting(9, "s", domain.Sell, "X", 5, 4)
	cands := b.Candidates(taker)
	require.Len(t, cands, 3)
	assert.Equal(t, []uint64{2, 3, 1}, []uint64{cands[0].Seq, cands[1].Seq, cands[2].Seq})
}

func TestCandidatesCrossingRule(t *testing.T) {
	// Ask side crosses non-strictly, bid side strictly.
	asks := NewBook(domain.Sell)
	asks.Insert(resting(1, "s", domain.Sell, "X", 10, 1))
	buyer := resting(9, "b", domain.Buy, "X", 10, 1)
	assert.Len(t, asks.Candidates(buyer), 1)

	bids := NewBook(domain.Buy)
	bids.Insert(resting(1, "b", domain.Buy, "X", 10, 1))
	seller := resting(9, "s", domain.Sell, "X", 10, 1)
	assert.Empty(t, bids.Candidates(seller))

	seller.Price = 9
	assert.Len(t, bids.Candidates(seller), 1)
}

func TestCandidatesSnapshotIsDetached(t *testing.T) {
	b := NewBook(domain.Sell)
	b.Insert(resting(1, "s", domain.Sell, "X", 5, 4))

	taker := resting(9, "b", domain.Buy, "X", 10, 4)
	cands := b.Candidates(taker)
	require.Len(t, cands, 1)
	cands[0].Remaining = 0

	o, _ := b.Get(1)
	assert.Equal(t, uint64(4), o.Remaining)
}

package domain

import "time"

// Trade records one fill between a resting (maker) order and an incoming
// (taker) order. Price is always the maker's limit price.
type Trade struct {
	ID        string
	Asset     string
	MakerSeq  uint64
	TakerSeq  uint64
	BuyerID   string
	SellerID  string
	Price     uint64
	Quantity  uint64
	Timestamp time.Time
}

// Notional is the cash leg of the trade.
func (t *Trade) Notional() uint64 {
	return t.Price * t.Quantity
}

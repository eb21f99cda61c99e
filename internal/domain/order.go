package domain

type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// Order is a limit order. Seq is assigned in stream arrival order and doubles
// as the book lookup key and the time-priority tiebreaker. Remaining is the
// only mutable field; an order with Remaining == 0 never re-enters a book.
type Order struct {
	Seq      uint64
	ClientID string
	Side     Side
	Asset    string
	Price    uint64
	Quantity uint64

	Remaining uint64
}

// Filled reports whether the order has been fully consumed.
func (o *Order) Filled() bool {
	return o.Remaining == 0
}

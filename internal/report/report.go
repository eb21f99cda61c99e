// Package report serializes run results. Output is deterministic: clients
// sorted by id, asset columns in the configured symbol order, so repeated
// runs over the same inputs are byte-for-byte diffable.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tradematch/engine/internal/domain"
)

// WriteLedger writes one tab-separated line per client: id, cash, then the
// balance of each symbol in order. Clients must already be sorted by id,
// which Ledger.Snapshot guarantees.
func WriteLedger(w io.Writer, clients []domain.Client, symbols []string) error {
	for _, c := range clients {
		if _, err := fmt.Fprintf(w, "%s\t%d", c.ID, c.Cash); err != nil {
			return fmt.Errorf("write ledger: %w", err)
		}
		for _, sym := range symbols {
			if _, err := fmt.Fprintf(w, "\t%d", c.Assets[sym]); err != nil {
				return fmt.Errorf("write ledger: %w", err)
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return fmt.Errorf("write ledger: %w", err)
		}
	}
	return nil
}

// AssetSummary aggregates the executed trades of one asset.
type AssetSummary struct {
	Asset  string
	Trades int
	Volume uint64
	VWAP   decimal.Decimal
}

// Summarize computes per-asset trade counts, volume and volume-weighted
// average price, sorted by asset symbol.
func Summarize(trades []*domain.Trade) []AssetSummary {
	type acc struct {
		trades   int
		volume   uint64
		notional uint64
	}
	byAsset := make(map[string]*acc)
	for _, t := range trades {
		a, ok := byAsset[t.Asset]
		if !ok {
			a = &acc{}
			byAsset[t.Asset] = a
		}
		a.trades++
		a.volume += t.Quantity
		a.notional += t.Notional()
	}

	out := make([]AssetSummary, 0, len(byAsset))
	for asset, a := range byAsset {
		vwap := decimal.Zero
		if a.volume > 0 {
			vwap = decimal.NewFromUint64(a.notional).
				Div(decimal.NewFromUint64(a.volume)).
				Round(4)
		}
		out = append(out, AssetSummary{
			Asset:  asset,
			Trades: a.trades,
			Volume: a.volume,
			VWAP:   vwap,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Asset < out[j].Asset })
	return out
}

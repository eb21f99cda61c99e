package domain

// Client is a ledger account: free cash plus one balance per tracked asset.
// Balances are integer units and are never allowed to go negative; all
// mutation goes through the ledger's checked operations.
type Client struct {
	ID     string
	Cash   uint64
	Assets map[string]uint64
}

// Clone returns a deep copy, so snapshots stay isolated from the live ledger.
func (c *Client) Clone() Client {
	assets := make(map[string]uint64, len(c.Assets))
	for sym, bal := range c.Assets {
		assets[sym] = bal
	}
	return Client{ID: c.ID, Cash: c.Cash, Assets: assets}
}

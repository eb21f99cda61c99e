package domain

import "time"

// LedgerSnapshot is the final state of every account after a batch run,
// sorted by client id so repeated runs serialize identically.
type LedgerSnapshot struct {
	RunID     string
	Clients   []Client
	CreatedAt time.Time
}

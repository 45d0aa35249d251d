package domain

import "time"

// Customer is a ledger owner. Its balance is never stored; statements
// always recompute it from the live movement set.
type Customer struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	ID        string
	Name      string
	Phone     string
	Address   string
	Note      string
}

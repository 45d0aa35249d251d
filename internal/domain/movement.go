package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction is the effect a movement has on its currency bucket.
type Direction string

const (
	// DirectionIncrease raises the balance (a charge, a deposit, an
	// instrument entering the portfolio).
	DirectionIncrease Direction = "increase"
	// DirectionDecrease lowers the balance (a payment, a withdrawal).
	DirectionDecrease Direction = "decrease"
)

// Well-known currency codes. The currency set is an open enumeration:
// a movement tagged with any other code is carried through as its own
// bucket rather than rejected.
const (
	CurrencyTRY = "TRY"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
)

// Movement is a single dated monetary event in an entity's ledger.
// Amount is always non-negative; the signed effect on a balance is derived
// from Direction, never from a negative amount. Movements in different
// currencies never net against each other.
type Movement struct {
	Timestamp time.Time
	ID        string
	Currency  string
	Kind      string
	EntityRef string
	Amount    decimal.Decimal
	Direction Direction
}

// Valid reports whether the movement can contribute to a balance.
// Movements from a partial or denormalized feed may arrive without a
// direction or currency; those contribute zero instead of failing the
// whole computation.
func (m Movement) Valid() bool {
	if m.Currency == "" {
		return false
	}
	return m.Direction == DirectionIncrease || m.Direction == DirectionDecrease
}

// Signed returns the movement's signed effect on its currency bucket.
// Invalid movements and negative amounts contribute zero.
func (m Movement) Signed() decimal.Decimal {
	if !m.Valid() || m.Amount.IsNegative() {
		return decimal.Zero
	}

	if m.Direction == DirectionDecrease {
		return m.Amount.Neg()
	}

	return m.Amount
}

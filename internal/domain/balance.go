package domain

import "github.com/shopspring/decimal"

// Balance maps a currency code to a signed total. Balances are always
// derived by replaying movements; they are never persisted.
type Balance map[string]decimal.Decimal

// Get returns the total for a currency, treating a missing key as zero.
func (b Balance) Get(currency string) decimal.Decimal {
	if b == nil {
		return decimal.Zero
	}
	return b[currency]
}

// Apply adds a movement's signed effect to its currency bucket.
// Invalid movements are a no-op.
func (b Balance) Apply(m Movement) {
	if !m.Valid() {
		return
	}
	b[m.Currency] = b[m.Currency].Add(m.Signed())
}

// Clone returns an independent copy of the balance.
func (b Balance) Clone() Balance {
	out := make(Balance, len(b))
	for currency, total := range b {
		out[currency] = total
	}
	return out
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is a payment received from a customer. It reduces the customer's
// outstanding balance in its currency.
type Receipt struct {
	ReceivedAt time.Time
	CreatedAt  time.Time
	ID         string
	CustomerID string
	Currency   string
	Method     string
	Note       string
	Amount     decimal.Decimal
}

// Validate checks the receipt before it is persisted.
func (r *Receipt) Validate() error {
	if r.CustomerID == "" {
		return ErrCustomerRequired
	}

	if r.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	return ValidateCurrency(r.Currency)
}

// Movement projects the receipt into the common ledger shape.
func (r *Receipt) Movement() Movement {
	return Movement{
		ID:        r.ID,
		Timestamp: r.ReceivedAt,
		Direction: DirectionDecrease,
		Amount:    r.Amount,
		Currency:  r.Currency,
		Kind:      r.Method,
		EntityRef: r.CustomerID,
	}
}

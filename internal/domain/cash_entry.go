package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashEntry is a single in/out record in the cash register ledger.
type CashEntry struct {
	OccurredAt time.Time
	CreatedAt  time.Time
	ID         string
	Currency   string
	Category   string
	Note       string
	Amount     decimal.Decimal
	Direction  Direction
}

// Validate checks the entry before it is persisted.
func (e *CashEntry) Validate() error {
	if e.Direction != DirectionIncrease && e.Direction != DirectionDecrease {
		return ErrInvalidDirection
	}

	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	return ValidateCurrency(e.Currency)
}

// Movement projects the entry into the common ledger shape.
func (e *CashEntry) Movement() Movement {
	return Movement{
		ID:        e.ID,
		Timestamp: e.OccurredAt,
		Direction: e.Direction,
		Amount:    e.Amount,
		Currency:  e.Currency,
		Kind:      e.Category,
	}
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes a sale from a return. Returns are a
// first-class type, not a magic marker in a free-form note.
type TransactionType string

const (
	TransactionTypeSale   TransactionType = "sale"
	TransactionTypeReturn TransactionType = "return"
)

// Sale is a charge against a customer's ledger. A return reverses a sale:
// same non-negative amount, opposite effect on the balance.
type Sale struct {
	OccurredAt time.Time
	CreatedAt  time.Time
	ID         string
	CustomerID string
	Currency   string
	Category   string
	Note       string
	Amount     decimal.Decimal
	Type       TransactionType
}

// Validate checks the sale before it is persisted.
func (s *Sale) Validate() error {
	if s.CustomerID == "" {
		return ErrCustomerRequired
	}

	if s.Type != TransactionTypeSale && s.Type != TransactionTypeReturn {
		return ErrInvalidTransactionType
	}

	if s.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	return ValidateCurrency(s.Currency)
}

// Movement projects the sale into the common ledger shape. A sale charges
// the customer (increase); a return credits them (decrease).
func (s *Sale) Movement() Movement {
	direction := DirectionIncrease
	if s.Type == TransactionTypeReturn {
		direction = DirectionDecrease
	}

	return Movement{
		ID:        s.ID,
		Timestamp: s.OccurredAt,
		Direction: direction,
		Amount:    s.Amount,
		Currency:  s.Currency,
		Kind:      string(s.Type),
		EntityRef: s.CustomerID,
	}
}

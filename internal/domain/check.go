package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckKind distinguishes the two instrument types in the portfolio.
type CheckKind string

const (
	CheckKindCheck          CheckKind = "check"
	CheckKindPromissoryNote CheckKind = "promissory_note"
)

// CheckStatus is the lifecycle state of an instrument. Status changes
// never alter the amount, direction, or currency of the movement the
// instrument projects into.
type CheckStatus string

const (
	// CheckStatusPortfolio means the instrument is held, awaiting its due date.
	CheckStatusPortfolio CheckStatus = "portfolio"
	// CheckStatusCollected means the instrument was collected at the bank.
	CheckStatusCollected CheckStatus = "collected"
	// CheckStatusCashedOut means the instrument was converted to cash before
	// its due date; cashing out also writes a cash register entry.
	CheckStatusCashedOut CheckStatus = "cashed_out"
	// CheckStatusReturned means the instrument bounced.
	CheckStatusReturned CheckStatus = "returned"
)

// Check is a check or promissory note in the portfolio ledger.
type Check struct {
	DueDate      time.Time
	ReceivedAt   time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ID           string
	CustomerID   string
	Currency     string
	BankName     string
	SerialNumber string
	Amount       decimal.Decimal
	Kind         CheckKind
	Direction    Direction
	Status       CheckStatus
}

// Validate checks the instrument before it is persisted.
func (c *Check) Validate() error {
	if c.Kind != CheckKindCheck && c.Kind != CheckKindPromissoryNote {
		return ErrInvalidCheckKind
	}

	if c.Direction != DirectionIncrease && c.Direction != DirectionDecrease {
		return ErrInvalidDirection
	}

	if c.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	return ValidateCurrency(c.Currency)
}

// CanTransition reports whether the instrument may move to the given
// status. Only portfolio instruments can change state; collected,
// cashed-out, and returned are terminal.
func (c *Check) CanTransition(to CheckStatus) error {
	if c.Status != CheckStatusPortfolio {
		return ErrCheckNotInPortfolio
	}

	switch to {
	case CheckStatusCollected, CheckStatusCashedOut, CheckStatusReturned:
		return nil
	default:
		return ErrInvalidCheckStatus
	}
}

// Movement projects the instrument into the common ledger shape. The
// timestamp is the receive date; status is intentionally not part of the
// projection.
func (c *Check) Movement() Movement {
	return Movement{
		ID:        c.ID,
		Timestamp: c.ReceivedAt,
		Direction: c.Direction,
		Amount:    c.Amount,
		Currency:  c.Currency,
		Kind:      string(c.Kind),
		EntityRef: c.CustomerID,
	}
}

// Package ledger holds the reconciliation core shared by the customer
// statement, cash register, and check portfolio views. Every function is
// a pure computation over a movement slice: balances are recomputed from
// scratch on every call and never stored, so edits and deletions in the
// underlying records can never drift from what is displayed.
package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/duhaderi/defter/internal/domain"
)

// Line is one movement annotated with the running balance of its currency
// immediately before and after the movement applied.
type Line struct {
	domain.Movement

	PreviousBalance decimal.Decimal
	NewBalance      decimal.Decimal
}

// Totals aggregates one currency over a period.
type Totals struct {
	IncreaseTotal decimal.Decimal
	DecreaseTotal decimal.Decimal
	NetTotal      decimal.Decimal
}

// ReceiptAllocation records how much of one receipt retired prior-period
// debt versus current-period activity.
type ReceiptAllocation struct {
	ReceiptID        string
	Currency         string
	AppliedToPrior   decimal.Decimal
	AppliedToCurrent decimal.Decimal
}

// Allocation is the result of applying in-window receipts against a
// carried-over prior balance.
type Allocation struct {
	RemainingPriorBalance domain.Balance
	PerReceipt            []ReceiptAllocation
}

// sortChronological returns a copy of movements ordered ascending by
// timestamp, ties broken by ascending ID. ULIDs sort in insertion order,
// which keeps same-timestamp events deterministic.
func sortChronological(movements []domain.Movement) []domain.Movement {
	ordered := make([]domain.Movement, len(movements))
	copy(ordered, movements)

	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].Timestamp.Equal(ordered[j].Timestamp) {
			return ordered[i].Timestamp.Before(ordered[j].Timestamp)
		}
		return ordered[i].ID < ordered[j].ID
	})

	return ordered
}

// RunningBalances replays movements in chronological order and annotates
// each with the per-currency balance before and after it. The input may
// arrive in any order; display layers typically reverse the result to
// show newest first. Malformed movements are kept as lines but contribute
// zero, so a partial feed does not block the rest of the ledger.
func RunningBalances(movements []domain.Movement) []Line {
	ordered := sortChronological(movements)
	running := make(domain.Balance)

	lines := make([]Line, 0, len(ordered))
	for _, m := range ordered {
		previous := running.Get(m.Currency)
		running.Apply(m)

		lines = append(lines, Line{
			Movement:        m,
			PreviousBalance: previous,
			NewBalance:      running.Get(m.Currency),
		})
	}

	return lines
}

// ClosingBalance replays all movements and returns the final per-currency
// balance.
func ClosingBalance(movements []domain.Movement) domain.Balance {
	balance := make(domain.Balance)
	for _, m := range movements {
		balance.Apply(m)
	}
	return balance
}

// PeriodTotals sums movements inside the window (all movements when the
// window is nil) per currency. Movements are deduplicated by first-seen
// ID before summing: a denormalized feed may repeat one logical
// transaction once per line item, and totals are owed at the transaction
// level. A currency with no in-window movements is absent from the result;
// callers treat a missing key as zero.
func PeriodTotals(movements []domain.Movement, window *domain.PeriodWindow) map[string]Totals {
	ordered := sortChronological(movements)
	seen := make(map[string]bool, len(ordered))
	totals := make(map[string]Totals)

	for _, m := range ordered {
		if window != nil && !window.Contains(m.Timestamp) {
			continue
		}

		if m.ID != "" {
			if seen[m.ID] {
				continue
			}
			seen[m.ID] = true
		}

		if !m.Valid() || m.Amount.IsNegative() {
			continue
		}

		t := totals[m.Currency]
		if m.Direction == domain.DirectionIncrease {
			t.IncreaseTotal = t.IncreaseTotal.Add(m.Amount)
		} else {
			t.DecreaseTotal = t.DecreaseTotal.Add(m.Amount)
		}
		t.NetTotal = t.IncreaseTotal.Sub(t.DecreaseTotal)
		totals[m.Currency] = t
	}

	return totals
}

// PriorBalance accumulates movements strictly before windowStart into a
// per-currency balance: the debt carried into the period.
func PriorBalance(movements []domain.Movement, windowStart time.Time) domain.Balance {
	balance := make(domain.Balance)
	for _, m := range movements {
		if !m.Timestamp.Before(windowStart) {
			continue
		}
		balance.Apply(m)
	}
	return balance
}

// AllocateReceipts walks in-window receipts in chronological order and
// greedily applies each against the positive portion of the prior balance
// in its currency, oldest debt first. Only positive remaining debt offers
// anything to apply: a zero or negative prior balance (customer in credit)
// leaves every receipt fully applied to the current period. The result is
// re-derived on every call; nothing is stored.
func AllocateReceipts(prior domain.Balance, receipts []domain.Movement) Allocation {
	remaining := prior.Clone()
	if remaining == nil {
		remaining = make(domain.Balance)
	}

	ordered := sortChronological(receipts)
	perReceipt := make([]ReceiptAllocation, 0, len(ordered))

	for _, r := range ordered {
		amount := r.Amount
		if amount.IsNegative() {
			amount = decimal.Zero
		}

		available := remaining.Get(r.Currency)
		if available.IsNegative() {
			available = decimal.Zero
		}

		appliedToPrior := decimal.Min(amount, available)
		remaining[r.Currency] = remaining.Get(r.Currency).Sub(appliedToPrior)

		perReceipt = append(perReceipt, ReceiptAllocation{
			ReceiptID:        r.ID,
			Currency:         r.Currency,
			AppliedToPrior:   appliedToPrior,
			AppliedToCurrent: amount.Sub(appliedToPrior),
		})
	}

	return Allocation{
		RemainingPriorBalance: remaining,
		PerReceipt:            perReceipt,
	}
}

// AggregateByCategory groups movements by a caller-supplied key and
// accumulates a per-currency balance within each group. Used for the
// check-versus-promissory-note split and income category breakdowns.
func AggregateByCategory(movements []domain.Movement, categoryOf func(domain.Movement) string) map[string]domain.Balance {
	groups := make(map[string]domain.Balance)

	for _, m := range movements {
		category := categoryOf(m)

		balance, ok := groups[category]
		if !ok {
			balance = make(domain.Balance)
			groups[category] = balance
		}

		balance.Apply(m)
	}

	return groups
}

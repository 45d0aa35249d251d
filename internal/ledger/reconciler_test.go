package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duhaderi/defter/internal/domain"
	"github.com/duhaderi/defter/internal/ledger"
)

func mv(id string, ts time.Time, dir domain.Direction, amount int64, currency string) domain.Movement {
	return domain.Movement{
		ID:        id,
		Timestamp: ts,
		Direction: dir,
		Amount:    decimal.NewFromInt(amount),
		Currency:  currency,
	}
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestRunningBalances_EmptyInput(t *testing.T) {
	lines := ledger.RunningBalances(nil)
	assert.Empty(t, lines)
}

func TestRunningBalances_ChronologicalReplay(t *testing.T) {
	// Out of input order, distinct timestamps: replay must follow t1 < t2 < t3.
	movements := []domain.Movement{
		mv("3", day(3), domain.DirectionDecrease, 30, domain.CurrencyTRY),
		mv("1", day(1), domain.DirectionIncrease, 100, domain.CurrencyTRY),
		mv("2", day(2), domain.DirectionIncrease, 50, domain.CurrencyTRY),
	}

	lines := ledger.RunningBalances(movements)
	require.Len(t, lines, 3)

	assert.Equal(t, "1", lines[0].ID)
	assert.True(t, lines[0].PreviousBalance.IsZero())
	assert.True(t, lines[0].NewBalance.Equal(decimal.NewFromInt(100)))

	assert.Equal(t, "2", lines[1].ID)
	assert.True(t, lines[1].PreviousBalance.Equal(decimal.NewFromInt(100)))
	assert.True(t, lines[1].NewBalance.Equal(decimal.NewFromInt(150)))

	assert.Equal(t, "3", lines[2].ID)
	assert.True(t, lines[2].NewBalance.Equal(decimal.NewFromInt(120)))
}

func TestRunningBalances_TieBreakByID(t *testing.T) {
	ts := day(5)
	movements := []domain.Movement{
		mv("b", ts, domain.DirectionDecrease, 40, domain.CurrencyTRY),
		mv("a", ts, domain.DirectionIncrease, 100, domain.CurrencyTRY),
	}

	lines := ledger.RunningBalances(movements)
	require.Len(t, lines, 2)
	assert.Equal(t, "a", lines[0].ID)
	assert.Equal(t, "b", lines[1].ID)
	assert.True(t, lines[1].NewBalance.Equal(decimal.NewFromInt(60)))
}

func TestRunningBalances_CurrencyIsolation(t *testing.T) {
	movements := []domain.Movement{
		mv("1", day(1), domain.DirectionIncrease, 100, domain.CurrencyTRY),
		mv("2", day(2), domain.DirectionIncrease, 50, domain.CurrencyUSD),
	}

	lines := ledger.RunningBalances(movements)
	require.Len(t, lines, 2)

	// A USD movement starts its own bucket at zero; it never nets against TRY.
	assert.True(t, lines[1].PreviousBalance.IsZero())
	assert.True(t, lines[1].NewBalance.Equal(decimal.NewFromInt(50)))

	closing := ledger.ClosingBalance(movements)
	assert.True(t, closing.Get(domain.CurrencyTRY).Equal(decimal.NewFromInt(100)))
	assert.True(t, closing.Get(domain.CurrencyUSD).Equal(decimal.NewFromInt(50)))
}

func TestRunningBalances_Deterministic(t *testing.T) {
	movements := []domain.Movement{
		mv("2", day(2), domain.DirectionDecrease, 25, domain.CurrencyEUR),
		mv("1", day(1), domain.DirectionIncrease, 75, domain.CurrencyEUR),
		mv("3", day(3), domain.DirectionIncrease, 10, domain.CurrencyTRY),
	}

	first := ledger.RunningBalances(movements)
	second := ledger.RunningBalances(movements)
	assert.Equal(t, first, second)
}

func TestRunningBalances_Conservation(t *testing.T) {
	movements := []domain.Movement{
		mv("1", day(1), domain.DirectionIncrease, 100, domain.CurrencyTRY),
		mv("2", day(2), domain.DirectionDecrease, 30, domain.CurrencyTRY),
		mv("3", day(3), domain.DirectionIncrease, 200, domain.CurrencyTRY),
		mv("4", day(4), domain.DirectionDecrease, 70, domain.CurrencyTRY),
	}

	lines := ledger.RunningBalances(movements)
	require.Len(t, lines, 4)

	// Increases sum to 300, decreases to 100.
	assert.True(t, lines[3].NewBalance.Equal(decimal.NewFromInt(200)))
}

func TestRunningBalances_MalformedMovementContributesZero(t *testing.T) {
	malformed := domain.Movement{ID: "2", Timestamp: day(2), Amount: decimal.NewFromInt(999)}
	movements := []domain.Movement{
		mv("1", day(1), domain.DirectionIncrease, 100, domain.CurrencyTRY),
		malformed,
		mv("3", day(3), domain.DirectionDecrease, 40, domain.CurrencyTRY),
	}

	lines := ledger.RunningBalances(movements)
	require.Len(t, lines, 3)

	// The malformed row is displayed but does not move any balance.
	assert.True(t, lines[1].PreviousBalance.Equal(lines[1].NewBalance))
	assert.True(t, lines[2].NewBalance.Equal(decimal.NewFromInt(60)))
}

func TestRunningBalances_UnknownCurrencyGetsOwnBucket(t *testing.T) {
	movements := []domain.Movement{
		mv("1", day(1), domain.DirectionIncrease, 100, domain.CurrencyTRY),
		mv("2", day(2), domain.DirectionIncrease, 500, "GBP"),
	}

	closing := ledger.ClosingBalance(movements)
	assert.True(t, closing.Get("GBP").Equal(decimal.NewFromInt(500)))
	assert.True(t, closing.Get(domain.CurrencyTRY).Equal(decimal.NewFromInt(100)))
}

func TestPeriodTotals_WindowFiltering(t *testing.T) {
	window := &domain.PeriodWindow{Start: day(8), End: day(31)}
	movements := []domain.Movement{
		mv("1", day(5), domain.DirectionIncrease, 1000, domain.CurrencyTRY),
		mv("2", day(10), domain.DirectionDecrease, 400, domain.CurrencyTRY),
	}

	totals := ledger.PeriodTotals(movements, window)
	require.Contains(t, totals, domain.CurrencyTRY)

	tr := totals[domain.CurrencyTRY]
	assert.True(t, tr.IncreaseTotal.IsZero())
	assert.True(t, tr.DecreaseTotal.Equal(decimal.NewFromInt(400)))
	assert.True(t, tr.NetTotal.Equal(decimal.NewFromInt(-400)))
}

func TestPeriodTotals_EndDateInclusive(t *testing.T) {
	window := &domain.PeriodWindow{Start: day(1), End: day(10)}
	movements := []domain.Movement{
		{
			ID:        "1",
			Timestamp: time.Date(2024, 1, 10, 18, 30, 0, 0, time.UTC),
			Direction: domain.DirectionIncrease,
			Amount:    decimal.NewFromInt(100),
			Currency:  domain.CurrencyTRY,
		},
		mv("2", day(11), domain.DirectionIncrease, 100, domain.CurrencyTRY),
	}

	totals := ledger.PeriodTotals(movements, window)
	assert.True(t, totals[domain.CurrencyTRY].IncreaseTotal.Equal(decimal.NewFromInt(100)))
}

func TestPeriodTotals_NilWindowSumsEverything(t *testing.T) {
	movements := []domain.Movement{
		mv("1", day(1), domain.DirectionIncrease, 100, domain.CurrencyTRY),
		mv("2", day(20), domain.DirectionDecrease, 60, domain.CurrencyTRY),
	}

	totals := ledger.PeriodTotals(movements, nil)
	assert.True(t, totals[domain.CurrencyTRY].NetTotal.Equal(decimal.NewFromInt(40)))
}

func TestPeriodTotals_DeduplicatesByID(t *testing.T) {
	// A multi-item sale arrives once per line item from a denormalized feed;
	// the transaction amount counts once.
	movements := []domain.Movement{
		mv("sale-1", day(2), domain.DirectionIncrease, 300, domain.CurrencyTRY),
		mv("sale-1", day(2), domain.DirectionIncrease, 300, domain.CurrencyTRY),
		mv("sale-1", day(2), domain.DirectionIncrease, 300, domain.CurrencyTRY),
	}

	totals := ledger.PeriodTotals(movements, nil)
	assert.True(t, totals[domain.CurrencyTRY].IncreaseTotal.Equal(decimal.NewFromInt(300)))
}

func TestPeriodTotals_AbsentCurrencyMeansNoKey(t *testing.T) {
	movements := []domain.Movement{
		mv("1", day(1), domain.DirectionIncrease, 100, domain.CurrencyTRY),
	}

	totals := ledger.PeriodTotals(movements, nil)
	assert.NotContains(t, totals, domain.CurrencyUSD)
}

func TestPriorBalance_StrictlyBeforeStart(t *testing.T) {
	movements := []domain.Movement{
		mv("1", day(5), domain.DirectionIncrease, 1000, domain.CurrencyTRY),
		mv("2", day(8), domain.DirectionDecrease, 100, domain.CurrencyTRY),
		mv("3", day(9), domain.DirectionIncrease, 50, domain.CurrencyUSD),
	}

	prior := ledger.PriorBalance(movements, day(8))
	assert.True(t, prior.Get(domain.CurrencyTRY).Equal(decimal.NewFromInt(1000)))
	assert.True(t, prior.Get(domain.CurrencyUSD).IsZero())
}

func TestAllocateReceipts_GreedyOldestFirst(t *testing.T) {
	prior := domain.Balance{domain.CurrencyTRY: decimal.NewFromInt(100)}
	receipts := []domain.Movement{
		mv("r1", day(10), domain.DirectionDecrease, 60, domain.CurrencyTRY),
		mv("r2", day(12), domain.DirectionDecrease, 70, domain.CurrencyTRY),
	}

	alloc := ledger.AllocateReceipts(prior, receipts)
	require.Len(t, alloc.PerReceipt, 2)

	assert.True(t, alloc.PerReceipt[0].AppliedToPrior.Equal(decimal.NewFromInt(60)))
	assert.True(t, alloc.PerReceipt[0].AppliedToCurrent.IsZero())
	assert.True(t, alloc.PerReceipt[1].AppliedToPrior.Equal(decimal.NewFromInt(40)))
	assert.True(t, alloc.PerReceipt[1].AppliedToCurrent.Equal(decimal.NewFromInt(30)))
	assert.True(t, alloc.RemainingPriorBalance.Get(domain.CurrencyTRY).IsZero())
}

func TestAllocateReceipts_NoOverAllocation(t *testing.T) {
	prior := domain.Balance{domain.CurrencyTRY: decimal.NewFromInt(50)}
	receipts := []domain.Movement{
		mv("r1", day(10), domain.DirectionDecrease, 30, domain.CurrencyTRY),
		mv("r2", day(11), domain.DirectionDecrease, 30, domain.CurrencyTRY),
		mv("r3", day(12), domain.DirectionDecrease, 30, domain.CurrencyTRY),
	}

	alloc := ledger.AllocateReceipts(prior, receipts)
	require.Len(t, alloc.PerReceipt, 3)

	cumulative := decimal.Zero
	for i, ra := range alloc.PerReceipt {
		assert.True(t, ra.AppliedToPrior.LessThanOrEqual(receipts[i].Amount))
		cumulative = cumulative.Add(ra.AppliedToPrior)
	}
	assert.True(t, cumulative.LessThanOrEqual(decimal.NewFromInt(50)))
	assert.True(t, alloc.PerReceipt[2].AppliedToPrior.IsZero())
}

func TestAllocateReceipts_CreditBalance(t *testing.T) {
	// Customer in credit: nothing to retire, everything is current.
	prior := domain.Balance{domain.CurrencyTRY: decimal.NewFromInt(-50)}
	receipts := []domain.Movement{
		mv("r1", day(10), domain.DirectionDecrease, 80, domain.CurrencyTRY),
	}

	alloc := ledger.AllocateReceipts(prior, receipts)
	require.Len(t, alloc.PerReceipt, 1)
	assert.True(t, alloc.PerReceipt[0].AppliedToPrior.IsZero())
	assert.True(t, alloc.PerReceipt[0].AppliedToCurrent.Equal(decimal.NewFromInt(80)))
	assert.True(t, alloc.RemainingPriorBalance.Get(domain.CurrencyTRY).Equal(decimal.NewFromInt(-50)))
}

func TestAllocateReceipts_CurrencyIsolation(t *testing.T) {
	prior := domain.Balance{domain.CurrencyTRY: decimal.NewFromInt(100)}
	receipts := []domain.Movement{
		mv("r1", day(10), domain.DirectionDecrease, 100, domain.CurrencyUSD),
	}

	alloc := ledger.AllocateReceipts(prior, receipts)
	require.Len(t, alloc.PerReceipt, 1)
	assert.True(t, alloc.PerReceipt[0].AppliedToPrior.IsZero())
	assert.True(t, alloc.RemainingPriorBalance.Get(domain.CurrencyTRY).Equal(decimal.NewFromInt(100)))
}

func TestAggregateByCategory(t *testing.T) {
	movements := []domain.Movement{
		{ID: "1", Timestamp: day(1), Direction: domain.DirectionIncrease, Amount: decimal.NewFromInt(100), Currency: domain.CurrencyTRY, Kind: string(domain.CheckKindCheck)},
		{ID: "2", Timestamp: day(2), Direction: domain.DirectionIncrease, Amount: decimal.NewFromInt(200), Currency: domain.CurrencyTRY, Kind: string(domain.CheckKindPromissoryNote)},
		{ID: "3", Timestamp: day(3), Direction: domain.DirectionDecrease, Amount: decimal.NewFromInt(40), Currency: domain.CurrencyTRY, Kind: string(domain.CheckKindCheck)},
	}

	groups := ledger.AggregateByCategory(movements, func(m domain.Movement) string { return m.Kind })
	require.Len(t, groups, 2)
	assert.True(t, groups["check"].Get(domain.CurrencyTRY).Equal(decimal.NewFromInt(60)))
	assert.True(t, groups["promissory_note"].Get(domain.CurrencyTRY).Equal(decimal.NewFromInt(200)))
}

func TestStatementScenario(t *testing.T) {
	// Charge before the window, receipt inside it: the receipt retires the
	// carried-over debt first.
	movements := []domain.Movement{
		mv("1", day(5), domain.DirectionIncrease, 1000, domain.CurrencyTRY),
		mv("2", day(10), domain.DirectionDecrease, 400, domain.CurrencyTRY),
	}
	window := domain.PeriodWindow{Start: day(8), End: day(31)}

	prior := ledger.PriorBalance(movements, window.Start)
	require.True(t, prior.Get(domain.CurrencyTRY).Equal(decimal.NewFromInt(1000)))

	var receipts []domain.Movement
	for _, m := range movements {
		if m.Direction == domain.DirectionDecrease && window.Contains(m.Timestamp) {
			receipts = append(receipts, m)
		}
	}
	require.Len(t, receipts, 1)

	alloc := ledger.AllocateReceipts(prior, receipts)
	require.Len(t, alloc.PerReceipt, 1)
	assert.True(t, alloc.PerReceipt[0].AppliedToPrior.Equal(decimal.NewFromInt(400)))
	assert.True(t, alloc.RemainingPriorBalance.Get(domain.CurrencyTRY).Equal(decimal.NewFromInt(600)))

	totals := ledger.PeriodTotals(movements, &window)
	assert.True(t, totals[domain.CurrencyTRY].DecreaseTotal.Equal(decimal.NewFromInt(400)))
}

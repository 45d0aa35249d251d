package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/duhaderi/defter/internal/domain"
	"github.com/duhaderi/defter/internal/infrastructure/metrics"
	"github.com/duhaderi/defter/internal/ledger"
)

// CashUseCase handles the cash register ledger.
type CashUseCase struct {
	cashRepo CashEntryRepository
	idGen    IDGenerator
	metrics  *metrics.Metrics
}

// NewCashUseCase creates a new CashUseCase.
func NewCashUseCase(cashRepo CashEntryRepository, idGen IDGenerator, metrics *metrics.Metrics) *CashUseCase {
	return &CashUseCase{
		cashRepo: cashRepo,
		idGen:    idGen,
		metrics:  metrics,
	}
}

// RecordCashEntryInput represents input for recording a register entry.
type RecordCashEntryInput struct {
	OccurredAt *time.Time
	Currency   string
	Category   string
	Note       string
	Amount     decimal.Decimal
	Direction  domain.Direction
}

// RecordEntry records a cash register entry.
func (uc *CashUseCase) RecordEntry(ctx context.Context, input RecordCashEntryInput) (*domain.CashEntry, error) {
	now := time.Now().UTC()

	occurredAt := now
	if input.OccurredAt != nil {
		occurredAt = input.OccurredAt.UTC()
	}

	entry := &domain.CashEntry{
		ID:         uc.idGen.Generate(),
		Direction:  input.Direction,
		Amount:     input.Amount,
		Currency:   input.Currency,
		Category:   input.Category,
		Note:       input.Note,
		OccurredAt: occurredAt,
		CreatedAt:  now,
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := uc.cashRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.CashEntriesRecorded.WithLabelValues(string(entry.Direction)).Inc()
	}

	return entry, nil
}

// Ledger returns the register's movements with running balances, in
// chronological order.
func (uc *CashUseCase) Ledger(ctx context.Context) ([]ledger.Line, error) {
	entries, err := uc.cashRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	movements := make([]domain.Movement, 0, len(entries))
	for _, e := range entries {
		movements = append(movements, e.Movement())
	}

	return ledger.RunningBalances(movements), nil
}

// CashSummary aggregates the register over an optional window.
type CashSummary struct {
	Window     *domain.PeriodWindow
	Totals     map[string]ledger.Totals
	ByCategory map[string]domain.Balance
	Closing    domain.Balance
}

// Summary computes per-currency totals, a category breakdown, and the
// closing balance for the register. Totals respect the window; the
// closing balance always covers the full history.
func (uc *CashUseCase) Summary(ctx context.Context, window *domain.PeriodWindow) (*CashSummary, error) {
	if window != nil {
		if err := window.Validate(); err != nil {
			return nil, err
		}
	}

	entries, err := uc.cashRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	movements := make([]domain.Movement, 0, len(entries))
	for _, e := range entries {
		movements = append(movements, e.Movement())
	}

	inWindow := movements
	if window != nil {
		filtered := make([]domain.Movement, 0, len(movements))
		for _, m := range movements {
			if window.Contains(m.Timestamp) {
				filtered = append(filtered, m)
			}
		}
		inWindow = filtered
	}

	return &CashSummary{
		Window:     window,
		Totals:     ledger.PeriodTotals(movements, window),
		ByCategory: ledger.AggregateByCategory(inWindow, func(m domain.Movement) string { return m.Kind }),
		Closing:    ledger.ClosingBalance(movements),
	}, nil
}

// DeleteEntry removes a register entry.
func (uc *CashUseCase) DeleteEntry(ctx context.Context, id string) error {
	return uc.cashRepo.Delete(ctx, id)
}

package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/duhaderi/defter/internal/domain"
	"github.com/duhaderi/defter/internal/infrastructure/metrics"
	"github.com/duhaderi/defter/internal/ledger"
)

// StatementUseCase builds customer statements of account. Everything here
// is derived on the fly from the customer's sales and receipts; the only
// state is a short-lived cache of the full-history statement.
type StatementUseCase struct {
	customerRepo CustomerRepository
	saleRepo     SaleRepository
	receiptRepo  ReceiptRepository
	cache        Cache
	metrics      *metrics.Metrics
}

// NewStatementUseCase creates a new StatementUseCase.
func NewStatementUseCase(
	customerRepo CustomerRepository,
	saleRepo SaleRepository,
	receiptRepo ReceiptRepository,
	cache Cache,
	metrics *metrics.Metrics,
) *StatementUseCase {
	return &StatementUseCase{
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
		receiptRepo:  receiptRepo,
		cache:        cache,
		metrics:      metrics,
	}
}

// Statement is the derived view model consumed by tables and PDF export.
// Lines run in chronological order; display layers reverse them for a
// newest-first view.
type Statement struct {
	GeneratedAt           time.Time                  `json:"generated_at"`
	Window                *domain.PeriodWindow       `json:"window,omitempty"`
	Customer              *domain.Customer           `json:"customer"`
	Lines                 []ledger.Line              `json:"lines"`
	PeriodTotals          map[string]ledger.Totals   `json:"period_totals"`
	PriorBalance          domain.Balance             `json:"prior_balance"`
	RemainingPriorBalance domain.Balance             `json:"remaining_prior_balance"`
	Allocations           []ledger.ReceiptAllocation `json:"allocations"`
	ClosingBalance        domain.Balance             `json:"closing_balance"`
}

// GetStatement computes a statement for a customer over an optional
// window. With a window, in-window receipts are first allocated against
// the balance carried into the period, oldest debt first.
func (uc *StatementUseCase) GetStatement(ctx context.Context, customerID string, window *domain.PeriodWindow) (*Statement, error) {
	if window != nil {
		if err := window.Validate(); err != nil {
			return nil, err
		}
	}

	if window == nil && uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, statementCacheKey(customerID)); err == nil {
			var statement Statement
			if err := json.Unmarshal(cached, &statement); err == nil {
				if uc.metrics != nil {
					uc.metrics.StatementCacheHits.WithLabelValues("hit").Inc()
				}
				return &statement, nil
			}
		}
		if uc.metrics != nil {
			uc.metrics.StatementCacheHits.WithLabelValues("miss").Inc()
		}
	}

	start := time.Now()

	customer, err := uc.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	movements, err := uc.collectMovements(ctx, customerID)
	if err != nil {
		return nil, err
	}

	statement := &Statement{
		GeneratedAt:    time.Now().UTC(),
		Window:         window,
		Customer:       customer,
		Lines:          ledger.RunningBalances(movements),
		PeriodTotals:   ledger.PeriodTotals(movements, window),
		ClosingBalance: ledger.ClosingBalance(movements),
	}

	if window != nil {
		prior := ledger.PriorBalance(movements, window.Start)

		var receipts []domain.Movement
		for _, m := range movements {
			if m.Direction == domain.DirectionDecrease && window.Contains(m.Timestamp) {
				receipts = append(receipts, m)
			}
		}

		allocation := ledger.AllocateReceipts(prior, receipts)
		statement.PriorBalance = prior
		statement.RemainingPriorBalance = allocation.RemainingPriorBalance
		statement.Allocations = allocation.PerReceipt
	}

	if window == nil && uc.cache != nil {
		if encoded, err := json.Marshal(statement); err == nil {
			_ = uc.cache.Set(ctx, statementCacheKey(customerID), encoded, StatementCacheTTL)
		}
	}

	if uc.metrics != nil {
		uc.metrics.StatementsComputed.Inc()
		uc.metrics.StatementDuration.Observe(time.Since(start).Seconds())
	}

	return statement, nil
}

// collectMovements projects the customer's sales and receipts into the
// common ledger shape.
func (uc *StatementUseCase) collectMovements(ctx context.Context, customerID string) ([]domain.Movement, error) {
	sales, err := uc.saleRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	receipts, err := uc.receiptRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	movements := make([]domain.Movement, 0, len(sales)+len(receipts))
	for _, s := range sales {
		movements = append(movements, s.Movement())
	}
	for _, r := range receipts {
		movements = append(movements, r.Movement())
	}

	return movements, nil
}

func statementCacheKey(customerID string) string {
	return "statement:" + customerID
}

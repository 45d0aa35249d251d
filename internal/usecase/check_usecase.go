package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/duhaderi/defter/internal/domain"
	"github.com/duhaderi/defter/internal/infrastructure/metrics"
	"github.com/duhaderi/defter/internal/ledger"
)

// CheckUseCase handles the check and promissory note portfolio.
type CheckUseCase struct {
	txManager TransactionManager
	checkRepo CheckRepository
	cashRepo  CashEntryRepository
	retrier   Retrier
	idGen     IDGenerator
	metrics   *metrics.Metrics
}

// NewCheckUseCase creates a new CheckUseCase.
func NewCheckUseCase(
	txManager TransactionManager,
	checkRepo CheckRepository,
	cashRepo CashEntryRepository,
	retrier Retrier,
	idGen IDGenerator,
	metrics *metrics.Metrics,
) *CheckUseCase {
	return &CheckUseCase{
		txManager: txManager,
		checkRepo: checkRepo,
		cashRepo:  cashRepo,
		retrier:   retrier,
		idGen:     idGen,
		metrics:   metrics,
	}
}

// RegisterCheckInput represents input for registering an instrument.
type RegisterCheckInput struct {
	DueDate      time.Time
	ReceivedAt   *time.Time
	CustomerID   string
	Currency     string
	BankName     string
	SerialNumber string
	Amount       decimal.Decimal
	Kind         domain.CheckKind
	Direction    domain.Direction
}

// RegisterCheck adds a check or promissory note to the portfolio.
func (uc *CheckUseCase) RegisterCheck(ctx context.Context, input RegisterCheckInput) (*domain.Check, error) {
	now := time.Now().UTC()

	receivedAt := now
	if input.ReceivedAt != nil {
		receivedAt = input.ReceivedAt.UTC()
	}

	check := &domain.Check{
		ID:           uc.idGen.Generate(),
		CustomerID:   input.CustomerID,
		Kind:         input.Kind,
		Direction:    input.Direction,
		Amount:       input.Amount,
		Currency:     input.Currency,
		BankName:     input.BankName,
		SerialNumber: input.SerialNumber,
		DueDate:      input.DueDate,
		Status:       domain.CheckStatusPortfolio,
		ReceivedAt:   receivedAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := check.Validate(); err != nil {
		return nil, err
	}

	if err := uc.checkRepo.Create(ctx, check); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.ChecksRegistered.Inc()
	}

	return check, nil
}

// GetCheck retrieves an instrument by ID.
func (uc *CheckUseCase) GetCheck(ctx context.Context, id string) (*domain.Check, error) {
	return uc.checkRepo.GetByID(ctx, id)
}

// ListPortfolio lists instruments still held in the portfolio.
func (uc *CheckUseCase) ListPortfolio(ctx context.Context) ([]*domain.Check, error) {
	return uc.checkRepo.ListByStatus(ctx, domain.CheckStatusPortfolio)
}

// ListByCustomer lists a customer's instruments.
func (uc *CheckUseCase) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Check, error) {
	return uc.checkRepo.ListByCustomer(ctx, customerID)
}

// PortfolioBreakdown sums held instruments per kind and currency.
func (uc *CheckUseCase) PortfolioBreakdown(ctx context.Context) (map[string]domain.Balance, error) {
	checks, err := uc.checkRepo.ListByStatus(ctx, domain.CheckStatusPortfolio)
	if err != nil {
		return nil, err
	}

	movements := make([]domain.Movement, 0, len(checks))
	for _, c := range checks {
		movements = append(movements, c.Movement())
	}

	return ledger.AggregateByCategory(movements, func(m domain.Movement) string { return m.Kind }), nil
}

// Collect marks a portfolio instrument as collected at the bank.
func (uc *CheckUseCase) Collect(ctx context.Context, id string) (*domain.Check, error) {
	return uc.transition(ctx, id, domain.CheckStatusCollected)
}

// MarkReturned marks a portfolio instrument as bounced.
func (uc *CheckUseCase) MarkReturned(ctx context.Context, id string) (*domain.Check, error) {
	return uc.transition(ctx, id, domain.CheckStatusReturned)
}

// CashOut converts a portfolio instrument to cash before its due date.
// The status change and the matching register entry are written in one
// storage transaction: a payment must never exist without its instrument
// update, or the next reconciliation would silently total an inconsistent
// movement set.
func (uc *CheckUseCase) CashOut(ctx context.Context, id string) (*domain.Check, *domain.CashEntry, error) {
	var (
		check *domain.Check
		entry *domain.CashEntry
	)

	err := uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		check, err = uc.checkRepo.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if err = check.CanTransition(domain.CheckStatusCashedOut); err != nil {
			return err
		}

		now := time.Now().UTC()
		if err = uc.checkRepo.UpdateStatus(ctx, tx, id, domain.CheckStatusCashedOut, now); err != nil {
			return err
		}

		entry = &domain.CashEntry{
			ID:         uc.idGen.Generate(),
			Direction:  domain.DirectionIncrease,
			Amount:     check.Amount,
			Currency:   check.Currency,
			Category:   "check_cashout",
			Note:       check.SerialNumber,
			OccurredAt: now,
			CreatedAt:  now,
		}

		if err = uc.cashRepo.CreateTx(ctx, tx, entry); err != nil {
			return err
		}

		if err = tx.Commit(ctx); err != nil {
			return err
		}

		check.Status = domain.CheckStatusCashedOut
		check.UpdatedAt = now

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	if uc.metrics != nil {
		uc.metrics.CheckTransitions.WithLabelValues(string(domain.CheckStatusCashedOut)).Inc()
	}

	return check, entry, nil
}

func (uc *CheckUseCase) transition(ctx context.Context, id string, to domain.CheckStatus) (*domain.Check, error) {
	var check *domain.Check

	err := uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		check, err = uc.checkRepo.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if err = check.CanTransition(to); err != nil {
			return err
		}

		now := time.Now().UTC()
		if err = uc.checkRepo.UpdateStatus(ctx, tx, id, to, now); err != nil {
			return err
		}

		if err = tx.Commit(ctx); err != nil {
			return err
		}

		check.Status = to
		check.UpdatedAt = now

		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.CheckTransitions.WithLabelValues(string(to)).Inc()
	}

	return check, nil
}

package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/duhaderi/defter/internal/domain"
	"github.com/duhaderi/defter/internal/infrastructure/metrics"
)

// SaleUseCase handles sale and return business logic.
type SaleUseCase struct {
	saleRepo     SaleRepository
	customerRepo CustomerRepository
	idGen        IDGenerator
	cache        Cache
	metrics      *metrics.Metrics
}

// NewSaleUseCase creates a new SaleUseCase.
func NewSaleUseCase(saleRepo SaleRepository, customerRepo CustomerRepository, idGen IDGenerator, cache Cache, metrics *metrics.Metrics) *SaleUseCase {
	return &SaleUseCase{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		idGen:        idGen,
		cache:        cache,
		metrics:      metrics,
	}
}

// RecordSaleInput represents input for recording a sale or return.
type RecordSaleInput struct {
	OccurredAt *time.Time
	CustomerID string
	Currency   string
	Category   string
	Note       string
	Amount     decimal.Decimal
	Type       domain.TransactionType
}

// RecordSale records a sale or a return against a customer's ledger.
func (uc *SaleUseCase) RecordSale(ctx context.Context, input RecordSaleInput) (*domain.Sale, error) {
	if _, err := uc.customerRepo.GetByID(ctx, input.CustomerID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	occurredAt := now
	if input.OccurredAt != nil {
		occurredAt = input.OccurredAt.UTC()
	}

	sale := &domain.Sale{
		ID:         uc.idGen.Generate(),
		CustomerID: input.CustomerID,
		Type:       input.Type,
		Amount:     input.Amount,
		Currency:   input.Currency,
		Category:   input.Category,
		Note:       input.Note,
		OccurredAt: occurredAt,
		CreatedAt:  now,
	}

	if err := sale.Validate(); err != nil {
		return nil, err
	}

	if err := uc.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	uc.invalidateStatement(ctx, input.CustomerID)

	if uc.metrics != nil {
		uc.metrics.SalesRecorded.WithLabelValues(string(sale.Type)).Inc()
		amount, _ := sale.Amount.Float64()
		uc.metrics.SaleAmount.WithLabelValues(sale.Currency).Observe(amount)
	}

	return sale, nil
}

// ListSalesByCustomer lists sales and returns for a customer.
func (uc *SaleUseCase) ListSalesByCustomer(ctx context.Context, customerID string) ([]*domain.Sale, error) {
	return uc.saleRepo.ListByCustomer(ctx, customerID)
}

// DeleteSale removes a sale. Balances are derived on read, so no stored
// total needs patching; the next statement recomputes from what is left.
func (uc *SaleUseCase) DeleteSale(ctx context.Context, id string) error {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.saleRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidateStatement(ctx, sale.CustomerID)

	return nil
}

func (uc *SaleUseCase) invalidateStatement(ctx context.Context, customerID string) {
	if uc.cache == nil {
		return
	}
	// Best effort: a stale statement expires on its own TTL anyway.
	_ = uc.cache.Delete(ctx, statementCacheKey(customerID))
}

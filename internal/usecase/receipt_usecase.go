package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/duhaderi/defter/internal/domain"
	"github.com/duhaderi/defter/internal/infrastructure/metrics"
)

// ReceiptUseCase handles customer payment business logic.
type ReceiptUseCase struct {
	receiptRepo  ReceiptRepository
	customerRepo CustomerRepository
	idGen        IDGenerator
	cache        Cache
	metrics      *metrics.Metrics
}

// NewReceiptUseCase creates a new ReceiptUseCase.
func NewReceiptUseCase(receiptRepo ReceiptRepository, customerRepo CustomerRepository, idGen IDGenerator, cache Cache, metrics *metrics.Metrics) *ReceiptUseCase {
	return &ReceiptUseCase{
		receiptRepo:  receiptRepo,
		customerRepo: customerRepo,
		idGen:        idGen,
		cache:        cache,
		metrics:      metrics,
	}
}

// RecordReceiptInput represents input for recording a customer payment.
type RecordReceiptInput struct {
	ReceivedAt *time.Time
	CustomerID string
	Currency   string
	Method     string
	Note       string
	Amount     decimal.Decimal
}

// RecordReceipt records a payment received from a customer.
func (uc *ReceiptUseCase) RecordReceipt(ctx context.Context, input RecordReceiptInput) (*domain.Receipt, error) {
	if _, err := uc.customerRepo.GetByID(ctx, input.CustomerID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	receivedAt := now
	if input.ReceivedAt != nil {
		receivedAt = input.ReceivedAt.UTC()
	}

	receipt := &domain.Receipt{
		ID:         uc.idGen.Generate(),
		CustomerID: input.CustomerID,
		Amount:     input.Amount,
		Currency:   input.Currency,
		Method:     input.Method,
		Note:       input.Note,
		ReceivedAt: receivedAt,
		CreatedAt:  now,
	}

	if err := receipt.Validate(); err != nil {
		return nil, err
	}

	if err := uc.receiptRepo.Create(ctx, receipt); err != nil {
		return nil, err
	}

	uc.invalidateStatement(ctx, input.CustomerID)

	if uc.metrics != nil {
		uc.metrics.ReceiptsRecorded.Inc()
	}

	return receipt, nil
}

// ListReceiptsByCustomer lists payments received from a customer.
func (uc *ReceiptUseCase) ListReceiptsByCustomer(ctx context.Context, customerID string) ([]*domain.Receipt, error) {
	return uc.receiptRepo.ListByCustomer(ctx, customerID)
}

// DeleteReceipt removes a receipt.
func (uc *ReceiptUseCase) DeleteReceipt(ctx context.Context, id string) error {
	receipt, err := uc.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.receiptRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidateStatement(ctx, receipt.CustomerID)

	return nil
}

func (uc *ReceiptUseCase) invalidateStatement(ctx context.Context, customerID string) {
	if uc.cache == nil {
		return
	}
	_ = uc.cache.Delete(ctx, statementCacheKey(customerID))
}

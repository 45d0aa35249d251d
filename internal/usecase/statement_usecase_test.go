package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/duhaderi/defter/internal/domain"
	"github.com/duhaderi/defter/internal/usecase"
	"github.com/duhaderi/defter/internal/usecase/mocks"
)

func TestStatementUseCase_GetStatement_WithWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	saleRepo := mocks.NewMockSaleRepository(ctrl)
	receiptRepo := mocks.NewMockReceiptRepository(ctrl)

	customerRepo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(&domain.Customer{ID: "cust-1", Name: "Yilmaz Deri"}, nil)
	saleRepo.EXPECT().ListByCustomer(gomock.Any(), "cust-1").Return([]*domain.Sale{
		{
			ID:         "sale-1",
			CustomerID: "cust-1",
			Type:       domain.TransactionTypeSale,
			Amount:     decimal.NewFromInt(1000),
			Currency:   domain.CurrencyTRY,
			OccurredAt: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		},
	}, nil)
	receiptRepo.EXPECT().ListByCustomer(gomock.Any(), "cust-1").Return([]*domain.Receipt{
		{
			ID:         "rcpt-1",
			CustomerID: "cust-1",
			Amount:     decimal.NewFromInt(400),
			Currency:   domain.CurrencyTRY,
			Method:     "cash",
			ReceivedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
	}, nil)

	uc := usecase.NewStatementUseCase(customerRepo, saleRepo, receiptRepo, nil, nil)

	window := &domain.PeriodWindow{
		Start: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}

	statement, err := uc.GetStatement(context.Background(), "cust-1", window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !statement.PriorBalance.Get(domain.CurrencyTRY).Equal(decimal.NewFromInt(1000)) {
		t.Errorf("prior balance = %s, want 1000", statement.PriorBalance.Get(domain.CurrencyTRY))
	}

	if len(statement.Allocations) != 1 {
		t.Fatalf("expected 1 allocation, got %d", len(statement.Allocations))
	}

	if !statement.Allocations[0].AppliedToPrior.Equal(decimal.NewFromInt(400)) {
		t.Errorf("applied to prior = %s, want 400", statement.Allocations[0].AppliedToPrior)
	}

	if !statement.RemainingPriorBalance.Get(domain.CurrencyTRY).Equal(decimal.NewFromInt(600)) {
		t.Errorf("remaining prior = %s, want 600", statement.RemainingPriorBalance.Get(domain.CurrencyTRY))
	}

	if !statement.PeriodTotals[domain.CurrencyTRY].DecreaseTotal.Equal(decimal.NewFromInt(400)) {
		t.Errorf("period decrease total = %s, want 400", statement.PeriodTotals[domain.CurrencyTRY].DecreaseTotal)
	}

	if !statement.ClosingBalance.Get(domain.CurrencyTRY).Equal(decimal.NewFromInt(600)) {
		t.Errorf("closing balance = %s, want 600", statement.ClosingBalance.Get(domain.CurrencyTRY))
	}
}

func TestStatementUseCase_GetStatement_InvalidWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := usecase.NewStatementUseCase(
		mocks.NewMockCustomerRepository(ctrl),
		mocks.NewMockSaleRepository(ctrl),
		mocks.NewMockReceiptRepository(ctrl),
		nil,
		nil,
	)

	window := &domain.PeriodWindow{
		Start: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	if _, err := uc.GetStatement(context.Background(), "cust-1", window); err != domain.ErrInvalidWindow {
		t.Fatalf("expected ErrInvalidWindow, got %v", err)
	}
}

func TestStatementUseCase_GetStatement_CustomerNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	customerRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, domain.ErrCustomerNotFound)

	uc := usecase.NewStatementUseCase(
		customerRepo,
		mocks.NewMockSaleRepository(ctrl),
		mocks.NewMockReceiptRepository(ctrl),
		nil,
		nil,
	)

	if _, err := uc.GetStatement(context.Background(), "missing", nil); err != domain.ErrCustomerNotFound {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestStatementUseCase_GetStatement_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cached, err := json.Marshal(&usecase.Statement{
		Customer:       &domain.Customer{ID: "cust-1", Name: "Yilmaz Deri"},
		ClosingBalance: domain.Balance{domain.CurrencyTRY: decimal.NewFromInt(250)},
	})
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}

	cache := mocks.NewMockCache(ctrl)
	cache.EXPECT().Get(gomock.Any(), "statement:cust-1").Return(cached, nil)

	// Repositories must not be touched on a cache hit.
	uc := usecase.NewStatementUseCase(
		mocks.NewMockCustomerRepository(ctrl),
		mocks.NewMockSaleRepository(ctrl),
		mocks.NewMockReceiptRepository(ctrl),
		cache,
		nil,
	)

	statement, err := uc.GetStatement(context.Background(), "cust-1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !statement.ClosingBalance.Get(domain.CurrencyTRY).Equal(decimal.NewFromInt(250)) {
		t.Errorf("closing balance = %s, want 250", statement.ClosingBalance.Get(domain.CurrencyTRY))
	}
}

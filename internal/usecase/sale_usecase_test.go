package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/duhaderi/defter/internal/domain"
)

func TestSaleUseCase_RecordSale(t *testing.T) {
	customers := &fakeCustomerRepository{customers: map[string]*domain.Customer{
		"cust-1": {ID: "cust-1", Name: "Yilmaz Deri"},
	}}
	sales := &fakeSaleRepository{}
	cache := &fakeCache{}

	uc := NewSaleUseCase(sales, customers, &fakeIDGenerator{prefix: "sale"}, cache, nil)

	sale, err := uc.RecordSale(context.Background(), RecordSaleInput{
		CustomerID: "cust-1",
		Type:       domain.TransactionTypeSale,
		Amount:     decimal.NewFromInt(1500),
		Currency:   domain.CurrencyTRY,
		Category:   "bags",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sale.Movement().Direction != domain.DirectionIncrease {
		t.Error("a sale must charge the customer")
	}

	if len(sales.sales) != 1 {
		t.Fatalf("expected 1 stored sale, got %d", len(sales.sales))
	}

	if !cache.deleted["statement:cust-1"] {
		t.Error("expected cached statement to be invalidated")
	}
}

func TestSaleUseCase_RecordReturn(t *testing.T) {
	customers := &fakeCustomerRepository{customers: map[string]*domain.Customer{
		"cust-1": {ID: "cust-1"},
	}}

	uc := NewSaleUseCase(&fakeSaleRepository{}, customers, &fakeIDGenerator{prefix: "sale"}, nil, nil)

	sale, err := uc.RecordSale(context.Background(), RecordSaleInput{
		CustomerID: "cust-1",
		Type:       domain.TransactionTypeReturn,
		Amount:     decimal.NewFromInt(500),
		Currency:   domain.CurrencyTRY,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A return is a first-class type, never a negative amount.
	if sale.Amount.IsNegative() {
		t.Error("return amount must stay non-negative")
	}

	if sale.Movement().Direction != domain.DirectionDecrease {
		t.Error("a return must credit the customer")
	}
}

func TestSaleUseCase_RecordSale_Errors(t *testing.T) {
	tests := []struct {
		name        string
		input       RecordSaleInput
		expectedErr error
	}{
		{
			name: "unknown customer",
			input: RecordSaleInput{
				CustomerID: "missing",
				Type:       domain.TransactionTypeSale,
				Amount:     decimal.NewFromInt(100),
				Currency:   domain.CurrencyTRY,
			},
			expectedErr: domain.ErrCustomerNotFound,
		},
		{
			name: "bad transaction type",
			input: RecordSaleInput{
				CustomerID: "cust-1",
				Type:       "exchange",
				Amount:     decimal.NewFromInt(100),
				Currency:   domain.CurrencyTRY,
			},
			expectedErr: domain.ErrInvalidTransactionType,
		},
		{
			name: "negative amount",
			input: RecordSaleInput{
				CustomerID: "cust-1",
				Type:       domain.TransactionTypeSale,
				Amount:     decimal.NewFromInt(-100),
				Currency:   domain.CurrencyTRY,
			},
			expectedErr: domain.ErrInvalidAmount,
		},
	}

	customers := &fakeCustomerRepository{customers: map[string]*domain.Customer{
		"cust-1": {ID: "cust-1"},
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewSaleUseCase(&fakeSaleRepository{}, customers, &fakeIDGenerator{prefix: "sale"}, nil, nil)

			if _, err := uc.RecordSale(context.Background(), tt.input); err != tt.expectedErr {
				t.Fatalf("expected %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestSaleUseCase_DeleteSale_InvalidatesStatement(t *testing.T) {
	sales := &fakeSaleRepository{sales: []*domain.Sale{
		{ID: "sale-1", CustomerID: "cust-1"},
	}}
	cache := &fakeCache{}

	uc := NewSaleUseCase(sales, &fakeCustomerRepository{}, &fakeIDGenerator{prefix: "sale"}, cache, nil)

	if err := uc.DeleteSale(context.Background(), "sale-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sales.sales) != 0 {
		t.Error("expected sale to be deleted")
	}

	if !cache.deleted["statement:cust-1"] {
		t.Error("expected cached statement to be invalidated")
	}
}

type fakeCustomerRepository struct {
	customers map[string]*domain.Customer
}

func (f *fakeCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	if f.customers == nil {
		f.customers = make(map[string]*domain.Customer)
	}
	f.customers[customer.ID] = customer
	return nil
}

func (f *fakeCustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	customer, ok := f.customers[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return customer, nil
}

func (f *fakeCustomerRepository) List(ctx context.Context, limit, offset int) ([]*domain.Customer, error) {
	out := make([]*domain.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	f.customers[customer.ID] = customer
	return nil
}

func (f *fakeCustomerRepository) Delete(ctx context.Context, id string) error {
	delete(f.customers, id)
	return nil
}

type fakeSaleRepository struct {
	sales []*domain.Sale
}

func (f *fakeSaleRepository) Create(ctx context.Context, sale *domain.Sale) error {
	f.sales = append(f.sales, sale)
	return nil
}

func (f *fakeSaleRepository) GetByID(ctx context.Context, id string) (*domain.Sale, error) {
	for _, s := range f.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domain.ErrSaleNotFound
}

func (f *fakeSaleRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Sale, error) {
	var out []*domain.Sale
	for _, s := range f.sales {
		if s.CustomerID == customerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSaleRepository) Delete(ctx context.Context, id string) error {
	for i, s := range f.sales {
		if s.ID == id {
			f.sales = append(f.sales[:i], f.sales[i+1:]...)
			return nil
		}
	}
	return domain.ErrSaleNotFound
}

type fakeCache struct {
	values  map[string][]byte
	deleted map[string]bool
}

func (f *fakeCache) Get(ctx context.Context, key string) ([]byte, error) {
	if value, ok := f.values[key]; ok {
		return value, nil
	}
	return nil, errors.New("cache miss")
}

func (f *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if f.values == nil {
		f.values = make(map[string][]byte)
	}
	f.values[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	if f.deleted == nil {
		f.deleted = make(map[string]bool)
	}
	f.deleted[key] = true
	return nil
}

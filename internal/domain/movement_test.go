package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestMovement_Signed(t *testing.T) {
	tests := []struct {
		name     string
		movement Movement
		want     decimal.Decimal
	}{
		{
			name: "increase contributes positive",
			movement: Movement{
				ID:        "m-1",
				Direction: DirectionIncrease,
				Amount:    decimal.NewFromInt(100),
				Currency:  CurrencyTRY,
			},
			want: decimal.NewFromInt(100),
		},
		{
			name: "decrease contributes negative",
			movement: Movement{
				ID:        "m-2",
				Direction: DirectionDecrease,
				Amount:    decimal.NewFromInt(40),
				Currency:  CurrencyTRY,
			},
			want: decimal.NewFromInt(-40),
		},
		{
			name: "missing direction contributes zero",
			movement: Movement{
				ID:       "m-3",
				Amount:   decimal.NewFromInt(100),
				Currency: CurrencyTRY,
			},
			want: decimal.Zero,
		},
		{
			name: "missing currency contributes zero",
			movement: Movement{
				ID:        "m-4",
				Direction: DirectionIncrease,
				Amount:    decimal.NewFromInt(100),
			},
			want: decimal.Zero,
		},
		{
			name: "negative amount contributes zero",
			movement: Movement{
				ID:        "m-5",
				Direction: DirectionIncrease,
				Amount:    decimal.NewFromInt(-100),
				Currency:  CurrencyTRY,
			},
			want: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.movement.Signed(); !got.Equal(tt.want) {
				t.Errorf("Signed() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSale_MovementProjection(t *testing.T) {
	occurred := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	sale := &Sale{
		ID:         "sale-1",
		CustomerID: "cust-1",
		Type:       TransactionTypeSale,
		Amount:     decimal.NewFromInt(300),
		Currency:   CurrencyTRY,
		OccurredAt: occurred,
	}

	m := sale.Movement()
	if m.Direction != DirectionIncrease {
		t.Errorf("sale direction = %s, want increase", m.Direction)
	}
	if !m.Timestamp.Equal(occurred) {
		t.Errorf("timestamp = %s, want %s", m.Timestamp, occurred)
	}

	sale.Type = TransactionTypeReturn
	m = sale.Movement()
	if m.Direction != DirectionDecrease {
		t.Errorf("return direction = %s, want decrease", m.Direction)
	}
	if m.Amount.IsNegative() {
		t.Errorf("return amount = %s, want non-negative", m.Amount)
	}
}

func TestSale_Validate(t *testing.T) {
	valid := func() *Sale {
		return &Sale{
			ID:         "sale-1",
			CustomerID: "cust-1",
			Type:       TransactionTypeSale,
			Amount:     decimal.NewFromInt(100),
			Currency:   CurrencyTRY,
		}
	}

	tests := []struct {
		name    string
		mutate  func(s *Sale)
		wantErr error
	}{
		{"valid sale", func(s *Sale) {}, nil},
		{"missing customer", func(s *Sale) { s.CustomerID = "" }, ErrCustomerRequired},
		{"bad type", func(s *Sale) { s.Type = "refund" }, ErrInvalidTransactionType},
		{"zero amount", func(s *Sale) { s.Amount = decimal.Zero }, ErrInvalidAmount},
		{"negative amount", func(s *Sale) { s.Amount = decimal.NewFromInt(-5) }, ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(s)

			if err := s.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

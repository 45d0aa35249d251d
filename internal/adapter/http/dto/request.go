package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/duhaderi/defter/internal/domain"
	"github.com/duhaderi/defter/internal/usecase"
)

// CreateCustomerRequest represents a request to create a customer.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Note    string `json:"note,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateCustomerRequest) ToUseCaseInput() usecase.CreateCustomerInput {
	return usecase.CreateCustomerInput{
		Name:    r.Name,
		Phone:   r.Phone,
		Address: r.Address,
		Note:    r.Note,
	}
}

// RecordSaleRequest represents a request to record a sale or a return.
type RecordSaleRequest struct {
	CustomerID string          `json:"customer_id"`
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	Category   string          `json:"category,omitempty"`
	Note       string          `json:"note,omitempty"`
	OccurredAt *time.Time      `json:"occurred_at,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordSaleRequest) ToUseCaseInput() usecase.RecordSaleInput {
	return usecase.RecordSaleInput{
		CustomerID: r.CustomerID,
		Type:       domain.TransactionType(r.Type),
		Amount:     r.Amount,
		Currency:   r.Currency,
		Category:   r.Category,
		Note:       r.Note,
		OccurredAt: r.OccurredAt,
	}
}

// RecordReceiptRequest represents a request to record a customer payment.
type RecordReceiptRequest struct {
	CustomerID string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	Method     string          `json:"method,omitempty"`
	Note       string          `json:"note,omitempty"`
	ReceivedAt *time.Time      `json:"received_at,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordReceiptRequest) ToUseCaseInput() usecase.RecordReceiptInput {
	return usecase.RecordReceiptInput{
		CustomerID: r.CustomerID,
		Amount:     r.Amount,
		Currency:   r.Currency,
		Method:     r.Method,
		Note:       r.Note,
		ReceivedAt: r.ReceivedAt,
	}
}

// RecordCashEntryRequest represents a request to record a register entry.
type RecordCashEntryRequest struct {
	Direction  string          `json:"direction"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	Category   string          `json:"category,omitempty"`
	Note       string          `json:"note,omitempty"`
	OccurredAt *time.Time      `json:"occurred_at,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordCashEntryRequest) ToUseCaseInput() usecase.RecordCashEntryInput {
	return usecase.RecordCashEntryInput{
		Direction:  domain.Direction(r.Direction),
		Amount:     r.Amount,
		Currency:   r.Currency,
		Category:   r.Category,
		Note:       r.Note,
		OccurredAt: r.OccurredAt,
	}
}

// RegisterCheckRequest represents a request to register a check or
// promissory note in the portfolio.
type RegisterCheckRequest struct {
	CustomerID   string          `json:"customer_id"`
	Kind         string          `json:"kind"`
	Direction    string          `json:"direction"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	BankName     string          `json:"bank_name,omitempty"`
	SerialNumber string          `json:"serial_number,omitempty"`
	DueDate      time.Time       `json:"due_date"`
	ReceivedAt   *time.Time      `json:"received_at,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RegisterCheckRequest) ToUseCaseInput() usecase.RegisterCheckInput {
	return usecase.RegisterCheckInput{
		CustomerID:   r.CustomerID,
		Kind:         domain.CheckKind(r.Kind),
		Direction:    domain.Direction(r.Direction),
		Amount:       r.Amount,
		Currency:     r.Currency,
		BankName:     r.BankName,
		SerialNumber: r.SerialNumber,
		DueDate:      r.DueDate,
		ReceivedAt:   r.ReceivedAt,
	}
}

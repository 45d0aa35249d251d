package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/duhaderi/defter/internal/domain"
	"github.com/duhaderi/defter/internal/ledger"
	"github.com/duhaderi/defter/internal/usecase"
)

// CustomerResponse represents a customer in API responses.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerFromDomain converts a domain customer to a response.
func CustomerFromDomain(c *domain.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Address:   c.Address,
		Note:      c.Note,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CustomersFromDomain converts domain customers to responses.
func CustomersFromDomain(customers []*domain.Customer) []*CustomerResponse {
	result := make([]*CustomerResponse, len(customers))
	for i, c := range customers {
		result[i] = CustomerFromDomain(c)
	}
	return result
}

// ListCustomersResponse wraps a customer listing.
type ListCustomersResponse struct {
	Customers []*CustomerResponse `json:"customers"`
	Total     int64               `json:"total"`
}

// SaleResponse represents a sale or return in API responses.
type SaleResponse struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	Category   string          `json:"category,omitempty"`
	Note       string          `json:"note,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
	CreatedAt  time.Time       `json:"created_at"`
}

// SaleFromDomain converts a domain sale to a response.
func SaleFromDomain(s *domain.Sale) *SaleResponse {
	return &SaleResponse{
		ID:         s.ID,
		CustomerID: s.CustomerID,
		Type:       string(s.Type),
		Amount:     s.Amount,
		Currency:   s.Currency,
		Category:   s.Category,
		Note:       s.Note,
		OccurredAt: s.OccurredAt,
		CreatedAt:  s.CreatedAt,
	}
}

// SalesFromDomain converts domain sales to responses.
func SalesFromDomain(sales []*domain.Sale) []*SaleResponse {
	result := make([]*SaleResponse, len(sales))
	for i, s := range sales {
		result[i] = SaleFromDomain(s)
	}
	return result
}

// ReceiptResponse represents a customer payment in API responses.
type ReceiptResponse struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	Method     string          `json:"method,omitempty"`
	Note       string          `json:"note,omitempty"`
	ReceivedAt time.Time       `json:"received_at"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ReceiptFromDomain converts a domain receipt to a response.
func ReceiptFromDomain(r *domain.Receipt) *ReceiptResponse {
	return &ReceiptResponse{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		Amount:     r.Amount,
		Currency:   r.Currency,
		Method:     r.Method,
		Note:       r.Note,
		ReceivedAt: r.ReceivedAt,
		CreatedAt:  r.CreatedAt,
	}
}

// ReceiptsFromDomain converts domain receipts to responses.
func ReceiptsFromDomain(receipts []*domain.Receipt) []*ReceiptResponse {
	result := make([]*ReceiptResponse, len(receipts))
	for i, r := range receipts {
		result[i] = ReceiptFromDomain(r)
	}
	return result
}

// CashEntryResponse represents a register entry in API responses.
type CashEntryResponse struct {
	ID         string          `json:"id"`
	Direction  string          `json:"direction"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	Category   string          `json:"category,omitempty"`
	Note       string          `json:"note,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
	CreatedAt  time.Time       `json:"created_at"`
}

// CashEntryFromDomain converts a domain cash entry to a response.
func CashEntryFromDomain(e *domain.CashEntry) *CashEntryResponse {
	return &CashEntryResponse{
		ID:         e.ID,
		Direction:  string(e.Direction),
		Amount:     e.Amount,
		Currency:   e.Currency,
		Category:   e.Category,
		Note:       e.Note,
		OccurredAt: e.OccurredAt,
		CreatedAt:  e.CreatedAt,
	}
}

// CheckResponse represents a portfolio instrument in API responses.
type CheckResponse struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customer_id"`
	Kind         string          `json:"kind"`
	Direction    string          `json:"direction"`
	Status       string          `json:"status"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	BankName     string          `json:"bank_name,omitempty"`
	SerialNumber string          `json:"serial_number,omitempty"`
	DueDate      time.Time       `json:"due_date"`
	ReceivedAt   time.Time       `json:"received_at"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CheckFromDomain converts a domain check to a response.
func CheckFromDomain(c *domain.Check) *CheckResponse {
	return &CheckResponse{
		ID:           c.ID,
		CustomerID:   c.CustomerID,
		Kind:         string(c.Kind),
		Direction:    string(c.Direction),
		Status:       string(c.Status),
		Amount:       c.Amount,
		Currency:     c.Currency,
		BankName:     c.BankName,
		SerialNumber: c.SerialNumber,
		DueDate:      c.DueDate,
		ReceivedAt:   c.ReceivedAt,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// ChecksFromDomain converts domain checks to responses.
func ChecksFromDomain(checks []*domain.Check) []*CheckResponse {
	result := make([]*CheckResponse, len(checks))
	for i, c := range checks {
		result[i] = CheckFromDomain(c)
	}
	return result
}

// CashOutResponse pairs the updated instrument with the register entry
// written by the cash-out.
type CashOutResponse struct {
	Check     *CheckResponse     `json:"check"`
	CashEntry *CashEntryResponse `json:"cash_entry"`
}

// WindowResponse represents a reporting period in API responses.
type WindowResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// LineResponse represents one ledger line with its running balance.
type LineResponse struct {
	ID              string          `json:"id"`
	Timestamp       time.Time       `json:"timestamp"`
	Direction       string          `json:"direction"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Kind            string          `json:"kind,omitempty"`
	PreviousBalance decimal.Decimal `json:"previous_balance"`
	NewBalance      decimal.Decimal `json:"new_balance"`
}

// LinesFromLedger converts ledger lines to responses.
func LinesFromLedger(lines []ledger.Line) []LineResponse {
	result := make([]LineResponse, len(lines))
	for i, l := range lines {
		result[i] = LineResponse{
			ID:              l.ID,
			Timestamp:       l.Timestamp,
			Direction:       string(l.Direction),
			Amount:          l.Amount,
			Currency:        l.Currency,
			Kind:            l.Kind,
			PreviousBalance: l.PreviousBalance,
			NewBalance:      l.NewBalance,
		}
	}
	return result
}

// TotalsResponse represents one currency's period totals.
type TotalsResponse struct {
	IncreaseTotal decimal.Decimal `json:"increase_total"`
	DecreaseTotal decimal.Decimal `json:"decrease_total"`
	NetTotal      decimal.Decimal `json:"net_total"`
}

// TotalsFromLedger converts per-currency totals to responses.
func TotalsFromLedger(totals map[string]ledger.Totals) map[string]TotalsResponse {
	result := make(map[string]TotalsResponse, len(totals))
	for currency, t := range totals {
		result[currency] = TotalsResponse{
			IncreaseTotal: t.IncreaseTotal,
			DecreaseTotal: t.DecreaseTotal,
			NetTotal:      t.NetTotal,
		}
	}
	return result
}

// AllocationResponse records how one receipt split between prior debt and
// current-period activity.
type AllocationResponse struct {
	ReceiptID        string          `json:"receipt_id"`
	Currency         string          `json:"currency"`
	AppliedToPrior   decimal.Decimal `json:"applied_to_prior"`
	AppliedToCurrent decimal.Decimal `json:"applied_to_current"`
}

// AllocationsFromLedger converts receipt allocations to responses.
func AllocationsFromLedger(allocations []ledger.ReceiptAllocation) []AllocationResponse {
	result := make([]AllocationResponse, len(allocations))
	for i, a := range allocations {
		result[i] = AllocationResponse{
			ReceiptID:        a.ReceiptID,
			Currency:         a.Currency,
			AppliedToPrior:   a.AppliedToPrior,
			AppliedToCurrent: a.AppliedToCurrent,
		}
	}
	return result
}

// StatementResponse represents a customer statement of account.
type StatementResponse struct {
	GeneratedAt           time.Time                 `json:"generated_at"`
	Window                *WindowResponse           `json:"window,omitempty"`
	Customer              *CustomerResponse         `json:"customer"`
	Lines                 []LineResponse            `json:"lines"`
	PeriodTotals          map[string]TotalsResponse `json:"period_totals"`
	PriorBalance          domain.Balance            `json:"prior_balance,omitempty"`
	RemainingPriorBalance domain.Balance            `json:"remaining_prior_balance,omitempty"`
	Allocations           []AllocationResponse      `json:"allocations,omitempty"`
	ClosingBalance        domain.Balance            `json:"closing_balance"`
}

// StatementFromUseCase converts a computed statement to a response.
func StatementFromUseCase(s *usecase.Statement) *StatementResponse {
	resp := &StatementResponse{
		GeneratedAt:           s.GeneratedAt,
		Customer:              CustomerFromDomain(s.Customer),
		Lines:                 LinesFromLedger(s.Lines),
		PeriodTotals:          TotalsFromLedger(s.PeriodTotals),
		PriorBalance:          s.PriorBalance,
		RemainingPriorBalance: s.RemainingPriorBalance,
		Allocations:           AllocationsFromLedger(s.Allocations),
		ClosingBalance:        s.ClosingBalance,
	}

	if s.Window != nil {
		resp.Window = &WindowResponse{Start: s.Window.Start, End: s.Window.End}
	}

	return resp
}

// CashSummaryResponse aggregates the register over an optional window.
type CashSummaryResponse struct {
	Window     *WindowResponse           `json:"window,omitempty"`
	Totals     map[string]TotalsResponse `json:"totals"`
	ByCategory map[string]domain.Balance `json:"by_category"`
	Closing    domain.Balance            `json:"closing"`
}

// CashSummaryFromUseCase converts a computed summary to a response.
func CashSummaryFromUseCase(s *usecase.CashSummary) *CashSummaryResponse {
	resp := &CashSummaryResponse{
		Totals:     TotalsFromLedger(s.Totals),
		ByCategory: s.ByCategory,
		Closing:    s.Closing,
	}

	if s.Window != nil {
		resp.Window = &WindowResponse{Start: s.Window.Start, End: s.Window.End}
	}

	return resp
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

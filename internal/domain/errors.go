package domain

import "errors"

var (
	// Customer errors
	ErrCustomerNotFound = errors.New("customer not found")
	ErrCustomerRequired = errors.New("customer id is required")

	// Movement errors
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrInvalidDirection       = errors.New("direction must be increase or decrease")
	ErrInvalidTransactionType = errors.New("transaction type must be sale or return")
	ErrInvalidWindow          = errors.New("window end precedes start")

	// Record errors
	ErrSaleNotFound      = errors.New("sale not found")
	ErrReceiptNotFound   = errors.New("receipt not found")
	ErrCashEntryNotFound = errors.New("cash entry not found")

	// Check errors
	ErrCheckNotFound       = errors.New("check not found")
	ErrInvalidCheckKind    = errors.New("check kind must be check or promissory_note")
	ErrInvalidCheckStatus  = errors.New("invalid check status")
	ErrCheckNotInPortfolio = errors.New("check is not in portfolio")
)

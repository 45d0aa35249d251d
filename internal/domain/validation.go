package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors
var (
	ErrInvalidCustomerName = errors.New("invalid customer name")
	ErrInvalidCurrency     = errors.New("invalid currency code")
)

// Validation constants
const (
	MaxCustomerNameLength = 255
	MinCustomerNameLength = 1
	MaxCurrencyCodeLength = 8
)

// ValidateCustomerName validates a customer name.
func ValidateCustomerName(name string) error {
	name = strings.TrimSpace(name)

	if len(name) < MinCustomerNameLength {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidCustomerName)
	}

	if len(name) > MaxCustomerNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidCustomerName, MaxCustomerNameLength)
	}

	return nil
}

// ValidateCurrency validates a currency code. The set is open: any short
// upper-case code is accepted, so a new currency needs no code change.
func ValidateCurrency(currency string) error {
	currency = strings.TrimSpace(currency)

	if currency == "" {
		return fmt.Errorf("%w: currency is required", ErrInvalidCurrency)
	}

	if len(currency) > MaxCurrencyCodeLength {
		return fmt.Errorf("%w: %s", ErrInvalidCurrency, currency)
	}

	if currency != strings.ToUpper(currency) {
		return fmt.Errorf("%w: %s must be upper case", ErrInvalidCurrency, currency)
	}

	return nil
}

// ValidatePagination validates and limits pagination parameters.
func ValidatePagination(limit, offset int) (int, int, error) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset, nil
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/duhaderi/defter/internal/adapter/http/dto"
	"github.com/duhaderi/defter/internal/domain"
)

// windowDateLayout is the wire format for reporting period bounds. Both
// bounds are calendar dates; the end date is inclusive.
const windowDateLayout = "2006-01-02"

var errPartialWindow = errors.New("from and to must be provided together")

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrSaleNotFound),
		errors.Is(err, domain.ErrReceiptNotFound),
		errors.Is(err, domain.ErrCashEntryNotFound),
		errors.Is(err, domain.ErrCheckNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrCheckNotInPortfolio):
		return http.StatusConflict
	case errors.Is(err, domain.ErrCustomerRequired),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidDirection),
		errors.Is(err, domain.ErrInvalidTransactionType),
		errors.Is(err, domain.ErrInvalidWindow),
		errors.Is(err, domain.ErrInvalidCheckKind),
		errors.Is(err, domain.ErrInvalidCheckStatus),
		errors.Is(err, domain.ErrInvalidCustomerName),
		errors.Is(err, domain.ErrInvalidCurrency):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}

// parseWindowQuery reads the optional from/to query parameters into a
// reporting window. Absent parameters mean the full history.
func parseWindowQuery(r *http.Request) (*domain.PeriodWindow, error) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	if from == "" && to == "" {
		return nil, nil
	}

	if from == "" || to == "" {
		return nil, errPartialWindow
	}

	start, err := time.Parse(windowDateLayout, from)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(windowDateLayout, to)
	if err != nil {
		return nil, err
	}

	window := &domain.PeriodWindow{Start: start, End: end}
	if err := window.Validate(); err != nil {
		return nil, err
	}

	return window, nil
}

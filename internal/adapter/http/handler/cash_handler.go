package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/duhaderi/defter/internal/adapter/http/dto"
	"github.com/duhaderi/defter/internal/domain"
	"github.com/duhaderi/defter/internal/ledger"
	"github.com/duhaderi/defter/internal/usecase"
)

// CashService defines the behavior needed by CashHandler.
type CashService interface {
	RecordEntry(ctx context.Context, input usecase.RecordCashEntryInput) (*domain.CashEntry, error)
	Ledger(ctx context.Context) ([]ledger.Line, error)
	Summary(ctx context.Context, window *domain.PeriodWindow) (*usecase.CashSummary, error)
	DeleteEntry(ctx context.Context, id string) error
}

// CashHandler handles cash register HTTP requests.
type CashHandler struct {
	cashUC CashService
}

// NewCashHandler creates a new CashHandler.
func NewCashHandler(cashUC CashService) *CashHandler {
	return &CashHandler{cashUC: cashUC}
}

// Create records a register entry.
func (h *CashHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordCashEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := h.cashUC.RecordEntry(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record cash entry", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.CashEntryFromDomain(entry))
}

// Ledger returns the register's movements with running balances.
func (h *CashHandler) Ledger(w http.ResponseWriter, r *http.Request) {
	lines, err := h.cashUC.Ledger(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute ledger", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LinesFromLedger(lines))
}

// Summary returns per-currency totals and a category breakdown over an
// optional from/to window.
func (h *CashHandler) Summary(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindowQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid window", err.Error())
		return
	}

	summary, err := h.cashUC.Summary(r.Context(), window)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute summary", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CashSummaryFromUseCase(summary))
}

// Delete removes a register entry.
func (h *CashHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing entry ID", "")
		return
	}

	if err := h.cashUC.DeleteEntry(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete cash entry", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

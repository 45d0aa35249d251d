package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/duhaderi/defter/internal/adapter/http/dto"
	"github.com/duhaderi/defter/internal/domain"
	"github.com/duhaderi/defter/internal/usecase"
)

// StatementService defines the behavior needed by StatementHandler.
type StatementService interface {
	GetStatement(ctx context.Context, customerID string, window *domain.PeriodWindow) (*usecase.Statement, error)
}

// StatementHandler serves customer statements of account.
type StatementHandler struct {
	statementUC StatementService
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(statementUC StatementService) *StatementHandler {
	return &StatementHandler{statementUC: statementUC}
}

// Get computes a customer's statement over an optional from/to window.
func (h *StatementHandler) Get(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")
	if customerID == "" {
		writeError(w, http.StatusBadRequest, "missing customer ID", "")
		return
	}

	window, err := parseWindowQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid window", err.Error())
		return
	}

	statement, err := h.statementUC.GetStatement(r.Context(), customerID, window)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute statement", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StatementFromUseCase(statement))
}

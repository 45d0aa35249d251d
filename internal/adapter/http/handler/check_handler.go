package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/duhaderi/defter/internal/adapter/http/dto"
	"github.com/duhaderi/defter/internal/domain"
	"github.com/duhaderi/defter/internal/usecase"
)

// CheckService defines the behavior needed by CheckHandler.
type CheckService interface {
	RegisterCheck(ctx context.Context, input usecase.RegisterCheckInput) (*domain.Check, error)
	GetCheck(ctx context.Context, id string) (*domain.Check, error)
	ListPortfolio(ctx context.Context) ([]*domain.Check, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Check, error)
	PortfolioBreakdown(ctx context.Context) (map[string]domain.Balance, error)
	Collect(ctx context.Context, id string) (*domain.Check, error)
	MarkReturned(ctx context.Context, id string) (*domain.Check, error)
	CashOut(ctx context.Context, id string) (*domain.Check, *domain.CashEntry, error)
}

// CheckHandler handles check portfolio HTTP requests.
type CheckHandler struct {
	checkUC CheckService
}

// NewCheckHandler creates a new CheckHandler.
func NewCheckHandler(checkUC CheckService) *CheckHandler {
	return &CheckHandler{checkUC: checkUC}
}

// Create registers a check or promissory note in the portfolio.
func (h *CheckHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	check, err := h.checkUC.RegisterCheck(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to register check", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.CheckFromDomain(check))
}

// Get retrieves an instrument by ID.
func (h *CheckHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing check ID", "")
		return
	}

	check, err := h.checkUC.GetCheck(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get check", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CheckFromDomain(check))
}

// ListPortfolio lists instruments still held in the portfolio.
func (h *CheckHandler) ListPortfolio(w http.ResponseWriter, r *http.Request) {
	checks, err := h.checkUC.ListPortfolio(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list portfolio", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ChecksFromDomain(checks))
}

// ListByCustomer lists a customer's instruments.
func (h *CheckHandler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")
	if customerID == "" {
		writeError(w, http.StatusBadRequest, "missing customer ID", "")
		return
	}

	checks, err := h.checkUC.ListByCustomer(r.Context(), customerID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list checks", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ChecksFromDomain(checks))
}

// Breakdown sums held instruments per kind and currency.
func (h *CheckHandler) Breakdown(w http.ResponseWriter, r *http.Request) {
	breakdown, err := h.checkUC.PortfolioBreakdown(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute breakdown", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, breakdown)
}

// Collect marks a portfolio instrument as collected at the bank.
func (h *CheckHandler) Collect(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.checkUC.Collect, "failed to collect check")
}

// MarkReturned marks a portfolio instrument as bounced.
func (h *CheckHandler) MarkReturned(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.checkUC.MarkReturned, "failed to mark check returned")
}

// CashOut converts a portfolio instrument to cash. The response carries
// both the updated instrument and the register entry written with it.
func (h *CheckHandler) CashOut(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing check ID", "")
		return
	}

	check, entry, err := h.checkUC.CashOut(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to cash out check", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CashOutResponse{
		Check:     dto.CheckFromDomain(check),
		CashEntry: dto.CashEntryFromDomain(entry),
	})
}

func (h *CheckHandler) transition(w http.ResponseWriter, r *http.Request, op func(context.Context, string) (*domain.Check, error), failMsg string) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing check ID", "")
		return
	}

	check, err := op(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), failMsg, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CheckFromDomain(check))
}

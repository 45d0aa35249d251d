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

// SaleService defines the behavior needed by SaleHandler.
type SaleService interface {
	RecordSale(ctx context.Context, input usecase.RecordSaleInput) (*domain.Sale, error)
	ListSalesByCustomer(ctx context.Context, customerID string) ([]*domain.Sale, error)
	DeleteSale(ctx context.Context, id string) error
}

// SaleHandler handles sale and return HTTP requests.
type SaleHandler struct {
	saleUC SaleService
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(saleUC SaleService) *SaleHandler {
	return &SaleHandler{saleUC: saleUC}
}

// Create records a sale or a return.
func (h *SaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	sale, err := h.saleUC.RecordSale(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record sale", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.SaleFromDomain(sale))
}

// ListByCustomer lists a customer's sales and returns.
func (h *SaleHandler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")
	if customerID == "" {
		writeError(w, http.StatusBadRequest, "missing customer ID", "")
		return
	}

	sales, err := h.saleUC.ListSalesByCustomer(r.Context(), customerID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list sales", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SalesFromDomain(sales))
}

// Delete removes a sale.
func (h *SaleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing sale ID", "")
		return
	}

	if err := h.saleUC.DeleteSale(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete sale", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

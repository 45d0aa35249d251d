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

// ReceiptService defines the behavior needed by ReceiptHandler.
type ReceiptService interface {
	RecordReceipt(ctx context.Context, input usecase.RecordReceiptInput) (*domain.Receipt, error)
	ListReceiptsByCustomer(ctx context.Context, customerID string) ([]*domain.Receipt, error)
	DeleteReceipt(ctx context.Context, id string) error
}

// ReceiptHandler handles customer payment HTTP requests.
type ReceiptHandler struct {
	receiptUC ReceiptService
}

// NewReceiptHandler creates a new ReceiptHandler.
func NewReceiptHandler(receiptUC ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptUC: receiptUC}
}

// Create records a payment received from a customer.
func (h *ReceiptHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordReceiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	receipt, err := h.receiptUC.RecordReceipt(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record receipt", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.ReceiptFromDomain(receipt))
}

// ListByCustomer lists payments received from a customer.
func (h *ReceiptHandler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")
	if customerID == "" {
		writeError(w, http.StatusBadRequest, "missing customer ID", "")
		return
	}

	receipts, err := h.receiptUC.ListReceiptsByCustomer(r.Context(), customerID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list receipts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ReceiptsFromDomain(receipts))
}

// Delete removes a receipt.
func (h *ReceiptHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing receipt ID", "")
		return
	}

	if err := h.receiptUC.DeleteReceipt(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete receipt", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package http

import (
	"net/http"
	"strconv"
	"time"

	"coolgym-backend/internal/service"
)

type InvoiceHandler struct {
	invoices service.InvoiceService
}

func NewInvoiceHandler(invoices service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices}
}

type createInvoiceRequest struct {
	UserID               int32      `json:"user_id"`
	CompanyName          string     `json:"company_name"`
	Amount               float64    `json:"amount"`
	Currency             string     `json:"currency"`
	Status               string     `json:"status"`
	IssuedAt             *time.Time `json:"issued_at,omitempty"`
	PaidAt               *time.Time `json:"paid_at,omitempty"`
	ProviderID           *int32     `json:"provider_id,omitempty"`
	MaintenanceRequestID *int32     `json:"maintenance_request_id,omitempty"`
	RentalRequestID      *int32     `json:"rental_request_id,omitempty"`
}

func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createInvoiceRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	issuedAt := time.Now().UTC()
	if req.IssuedAt != nil {
		issuedAt = *req.IssuedAt
	}
	invoice, err := h.invoices.CreateInvoice(r.Context(), service.IssueInvoiceInput{
		UserID:               req.UserID,
		CompanyName:          req.CompanyName,
		Amount:               req.Amount,
		Currency:             req.Currency,
		Status:               req.Status,
		IssuedAt:             issuedAt,
		PaidAt:               req.PaidAt,
		ProviderID:           req.ProviderID,
		MaintenanceRequestID: req.MaintenanceRequestID,
		RentalRequestID:      req.RentalRequestID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, invoice)
}

func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid invoice id")
		return
	}
	invoice, err := h.invoices.GetInvoice(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, invoice)
}

func (h *InvoiceHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("user_id")
	userID, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || userID <= 0 {
		badRequest(w, "invalid user_id")
		return
	}

	list, err := h.invoices.ListInvoicesByUser(r.Context(), int32(userID))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

type payInvoiceRequest struct {
	PaidAt *time.Time `json:"paid_at,omitempty"`
}

func (h *InvoiceHandler) MarkAsPaid(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid invoice id")
		return
	}
	var req payInvoiceRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	paidAt := time.Now().UTC()
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}

	invoice, err := h.invoices.MarkInvoiceAsPaid(r.Context(), id, paidAt)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, invoice)
}

func (h *InvoiceHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid invoice id")
		return
	}
	invoice, err := h.invoices.CancelInvoice(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, invoice)
}

func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid invoice id")
		return
	}
	if err := h.invoices.DeleteInvoice(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

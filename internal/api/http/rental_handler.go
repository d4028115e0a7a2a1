package http

import (
	"net/http"
	"strconv"

	"coolgym-backend/internal/service"
)

type RentalHandler struct {
	rentals service.RentalService
}

func NewRentalHandler(rentals service.RentalService) *RentalHandler {
	return &RentalHandler{rentals: rentals}
}

type createRentalRequest struct {
	EquipmentID  int32   `json:"equipment_id"`
	ClientID     int32   `json:"client_id"`
	MonthlyPrice float64 `json:"monthly_price"`
	Notes        *string `json:"notes,omitempty"`
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if req.EquipmentID <= 0 || req.ClientID <= 0 {
		badRequest(w, "equipment_id and client_id are required")
		return
	}

	view, err := h.rentals.CreateRentalRequest(r.Context(), service.CreateRentalRequestInput{
		EquipmentID:  req.EquipmentID,
		ClientID:     req.ClientID,
		MonthlyPrice: req.MonthlyPrice,
		Notes:        req.Notes,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid rental request id")
		return
	}
	view, err := h.rentals.GetRentalRequest(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("client_id"); raw != "" {
		clientID, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || clientID <= 0 {
			badRequest(w, "invalid client_id")
			return
		}
		list, err := h.rentals.ListRentalRequestsByClient(r.Context(), int32(clientID))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
		return
	}
	if status := r.URL.Query().Get("status"); status != "" {
		list, err := h.rentals.ListRentalRequestsByStatus(r.Context(), status)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
		return
	}

	list, err := h.rentals.ListAllRentalRequests(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Approve requires the caller to be a provider; the provider id on the
// approved request comes from the access token, not the body.
func (h *RentalHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid rental request id")
		return
	}
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	view, err := h.rentals.ApproveRentalRequest(r.Context(), id, claims.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type updateRentalStatusRequest struct {
	Status string `json:"status"`
}

func (h *RentalHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid rental request id")
		return
	}
	var req updateRentalStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	view, err := h.rentals.UpdateRentalRequestStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *RentalHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid rental request id")
		return
	}
	if err := h.rentals.CancelRentalRequest(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

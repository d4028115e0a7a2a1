package http

import (
	"net/http"
	"strconv"
	"time"

	"coolgym-backend/internal/service"
)

type MaintenanceHandler struct {
	maintenance service.MaintenanceService
}

func NewMaintenanceHandler(maintenance service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenance: maintenance}
}

type createMaintenanceRequest struct {
	EquipmentID  int32     `json:"equipment_id"`
	ClientID     int32     `json:"client_id"`
	SelectedDate time.Time `json:"selected_date"`
	Observation  string    `json:"observation"`
}

func (h *MaintenanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMaintenanceRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if req.EquipmentID <= 0 || req.ClientID <= 0 {
		badRequest(w, "equipment_id and client_id are required")
		return
	}

	created, err := h.maintenance.CreateMaintenanceRequest(r.Context(), service.CreateMaintenanceRequestInput{
		EquipmentID:  req.EquipmentID,
		ClientID:     req.ClientID,
		SelectedDate: req.SelectedDate,
		Observation:  req.Observation,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *MaintenanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid maintenance request id")
		return
	}
	req, err := h.maintenance.GetMaintenanceRequest(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *MaintenanceHandler) List(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("client_id"); raw != "" {
		clientID, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || clientID <= 0 {
			badRequest(w, "invalid client_id")
			return
		}
		list, err := h.maintenance.ListMaintenanceRequestsByClient(r.Context(), int32(clientID))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
		return
	}

	list, err := h.maintenance.ListMaintenanceRequests(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

type updateMaintenanceStatusRequest struct {
	Status string   `json:"status"`
	Amount *float64 `json:"amount,omitempty"`
}

// UpdateStatus moves a maintenance request along its lifecycle. A
// provider completing a visit may attach an amount to bill the client.
func (h *MaintenanceHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid maintenance request id")
		return
	}
	var req updateMaintenanceStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	var providerID *int32
	if claims, ok := ClaimsFromContext(r.Context()); ok && claims.Role == "provider" {
		providerID = &claims.UserID
	}

	updated, err := h.maintenance.UpdateMaintenanceRequestStatus(r.Context(), id, req.Status, providerID, req.Amount)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

package http

import (
	"net/http"
	"time"

	"coolgym-backend/internal/service"
)

type EquipmentHandler struct {
	equipment service.EquipmentService
}

func NewEquipmentHandler(equipment service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{equipment: equipment}
}

type createEquipmentRequest struct {
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	Model            string    `json:"model"`
	Manufacturer     string    `json:"manufacturer"`
	SerialNumber     string    `json:"serial_number"`
	Code             string    `json:"code"`
	InstallationDate time.Time `json:"installation_date"`
	PowerWatts       int32     `json:"power_watts"`
	Room             string    `json:"room"`
	Floor            int32     `json:"floor"`
}

func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEquipmentRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	equipment, err := h.equipment.CreateEquipment(r.Context(), service.CreateEquipmentInput{
		Name:             req.Name,
		Type:             req.Type,
		Model:            req.Model,
		Manufacturer:     req.Manufacturer,
		SerialNumber:     req.SerialNumber,
		Code:             req.Code,
		InstallationDate: req.InstallationDate,
		PowerWatts:       req.PowerWatts,
		Room:             req.Room,
		Floor:            req.Floor,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, equipment)
}

func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid equipment id")
		return
	}
	equipment, err := h.equipment.GetEquipment(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, equipment)
}

func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	if eqType := r.URL.Query().Get("type"); eqType != "" {
		list, err := h.equipment.ListEquipmentByType(r.Context(), eqType)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
		return
	}
	if status := r.URL.Query().Get("status"); status != "" {
		list, err := h.equipment.ListEquipmentByStatus(r.Context(), status)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
		return
	}

	list, err := h.equipment.ListEquipment(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

type updateEquipmentRequest struct {
	Name       *string `json:"name,omitempty"`
	Status     *string `json:"status,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	Image      *string `json:"image,omitempty"`
	Room       *string `json:"room,omitempty"`
	Floor      *int32  `json:"floor,omitempty"`
	PowerWatts *int32  `json:"power_watts,omitempty"`
}

func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid equipment id")
		return
	}
	var req updateEquipmentRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	equipment, err := h.equipment.UpdateEquipment(r.Context(), id, service.UpdateEquipmentInput{
		Name:       req.Name,
		Status:     req.Status,
		Notes:      req.Notes,
		Image:      req.Image,
		Room:       req.Room,
		Floor:      req.Floor,
		PowerWatts: req.PowerWatts,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, equipment)
}

func (h *EquipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid equipment id")
		return
	}
	if err := h.equipment.DeleteEquipment(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

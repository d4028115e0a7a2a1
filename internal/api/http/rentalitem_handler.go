package http

import (
	"net/http"

	"coolgym-backend/internal/service"

	"github.com/gorilla/mux"
)

type RentalItemHandler struct {
	items service.RentalItemService
}

func NewRentalItemHandler(items service.RentalItemService) *RentalItemHandler {
	return &RentalItemHandler{items: items}
}

type rentalItemRequest struct {
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Model        string  `json:"model"`
	MonthlyPrice float64 `json:"monthly_price"`
	Currency     string  `json:"currency"`
	ImageURL     string  `json:"image_url"`
	IsAvailable  bool    `json:"is_available"`
}

func (h *RentalItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req rentalItemRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	item, err := h.items.CreateRentalItem(r.Context(), service.CreateRentalItemInput{
		Name:         req.Name,
		Type:         req.Type,
		Model:        req.Model,
		MonthlyPrice: req.MonthlyPrice,
		Currency:     req.Currency,
		ImageURL:     req.ImageURL,
		IsAvailable:  req.IsAvailable,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *RentalItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid rental item id")
		return
	}
	item, err := h.items.GetRentalItem(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *RentalItemHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.items.ListRentalItems(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *RentalItemHandler) ListByType(w http.ResponseWriter, r *http.Request) {
	itemType := mux.Vars(r)["type"]
	list, err := h.items.ListRentalItemsByType(r.Context(), itemType)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *RentalItemHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	list, err := h.items.ListAvailableRentalItems(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *RentalItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid rental item id")
		return
	}
	var req rentalItemRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	item, err := h.items.UpdateRentalItem(r.Context(), id, service.UpdateRentalItemInput{
		Name:         req.Name,
		Type:         req.Type,
		Model:        req.Model,
		MonthlyPrice: req.MonthlyPrice,
		Currency:     req.Currency,
		ImageURL:     req.ImageURL,
		IsAvailable:  req.IsAvailable,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

type setAvailabilityRequest struct {
	IsAvailable bool `json:"is_available"`
}

func (h *RentalItemHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid rental item id")
		return
	}
	var req setAvailabilityRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	item, err := h.items.SetRentalItemAvailability(r.Context(), id, req.IsAvailable)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *RentalItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid rental item id")
		return
	}
	if err := h.items.DeleteRentalItem(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

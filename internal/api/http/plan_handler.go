package http

import (
	"net/http"

	"coolgym-backend/internal/service"
)

type PlanHandler struct {
	plans service.ClientPlanService
}

func NewPlanHandler(plans service.ClientPlanService) *PlanHandler {
	return &PlanHandler{plans: plans}
}

func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid plan id")
		return
	}
	plan, err := h.plans.GetPlan(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	plans, err := h.plans.ListPlans(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, plans)
}

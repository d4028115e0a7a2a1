package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"coolgym-backend/internal/domain"
	"coolgym-backend/internal/logger"
	"coolgym-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// writeError translates service and domain errors into HTTP statuses.
// Anything unrecognized is logged and reported as a 500 without
// leaking the underlying error text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var planLimit *service.PlanLimitError

	switch {
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrDuplicatePendingRequest),
		errors.Is(err, service.ErrDuplicateRentalItem),
		errors.Is(err, domain.ErrNotPending),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrInvoiceAlreadyPaid),
		errors.Is(err, domain.ErrCannotCancelPaid),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrUsernameTaken):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.As(err, &planLimit),
		errors.Is(err, service.ErrPlanLimitExceeded),
		errors.Is(err, service.ErrPlanNotFound):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrPermissionDenied):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
	case isValidationError(err):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func isValidationError(err error) bool {
	validation := []error{
		domain.ErrInvalidStatus,
		domain.ErrInvalidMaintenanceStatus,
		domain.ErrInvalidEquipmentStatus,
		domain.ErrInvalidInvoiceStatus,
		domain.ErrInvalidInvoiceUser,
		domain.ErrEmptyCompanyName,
		domain.ErrCompanyNameTooLong,
		domain.ErrInvalidInvoiceAmount,
		domain.ErrInvalidCurrency,
		domain.ErrPaidDateBeforeIssued,
		domain.ErrMissingPaidDate,
		domain.ErrPaidDateForUnpaid,
		domain.ErrInvalidUsername,
		domain.ErrEmptyName,
		domain.ErrInvalidUserType,
		domain.ErrInvalidEmail,
		domain.ErrInvalidRole,
		domain.ErrNegativeEquipmentMax,
		domain.ErrEmptyItemName,
		domain.ErrEmptyItemType,
		domain.ErrEmptyItemModel,
		domain.ErrNegativeItemPrice,
		domain.ErrInvalidItemCurrency,
	}
	for _, v := range validation {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

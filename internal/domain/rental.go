package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "pending"
	RentalStatusApproved  RentalStatus = "approved"
	RentalStatusRejected  RentalStatus = "rejected"
	RentalStatusCompleted RentalStatus = "completed"
	RentalStatusCancelled RentalStatus = "cancelled"
)

var (
	ErrInvalidStatus     = errors.New("invalid rental request status")
	ErrInvalidTransition = errors.New("invalid rental request status transition")
	ErrNotPending        = errors.New("only pending rental requests can be approved")
)

// rentalTransitions is the explicit state machine for rental requests.
// rejected, completed and cancelled are terminal.
var rentalTransitions = map[RentalStatus][]RentalStatus{
	RentalStatusPending:  {RentalStatusApproved, RentalStatusRejected, RentalStatusCancelled},
	RentalStatusApproved: {RentalStatusCompleted, RentalStatusCancelled},
}

// ParseRentalStatus validates a status string case-insensitively.
func ParseRentalStatus(s string) (RentalStatus, error) {
	status := RentalStatus(strings.ToLower(s))
	switch status {
	case RentalStatusPending, RentalStatusApproved, RentalStatusRejected,
		RentalStatusCompleted, RentalStatusCancelled:
		return status, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// CanTransition reports whether a rental request may move from one status to another.
func CanTransition(from, to RentalStatus) bool {
	for _, allowed := range rentalTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// RentalRequest is a client's ask to rent one piece of gym equipment.
// Equipment, client and provider are referenced by id only; the joined
// display fields live on the read side (RentalRequestView).
type RentalRequest struct {
	ID           int32        `json:"id"`
	EquipmentID  int32        `json:"equipment_id"`
	ClientID     int32        `json:"client_id"`
	ProviderID   *int32       `json:"provider_id,omitempty"`
	RequestDate  time.Time    `json:"request_date"`
	Status       RentalStatus `json:"status"`
	Notes        *string      `json:"notes,omitempty"`
	MonthlyPrice float64      `json:"monthly_price"`
	IsDeleted    bool         `json:"-"`
	CreatedOn    time.Time    `json:"created_on"`
	UpdatedOn    time.Time    `json:"updated_on"`
}

func NewRentalRequest(equipmentID, clientID int32, monthlyPrice float64, notes *string) *RentalRequest {
	now := time.Now().UTC()
	return &RentalRequest{
		EquipmentID:  equipmentID,
		ClientID:     clientID,
		MonthlyPrice: monthlyPrice,
		Notes:        notes,
		Status:       RentalStatusPending,
		RequestDate:  now,
		CreatedOn:    now,
	}
}

// UpdateStatus applies the generic status-change path. The raw value is
// validated case-insensitively and the change must be in the transition
// table; monthly price and provider assignment are never touched here.
func (r *RentalRequest) UpdateStatus(newStatus string) error {
	status, err := ParseRentalStatus(newStatus)
	if err != nil {
		return err
	}
	if status == r.Status {
		return nil
	}
	if !CanTransition(r.Status, status) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, status)
	}
	r.Status = status
	r.UpdatedOn = time.Now().UTC()
	return nil
}

// Approve assigns the provider and moves the request to approved.
// Allowed only while the request is still pending.
func (r *RentalRequest) Approve(providerID int32) error {
	if r.Status != RentalStatusPending {
		return ErrNotPending
	}
	r.ProviderID = &providerID
	r.Status = RentalStatusApproved
	r.UpdatedOn = time.Now().UTC()
	return nil
}

// Cancel marks the request cancelled and soft-deletes it. It carries no
// precondition so a repeated cancel is harmless.
func (r *RentalRequest) Cancel() {
	r.Status = RentalStatusCancelled
	r.IsDeleted = true
	r.UpdatedOn = time.Now().UTC()
}

// RentalRequestView is the read-side projection with the denormalized
// equipment and user fields the API returns.
type RentalRequestView struct {
	RentalRequest
	EquipmentName  *string `json:"equipment_name,omitempty"`
	EquipmentType  *string `json:"equipment_type,omitempty"`
	EquipmentImage *string `json:"equipment_image,omitempty"`
	ClientEmail    *string `json:"client_email,omitempty"`
	ProviderEmail  *string `json:"provider_email,omitempty"`
	ProviderName   *string `json:"provider_name,omitempty"`
}

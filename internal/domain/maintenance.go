package domain

import (
	"errors"
	"strings"
	"time"
)

const (
	MaintenanceStatusPending    = "pending"
	MaintenanceStatusScheduled  = "scheduled"
	MaintenanceStatusInProgress = "in_progress"
	MaintenanceStatusCompleted  = "completed"
	MaintenanceStatusCancelled  = "cancelled"
)

var ErrInvalidMaintenanceStatus = errors.New("invalid maintenance request status")

type MaintenanceRequest struct {
	ID           int32     `json:"id"`
	EquipmentID  int32     `json:"equipment_id"`
	ClientID     int32     `json:"client_id"`
	SelectedDate time.Time `json:"selected_date"`
	Observation  string    `json:"observation"`
	Status       string    `json:"status"`
	IsDeleted    bool      `json:"-"`
	CreatedOn    time.Time `json:"created_on"`
	UpdatedOn    time.Time `json:"updated_on"`
}

func NewMaintenanceRequest(equipmentID, clientID int32, selectedDate time.Time, observation string) *MaintenanceRequest {
	return &MaintenanceRequest{
		EquipmentID:  equipmentID,
		ClientID:     clientID,
		SelectedDate: selectedDate,
		Observation:  observation,
		Status:       MaintenanceStatusPending,
		CreatedOn:    time.Now().UTC(),
	}
}

func (m *MaintenanceRequest) UpdateStatus(newStatus string) error {
	status := strings.ToLower(strings.TrimSpace(newStatus))
	switch status {
	case MaintenanceStatusPending, MaintenanceStatusScheduled, MaintenanceStatusInProgress,
		MaintenanceStatusCompleted, MaintenanceStatusCancelled:
		m.Status = status
		m.UpdatedOn = time.Now().UTC()
		return nil
	}
	return ErrInvalidMaintenanceStatus
}

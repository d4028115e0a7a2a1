package domain

import (
	"errors"
	"strings"
	"time"
)

const (
	EquipmentStatusActive      = "active"
	EquipmentStatusInactive    = "inactive"
	EquipmentStatusMaintenance = "maintenance"
)

var ErrInvalidEquipmentStatus = errors.New("invalid equipment status")

type Equipment struct {
	ID               int32     `json:"id"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	Model            string    `json:"model"`
	Manufacturer     string    `json:"manufacturer"`
	SerialNumber     string    `json:"serial_number"`
	Code             string    `json:"code"`
	InstallationDate time.Time `json:"installation_date"`
	PowerWatts       int32     `json:"power_watts"`
	Status           string    `json:"status"`
	Notes            *string   `json:"notes,omitempty"`
	Image            *string   `json:"image,omitempty"`
	Room             string    `json:"room"`
	Floor            int32     `json:"floor"`
	IsDeleted        bool      `json:"-"`
	CreatedOn        time.Time `json:"created_on"`
	UpdatedOn        time.Time `json:"updated_on"`
}

func NewEquipment(name, eqType, model, manufacturer, serialNumber, code string, installationDate time.Time, powerWatts int32, room string, floor int32) *Equipment {
	return &Equipment{
		Name:             name,
		Type:             eqType,
		Model:            model,
		Manufacturer:     manufacturer,
		SerialNumber:     serialNumber,
		Code:             code,
		InstallationDate: installationDate,
		PowerWatts:       powerWatts,
		Status:           EquipmentStatusActive,
		Room:             room,
		Floor:            floor,
		CreatedOn:        time.Now().UTC(),
	}
}

func (e *Equipment) UpdateStatus(newStatus string) error {
	if strings.TrimSpace(newStatus) == "" {
		return ErrInvalidEquipmentStatus
	}
	e.Status = newStatus
	e.UpdatedOn = time.Now().UTC()
	return nil
}

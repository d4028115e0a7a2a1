package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyPlanName        = errors.New("plan name cannot be empty")
	ErrNegativePlanPrice    = errors.New("monthly price cannot be negative")
	ErrNegativeEquipmentMax = errors.New("max equipment access cannot be negative")
)

// ClientPlan is a subscription tier. MaxEquipmentAccess bounds how many
// approved rentals a client on the plan may hold at once.
type ClientPlan struct {
	ID                    int32     `json:"id"`
	Name                  string    `json:"name"`
	Description           string    `json:"description"`
	MonthlyPrice          float64   `json:"monthly_price"`
	MaxEquipmentAccess    int32     `json:"max_equipment_access"`
	HasMaintenanceSupport bool      `json:"has_maintenance_support"`
	HasPrioritySupport    bool      `json:"has_priority_support"`
	CreatedOn             time.Time `json:"created_on"`
	UpdatedOn             time.Time `json:"updated_on"`
}

func NewClientPlan(name, description string, monthlyPrice float64, maxEquipmentAccess int32, maintenanceSupport, prioritySupport bool) (*ClientPlan, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyPlanName
	}
	if monthlyPrice < 0 {
		return nil, ErrNegativePlanPrice
	}
	if maxEquipmentAccess < 0 {
		return nil, ErrNegativeEquipmentMax
	}
	return &ClientPlan{
		Name:                  name,
		Description:           strings.TrimSpace(description),
		MonthlyPrice:          monthlyPrice,
		MaxEquipmentAccess:    maxEquipmentAccess,
		HasMaintenanceSupport: maintenanceSupport,
		HasPrioritySupport:    prioritySupport,
		CreatedOn:             time.Now().UTC(),
	}, nil
}

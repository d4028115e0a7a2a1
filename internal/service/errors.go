package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound                = errors.New("not found")
	ErrClientNotFound          = errors.New("client not found")
	ErrPlanNotFound            = errors.New("client plan not found")
	ErrDuplicatePendingRequest = errors.New("a pending rental request already exists for this equipment")
	ErrDuplicateRentalItem     = errors.New("a rental item with this name and model already exists")
	ErrPlanLimitExceeded       = errors.New("client has reached their plan limit")
	ErrEmailTaken              = errors.New("email is already registered")
	ErrUsernameTaken           = errors.New("username is already taken")
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrPermissionDenied        = errors.New("permission denied")
)

// PlanLimitError carries the numbers behind a quota rejection so the API
// can show the client exactly where they stand. errors.Is against
// ErrPlanLimitExceeded still works through Unwrap.
type PlanLimitError struct {
	Count int32
	Limit int32
}

func (e *PlanLimitError) Error() string {
	return fmt.Sprintf("client has reached their plan limit of %d machines (%d/%d); they must upgrade their plan before accepting this request",
		e.Limit, e.Count, e.Limit)
}

func (e *PlanLimitError) Unwrap() error {
	return ErrPlanLimitExceeded
}

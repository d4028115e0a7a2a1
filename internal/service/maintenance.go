package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"coolgym-backend/internal/domain"
	"coolgym-backend/internal/repository"
)

type maintenanceService struct {
	store    repository.Store
	invoices InvoiceIssuer
}

func NewMaintenanceService(store repository.Store, invoices InvoiceIssuer) MaintenanceService {
	return &maintenanceService{store: store, invoices: invoices}
}

func (s *maintenanceService) CreateMaintenanceRequest(ctx context.Context, in CreateMaintenanceRequestInput) (*domain.MaintenanceRequest, error) {
	if _, err := s.store.Equipment().GetByID(ctx, in.EquipmentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: equipment %d", ErrNotFound, in.EquipmentID)
		}
		return nil, err
	}

	exists, err := s.store.MaintenanceRequests().HasPendingForEquipment(ctx, in.EquipmentID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicatePendingRequest
	}

	req := domain.NewMaintenanceRequest(in.EquipmentID, in.ClientID, in.SelectedDate, in.Observation)
	if err := s.store.MaintenanceRequests().Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *maintenanceService) GetMaintenanceRequest(ctx context.Context, id int32) (*domain.MaintenanceRequest, error) {
	req, err := s.store.MaintenanceRequests().GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return req, err
}

func (s *maintenanceService) ListMaintenanceRequests(ctx context.Context) ([]domain.MaintenanceRequest, error) {
	return s.store.MaintenanceRequests().ListAll(ctx)
}

func (s *maintenanceService) ListMaintenanceRequestsByClient(ctx context.Context, clientID int32) ([]domain.MaintenanceRequest, error) {
	return s.store.MaintenanceRequests().ListByClient(ctx, clientID)
}

// UpdateMaintenanceRequestStatus moves a maintenance request to a new
// status. When a provider completes the work and an amount is given,
// the service bill for the visit is written in the same transaction.
func (s *maintenanceService) UpdateMaintenanceRequestStatus(ctx context.Context, id int32, status string, providerID *int32, amount *float64) (*domain.MaintenanceRequest, error) {
	var updated *domain.MaintenanceRequest
	txErr := s.store.ExecTx(ctx, func(tx repository.Store) error {
		req, err := tx.MaintenanceRequests().GetByID(ctx, id)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		if err := req.UpdateStatus(status); err != nil {
			return err
		}
		if err := tx.MaintenanceRequests().Update(ctx, req); err != nil {
			return err
		}

		if req.Status == domain.MaintenanceStatusCompleted && providerID != nil && amount != nil {
			if err := s.billCompletedVisit(ctx, tx, req, *providerID, *amount); err != nil {
				return err
			}
		}

		updated = req
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return updated, nil
}

func (s *maintenanceService) billCompletedVisit(ctx context.Context, tx repository.Store, req *domain.MaintenanceRequest, providerID int32, amount float64) error {
	client, err := tx.Users().GetByID(ctx, req.ClientID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: id %d", ErrClientNotFound, req.ClientID)
	}
	if err != nil {
		return err
	}

	_, err = s.invoices.Issue(ctx, tx, IssueInvoiceInput{
		UserID:               req.ClientID,
		CompanyName:          client.DisplayName(),
		Amount:               amount,
		Currency:             invoiceCurrency,
		Status:               string(domain.InvoiceStatusPending),
		IssuedAt:             time.Now().UTC(),
		ProviderID:           &providerID,
		MaintenanceRequestID: &req.ID,
	})
	return err
}

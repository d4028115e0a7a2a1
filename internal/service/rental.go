package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"coolgym-backend/internal/domain"
	"coolgym-backend/internal/logger"
	"coolgym-backend/internal/repository"
)

const invoiceCurrency = "USD"

// MissingPlanPolicy decides what happens when a client's plan id does
// not resolve to an existing plan during approval.
type MissingPlanPolicy string

const (
	MissingPlanUnrestricted MissingPlanPolicy = "unrestricted"
	MissingPlanDeny         MissingPlanPolicy = "deny"
)

type rentalService struct {
	store         repository.Store
	invoices      InvoiceIssuer
	email         EmailService
	onMissingPlan MissingPlanPolicy
}

func NewRentalService(store repository.Store, invoices InvoiceIssuer, email EmailService, onMissingPlan MissingPlanPolicy) RentalService {
	if onMissingPlan == "" {
		onMissingPlan = MissingPlanUnrestricted
	}
	return &rentalService{
		store:         store,
		invoices:      invoices,
		email:         email,
		onMissingPlan: onMissingPlan,
	}
}

func (s *rentalService) CreateRentalRequest(ctx context.Context, in CreateRentalRequestInput) (*domain.RentalRequestView, error) {
	exists, err := s.store.RentalRequests().HasPendingForEquipment(ctx, in.ClientID, in.EquipmentID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicatePendingRequest
	}

	req := domain.NewRentalRequest(in.EquipmentID, in.ClientID, in.MonthlyPrice, in.Notes)
	if err := s.store.RentalRequests().Create(ctx, req); err != nil {
		return nil, err
	}

	// Reload so the response carries the joined equipment/client fields.
	view, err := s.store.RentalRequests().GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return view, nil
}

// ApproveRentalRequest runs the whole approval as one transaction: the
// client row is locked, the plan quota is evaluated against the locked
// snapshot, the request flips pending -> approved with an optimistic
// status guard, and the pending invoice lands in the same commit. A
// failure at any step leaves the store untouched.
func (s *rentalService) ApproveRentalRequest(ctx context.Context, requestID, providerID int32) (*domain.RentalRequestView, error) {
	txErr := s.store.ExecTx(ctx, func(tx repository.Store) error {
		view, err := tx.RentalRequests().GetByID(ctx, requestID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		// Locks the client row; concurrent approvals for the same client
		// serialize here so the quota count never goes stale mid-commit.
		client, err := tx.Users().GetByIDForUpdate(ctx, view.ClientID)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: id %d", ErrClientNotFound, view.ClientID)
		}
		if err != nil {
			return err
		}

		if err := s.checkPlanQuota(ctx, tx, client); err != nil {
			return err
		}

		req := view.RentalRequest
		if err := req.Approve(providerID); err != nil {
			return err
		}
		if err := tx.RentalRequests().UpdateWhereStatus(ctx, &req, domain.RentalStatusPending); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrNotPending
			}
			return err
		}

		_, err = s.invoices.Issue(ctx, tx, IssueInvoiceInput{
			UserID:          view.ClientID,
			CompanyName:     client.DisplayName(),
			Amount:          view.MonthlyPrice,
			Currency:        invoiceCurrency,
			Status:          string(domain.InvoiceStatusPending),
			IssuedAt:        time.Now().UTC(),
			ProviderID:      &providerID,
			RentalRequestID: &view.ID,
		})
		return err
	})
	if txErr != nil {
		return nil, txErr
	}

	view, err := s.store.RentalRequests().GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	s.notifyApproved(ctx, view)
	return view, nil
}

func (s *rentalService) checkPlanQuota(ctx context.Context, tx repository.Store, client *domain.User) error {
	if client.ClientPlanID == nil {
		return nil
	}

	plan, err := tx.Plans().GetByID(ctx, *client.ClientPlanID)
	if errors.Is(err, sql.ErrNoRows) {
		if s.onMissingPlan == MissingPlanDeny {
			return fmt.Errorf("%w: id %d", ErrPlanNotFound, *client.ClientPlanID)
		}
		logger.Warn("client plan does not resolve, approving unrestricted",
			"client_id", client.ID, "client_plan_id", *client.ClientPlanID)
		return nil
	}
	if err != nil {
		return err
	}

	count, err := tx.RentalRequests().CountApprovedByClient(ctx, client.ID)
	if err != nil {
		return err
	}
	if count >= plan.MaxEquipmentAccess {
		return &PlanLimitError{Count: count, Limit: plan.MaxEquipmentAccess}
	}
	return nil
}

// UpdateRentalRequestStatus is the generic status-change path. The
// entity validates both the status value and the transition table; the
// write re-checks the previous status so concurrent changes lose cleanly.
func (s *rentalService) UpdateRentalRequestStatus(ctx context.Context, requestID int32, status string) (*domain.RentalRequestView, error) {
	txErr := s.store.ExecTx(ctx, func(tx repository.Store) error {
		view, err := tx.RentalRequests().GetByID(ctx, requestID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		req := view.RentalRequest
		previous := req.Status
		if err := req.UpdateStatus(status); err != nil {
			return err
		}
		if req.Status == previous {
			return nil
		}
		if err := tx.RentalRequests().UpdateWhereStatus(ctx, &req, previous); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("%w: request changed concurrently", domain.ErrInvalidTransition)
			}
			return err
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	view, err := s.store.RentalRequests().GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if view.Status == domain.RentalStatusRejected {
		s.notifyRejected(ctx, view)
	}
	return view, nil
}

func (s *rentalService) CancelRentalRequest(ctx context.Context, requestID int32) error {
	view, err := s.store.RentalRequests().GetByID(ctx, requestID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	req := view.RentalRequest
	req.Cancel()
	return s.store.RentalRequests().Update(ctx, &req)
}

func (s *rentalService) GetRentalRequest(ctx context.Context, requestID int32) (*domain.RentalRequestView, error) {
	view, err := s.store.RentalRequests().GetByID(ctx, requestID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return view, err
}

func (s *rentalService) ListRentalRequestsByClient(ctx context.Context, clientID int32) ([]domain.RentalRequestView, error) {
	return s.store.RentalRequests().ListByClient(ctx, clientID)
}

func (s *rentalService) ListRentalRequestsByStatus(ctx context.Context, status string) ([]domain.RentalRequestView, error) {
	parsed, err := domain.ParseRentalStatus(status)
	if err != nil {
		return nil, err
	}
	return s.store.RentalRequests().ListByStatus(ctx, parsed)
}

func (s *rentalService) ListAllRentalRequests(ctx context.Context) ([]domain.RentalRequestView, error) {
	return s.store.RentalRequests().ListAll(ctx)
}

func (s *rentalService) notifyApproved(ctx context.Context, view *domain.RentalRequestView) {
	if s.email == nil || view == nil || view.ClientEmail == nil || *view.ClientEmail == "" {
		return
	}
	equipmentName := fmt.Sprintf("equipment #%d", view.EquipmentID)
	if view.EquipmentName != nil {
		equipmentName = *view.EquipmentName
	}
	if err := s.email.SendRentalApproved(ctx, *view.ClientEmail, equipmentName, view.MonthlyPrice); err != nil {
		logger.Error("failed to send rental approval email", "rental_request_id", view.ID, "error", err)
	}
}

func (s *rentalService) notifyRejected(ctx context.Context, view *domain.RentalRequestView) {
	if s.email == nil || view == nil || view.ClientEmail == nil || *view.ClientEmail == "" {
		return
	}
	equipmentName := fmt.Sprintf("equipment #%d", view.EquipmentID)
	if view.EquipmentName != nil {
		equipmentName = *view.EquipmentName
	}
	if err := s.email.SendRentalRejected(ctx, *view.ClientEmail, equipmentName); err != nil {
		logger.Error("failed to send rental rejection email", "rental_request_id", view.ID, "error", err)
	}
}

package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"coolgym-backend/internal/domain"
	"coolgym-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMaintenanceService_CreateMaintenanceRequest(t *testing.T) {
	ctx := context.Background()
	selectedDate := time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		store := newMockStore()
		svc := service.NewMaintenanceService(store, service.NewInvoiceService(store))

		store.equipment.On("GetByID", ctx, int32(2)).Return(&domain.Equipment{ID: 2}, nil)
		store.maintenance.On("HasPendingForEquipment", ctx, int32(2)).Return(false, nil)
		store.maintenance.On("Create", ctx, mock.AnythingOfType("*domain.MaintenanceRequest")).Return(nil)

		req, err := svc.CreateMaintenanceRequest(ctx, service.CreateMaintenanceRequestInput{
			EquipmentID:  2,
			ClientID:     1,
			SelectedDate: selectedDate,
			Observation:  "belt slipping",
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.MaintenanceStatusPending, req.Status)
	})

	t.Run("Unknown equipment", func(t *testing.T) {
		store := newMockStore()
		svc := service.NewMaintenanceService(store, service.NewInvoiceService(store))

		store.equipment.On("GetByID", ctx, int32(99)).Return(nil, sql.ErrNoRows)

		_, err := svc.CreateMaintenanceRequest(ctx, service.CreateMaintenanceRequestInput{
			EquipmentID: 99, ClientID: 1, SelectedDate: selectedDate,
		})
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("Duplicate pending request for equipment", func(t *testing.T) {
		store := newMockStore()
		svc := service.NewMaintenanceService(store, service.NewInvoiceService(store))

		store.equipment.On("GetByID", ctx, int32(2)).Return(&domain.Equipment{ID: 2}, nil)
		store.maintenance.On("HasPendingForEquipment", ctx, int32(2)).Return(true, nil)

		_, err := svc.CreateMaintenanceRequest(ctx, service.CreateMaintenanceRequestInput{
			EquipmentID: 2, ClientID: 1, SelectedDate: selectedDate,
		})
		assert.ErrorIs(t, err, service.ErrDuplicatePendingRequest)
		store.maintenance.AssertNotCalled(t, "Create", ctx, mock.Anything)
	})
}

func TestMaintenanceService_UpdateMaintenanceRequestStatus(t *testing.T) {
	ctx := context.Background()

	pendingRequest := func() *domain.MaintenanceRequest {
		req := domain.NewMaintenanceRequest(2, 1, time.Now().UTC(), "belt slipping")
		req.ID = 5
		return req
	}

	t.Run("Completion with amount bills the client", func(t *testing.T) {
		store := newMockStore()
		svc := service.NewMaintenanceService(store, service.NewInvoiceService(store))

		store.maintenance.On("GetByID", ctx, int32(5)).Return(pendingRequest(), nil)
		store.maintenance.On("Update", ctx, mock.MatchedBy(func(req *domain.MaintenanceRequest) bool {
			return req.Status == domain.MaintenanceStatusCompleted
		})).Return(nil)
		store.users.On("GetByID", ctx, int32(1)).Return(&domain.User{ID: 1, Email: "client@gym.com"}, nil)
		store.invoices.On("Create", ctx, mock.MatchedBy(func(inv *domain.BillingInvoice) bool {
			return inv.UserID == 1 &&
				inv.Amount == 120.0 &&
				inv.MaintenanceRequestID != nil && *inv.MaintenanceRequestID == 5 &&
				inv.ProviderID != nil && *inv.ProviderID == 7
		})).Return(nil)

		amount := 120.0
		updated, err := svc.UpdateMaintenanceRequestStatus(ctx, 5, "completed", i32Ptr(7), &amount)
		assert.NoError(t, err)
		assert.Equal(t, domain.MaintenanceStatusCompleted, updated.Status)
		store.invoices.AssertNumberOfCalls(t, "Create", 1)
	})

	t.Run("Status change without amount issues no invoice", func(t *testing.T) {
		store := newMockStore()
		svc := service.NewMaintenanceService(store, service.NewInvoiceService(store))

		store.maintenance.On("GetByID", ctx, int32(5)).Return(pendingRequest(), nil)
		store.maintenance.On("Update", ctx, mock.Anything).Return(nil)

		updated, err := svc.UpdateMaintenanceRequestStatus(ctx, 5, "scheduled", i32Ptr(7), nil)
		assert.NoError(t, err)
		assert.Equal(t, domain.MaintenanceStatusScheduled, updated.Status)
		store.invoices.AssertNotCalled(t, "Create", ctx, mock.Anything)
	})

	t.Run("Invalid status", func(t *testing.T) {
		store := newMockStore()
		svc := service.NewMaintenanceService(store, service.NewInvoiceService(store))

		store.maintenance.On("GetByID", ctx, int32(5)).Return(pendingRequest(), nil)

		_, err := svc.UpdateMaintenanceRequestStatus(ctx, 5, "broken", nil, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidMaintenanceStatus)
		store.maintenance.AssertNotCalled(t, "Update", ctx, mock.Anything)
	})

	t.Run("Not found", func(t *testing.T) {
		store := newMockStore()
		svc := service.NewMaintenanceService(store, service.NewInvoiceService(store))

		store.maintenance.On("GetByID", ctx, int32(404)).Return(nil, sql.ErrNoRows)

		_, err := svc.UpdateMaintenanceRequestStatus(ctx, 404, "scheduled", nil, nil)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

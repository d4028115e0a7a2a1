package service_test

import (
	"context"
	"database/sql"
	"testing"

	"coolgym-backend/internal/domain"
	"coolgym-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func catalogItem(id int32) *domain.RentalItem {
	item, _ := domain.NewRentalItem("Rowing Machine", "cardio", "RW-200", 29.99, "USD", "", true)
	item.ID = id
	return item
}

func TestRentalItemService_CreateRentalItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		store := newMockStore()
		svc := service.NewRentalItemService(store)

		store.items.On("ExistsByNameAndModel", ctx, "Rowing Machine", "RW-200").Return(false, nil)
		store.items.On("Create", ctx, mock.AnythingOfType("*domain.RentalItem")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.RentalItem).ID = 3
			}).Return(nil)

		item, err := svc.CreateRentalItem(ctx, service.CreateRentalItemInput{
			Name:         "Rowing Machine",
			Type:         "cardio",
			Model:        "RW-200",
			MonthlyPrice: 29.99,
			IsAvailable:  true,
		})
		assert.NoError(t, err)
		assert.Equal(t, int32(3), item.ID)
		assert.Equal(t, "USD", item.Currency)
	})

	t.Run("Duplicate name and model", func(t *testing.T) {
		store := newMockStore()
		svc := service.NewRentalItemService(store)

		store.items.On("ExistsByNameAndModel", ctx, "Rowing Machine", "RW-200").Return(true, nil)

		_, err := svc.CreateRentalItem(ctx, service.CreateRentalItemInput{
			Name:         "Rowing Machine",
			Type:         "cardio",
			Model:        "RW-200",
			MonthlyPrice: 29.99,
		})
		assert.ErrorIs(t, err, service.ErrDuplicateRentalItem)
		store.items.AssertNotCalled(t, "Create", ctx, mock.Anything)
	})

	t.Run("Invalid input never hits the store", func(t *testing.T) {
		store := newMockStore()
		svc := service.NewRentalItemService(store)

		_, err := svc.CreateRentalItem(ctx, service.CreateRentalItemInput{
			Name:         "",
			Type:         "cardio",
			Model:        "RW-200",
			MonthlyPrice: 29.99,
		})
		assert.ErrorIs(t, err, domain.ErrEmptyItemName)
		store.items.AssertNotCalled(t, "ExistsByNameAndModel", ctx, mock.Anything, mock.Anything)
	})
}

func TestRentalItemService_GetRentalItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Not found", func(t *testing.T) {
		store := newMockStore()
		svc := service.NewRentalItemService(store)

		store.items.On("GetByID", ctx, int32(404)).Return(nil, sql.ErrNoRows)

		_, err := svc.GetRentalItem(ctx, 404)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestRentalItemService_UpdateRentalItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Applies all fields", func(t *testing.T) {
		store := newMockStore()
		svc := service.NewRentalItemService(store)

		store.items.On("GetByID", ctx, int32(3)).Return(catalogItem(3), nil)
		store.items.On("Update", ctx, mock.MatchedBy(func(item *domain.RentalItem) bool {
			return item.Name == "Rowing Machine Pro" && item.MonthlyPrice == 39.99 && !item.IsAvailable
		})).Return(nil)

		item, err := svc.UpdateRentalItem(ctx, 3, service.UpdateRentalItemInput{
			Name:         "Rowing Machine Pro",
			Type:         "cardio",
			Model:        "RW-200",
			MonthlyPrice: 39.99,
			Currency:     "USD",
			IsAvailable:  false,
		})
		assert.NoError(t, err)
		assert.Equal(t, "Rowing Machine Pro", item.Name)
	})

	t.Run("Not found", func(t *testing.T) {
		store := newMockStore()
		svc := service.NewRentalItemService(store)

		store.items.On("GetByID", ctx, int32(404)).Return(nil, sql.ErrNoRows)

		_, err := svc.UpdateRentalItem(ctx, 404, service.UpdateRentalItemInput{
			Name: "x", Type: "y", Model: "z", MonthlyPrice: 1,
		})
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestRentalItemService_SetRentalItemAvailability(t *testing.T) {
	ctx := context.Background()

	store := newMockStore()
	svc := service.NewRentalItemService(store)

	store.items.On("GetByID", ctx, int32(3)).Return(catalogItem(3), nil)
	store.items.On("Update", ctx, mock.MatchedBy(func(item *domain.RentalItem) bool {
		return !item.IsAvailable
	})).Return(nil)

	item, err := svc.SetRentalItemAvailability(ctx, 3, false)
	assert.NoError(t, err)
	assert.False(t, item.IsAvailable)
}

func TestRentalItemService_DeleteRentalItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Soft delete", func(t *testing.T) {
		store := newMockStore()
		svc := service.NewRentalItemService(store)

		store.items.On("SoftDelete", ctx, int32(3)).Return(nil)

		assert.NoError(t, svc.DeleteRentalItem(ctx, 3))
	})

	t.Run("Not found", func(t *testing.T) {
		store := newMockStore()
		svc := service.NewRentalItemService(store)

		store.items.On("SoftDelete", ctx, int32(404)).Return(sql.ErrNoRows)

		assert.ErrorIs(t, svc.DeleteRentalItem(ctx, 404), service.ErrNotFound)
	})
}

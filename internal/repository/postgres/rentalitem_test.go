package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"coolgym-backend/internal/domain"
	"coolgym-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var rentalItemColumns = []string{
	"id", "name", "type", "model", "monthly_price", "currency",
	"image_url", "is_available", "is_deleted", "created_on", "updated_on",
}

func TestRentalItemRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalItemRepository(db)
	ctx := context.Background()

	item, err := domain.NewRentalItem("Rowing Machine", "cardio", "RW-200", 29.99, "USD", "", true)
	assert.NoError(t, err)

	mock.ExpectQuery("INSERT INTO rental_items").
		WithArgs(item.Name, item.Type, item.Model, item.MonthlyPrice, item.Currency, item.ImageURL, item.IsAvailable, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	err = repo.Create(ctx, item)
	assert.NoError(t, err)
	assert.Equal(t, int32(3), item.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalItemRepository_ExistsByNameAndModel(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalItemRepository(db)
	ctx := context.Background()

	t.Run("Existing item", func(t *testing.T) {
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("Rowing Machine", "RW-200").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		exists, err := repo.ExistsByNameAndModel(ctx, "Rowing Machine", "RW-200")
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("No match", func(t *testing.T) {
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("Bike", "BK-1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		exists, err := repo.ExistsByNameAndModel(ctx, "Bike", "BK-1")
		assert.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestRentalItemRepository_ListAvailable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalItemRepository(db)
	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.NewRows(rentalItemColumns).
		AddRow(1, "Bike", "cardio", "BK-1", 15.0, "USD", "", true, false, now, now).
		AddRow(2, "Rowing Machine", "cardio", "RW-200", 29.99, "USD", "", true, false, now, now)

	mock.ExpectQuery(`SELECT (.+) FROM rental_items WHERE is_available = TRUE`).
		WillReturnRows(rows)

	items, err := repo.ListAvailable(ctx)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "Bike", items[0].Name)
}

func TestRentalItemRepository_SoftDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalItemRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE rental_items SET is_deleted=TRUE").
			WithArgs(sqlmock.AnyArg(), int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.SoftDelete(ctx, 3))
	})

	t.Run("Already deleted", func(t *testing.T) {
		mock.ExpectExec("UPDATE rental_items SET is_deleted=TRUE").
			WithArgs(sqlmock.AnyArg(), int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.SoftDelete(ctx, 3), sql.ErrNoRows)
	})
}

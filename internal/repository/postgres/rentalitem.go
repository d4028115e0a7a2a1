package postgres

import (
	"context"
	"database/sql"
	"time"

	"coolgym-backend/internal/domain"
	"coolgym-backend/internal/repository"
)

type rentalItemRepository struct {
	db DBTX
}

func NewRentalItemRepository(db DBTX) repository.RentalItemRepository {
	return &rentalItemRepository{db: db}
}

const rentalItemColumns = `id, name, type, model, monthly_price, currency, image_url, is_available, is_deleted, created_on, updated_on`

func (r *rentalItemRepository) Create(ctx context.Context, item *domain.RentalItem) error {
	query := `INSERT INTO rental_items (name, type, model, monthly_price, currency, image_url, is_available, is_deleted, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE, $8, $8) RETURNING id`
	now := time.Now().UTC()
	item.CreatedOn = now
	item.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query,
		item.Name, item.Type, item.Model, item.MonthlyPrice, item.Currency, item.ImageURL, item.IsAvailable, now,
	).Scan(&item.ID)
}

func (r *rentalItemRepository) GetByID(ctx context.Context, id int32) (*domain.RentalItem, error) {
	query := `SELECT ` + rentalItemColumns + ` FROM rental_items WHERE id = $1 AND is_deleted = FALSE`
	return scanRentalItem(r.db.QueryRowContext(ctx, query, id))
}

func (r *rentalItemRepository) List(ctx context.Context) ([]domain.RentalItem, error) {
	query := `SELECT ` + rentalItemColumns + ` FROM rental_items WHERE is_deleted = FALSE ORDER BY name ASC`
	return r.query(ctx, query)
}

func (r *rentalItemRepository) ListByType(ctx context.Context, itemType string) ([]domain.RentalItem, error) {
	query := `SELECT ` + rentalItemColumns + ` FROM rental_items WHERE type = $1 AND is_deleted = FALSE ORDER BY name ASC`
	return r.query(ctx, query, itemType)
}

func (r *rentalItemRepository) ListAvailable(ctx context.Context) ([]domain.RentalItem, error) {
	query := `SELECT ` + rentalItemColumns + ` FROM rental_items WHERE is_available = TRUE AND is_deleted = FALSE ORDER BY name ASC`
	return r.query(ctx, query)
}

func (r *rentalItemRepository) ExistsByNameAndModel(ctx context.Context, name, model string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM rental_items WHERE name = $1 AND model = $2 AND is_deleted = FALSE)`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, name, model).Scan(&exists)
	return exists, err
}

func (r *rentalItemRepository) Update(ctx context.Context, item *domain.RentalItem) error {
	query := `UPDATE rental_items SET name=$1, type=$2, model=$3, monthly_price=$4, currency=$5, image_url=$6, is_available=$7, updated_on=$8 WHERE id=$9 AND is_deleted = FALSE`
	item.UpdatedOn = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, query,
		item.Name, item.Type, item.Model, item.MonthlyPrice, item.Currency, item.ImageURL, item.IsAvailable,
		item.UpdatedOn, item.ID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *rentalItemRepository) SoftDelete(ctx context.Context, id int32) error {
	query := `UPDATE rental_items SET is_deleted=TRUE, updated_on=$1 WHERE id=$2 AND is_deleted = FALSE`
	res, err := r.db.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *rentalItemRepository) query(ctx context.Context, query string, args ...any) ([]domain.RentalItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.RentalItem
	for rows.Next() {
		var item domain.RentalItem
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Type, &item.Model, &item.MonthlyPrice, &item.Currency,
			&item.ImageURL, &item.IsAvailable, &item.IsDeleted, &item.CreatedOn, &item.UpdatedOn,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanRentalItem(row *sql.Row) (*domain.RentalItem, error) {
	var item domain.RentalItem
	err := row.Scan(
		&item.ID, &item.Name, &item.Type, &item.Model, &item.MonthlyPrice, &item.Currency,
		&item.ImageURL, &item.IsAvailable, &item.IsDeleted, &item.CreatedOn, &item.UpdatedOn,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

package postgres

import (
	"context"
	"database/sql"
	"time"

	"coolgym-backend/internal/domain"
	"coolgym-backend/internal/repository"
)

type rentalRequestRepository struct {
	db DBTX
}

func NewRentalRequestRepository(db DBTX) repository.RentalRequestRepository {
	return &rentalRequestRepository{db: db}
}

const rentalViewSelect = `SELECT rr.id, rr.equipment_id, rr.client_id, rr.provider_id, rr.request_date, rr.status, rr.notes, rr.monthly_price, rr.is_deleted, rr.created_on, rr.updated_on,
       e.name, e.type, e.image, c.email, p.email, p.name
FROM rental_requests rr
LEFT JOIN equipment e ON e.id = rr.equipment_id
LEFT JOIN users c ON c.id = rr.client_id
LEFT JOIN users p ON p.id = rr.provider_id`

func (r *rentalRequestRepository) Create(ctx context.Context, req *domain.RentalRequest) error {
	query := `INSERT INTO rental_requests (equipment_id, client_id, request_date, status, notes, monthly_price, is_deleted, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7, $7) RETURNING id`
	now := time.Now().UTC()
	req.CreatedOn = now
	req.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query,
		req.EquipmentID, req.ClientID, req.RequestDate, req.Status, req.Notes, req.MonthlyPrice, now,
	).Scan(&req.ID)
}

func (r *rentalRequestRepository) GetByID(ctx context.Context, id int32) (*domain.RentalRequestView, error) {
	query := rentalViewSelect + ` WHERE rr.id = $1 AND rr.is_deleted = FALSE`
	return scanRentalView(r.db.QueryRowContext(ctx, query, id))
}

func (r *rentalRequestRepository) Update(ctx context.Context, req *domain.RentalRequest) error {
	query := `UPDATE rental_requests SET provider_id=$1, status=$2, notes=$3, is_deleted=$4, updated_on=$5 WHERE id=$6`
	req.UpdatedOn = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query,
		req.ProviderID, req.Status, req.Notes, req.IsDeleted, req.UpdatedOn, req.ID)
	return err
}

// UpdateWhereStatus is the optimistic variant of Update: the row must
// still hold the expected status, so a concurrent approval or
// cancellation makes this call lose with sql.ErrNoRows.
func (r *rentalRequestRepository) UpdateWhereStatus(ctx context.Context, req *domain.RentalRequest, expected domain.RentalStatus) error {
	query := `UPDATE rental_requests SET provider_id=$1, status=$2, notes=$3, is_deleted=$4, updated_on=$5
	          WHERE id=$6 AND status=$7 AND is_deleted=FALSE`
	req.UpdatedOn = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, query,
		req.ProviderID, req.Status, req.Notes, req.IsDeleted, req.UpdatedOn, req.ID, expected)
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

func (r *rentalRequestRepository) ListByClient(ctx context.Context, clientID int32) ([]domain.RentalRequestView, error) {
	query := rentalViewSelect + ` WHERE rr.client_id = $1 AND rr.is_deleted = FALSE ORDER BY rr.request_date DESC`
	return r.queryViews(ctx, query, clientID)
}

func (r *rentalRequestRepository) ListByStatus(ctx context.Context, status domain.RentalStatus) ([]domain.RentalRequestView, error) {
	query := rentalViewSelect + ` WHERE rr.status = $1 AND rr.is_deleted = FALSE ORDER BY rr.request_date DESC`
	return r.queryViews(ctx, query, status)
}

func (r *rentalRequestRepository) ListAll(ctx context.Context) ([]domain.RentalRequestView, error) {
	query := rentalViewSelect + ` WHERE rr.is_deleted = FALSE ORDER BY rr.request_date DESC`
	return r.queryViews(ctx, query)
}

func (r *rentalRequestRepository) CountApprovedByClient(ctx context.Context, clientID int32) (int32, error) {
	query := `SELECT count(*) FROM rental_requests WHERE client_id = $1 AND status = $2 AND is_deleted = FALSE`
	var count int32
	err := r.db.QueryRowContext(ctx, query, clientID, domain.RentalStatusApproved).Scan(&count)
	return count, err
}

func (r *rentalRequestRepository) HasPendingForEquipment(ctx context.Context, clientID, equipmentID int32) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM rental_requests WHERE client_id = $1 AND equipment_id = $2 AND status = $3 AND is_deleted = FALSE)`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, clientID, equipmentID, domain.RentalStatusPending).Scan(&exists)
	return exists, err
}

func (r *rentalRequestRepository) queryViews(ctx context.Context, query string, args ...any) ([]domain.RentalRequestView, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []domain.RentalRequestView
	for rows.Next() {
		var v domain.RentalRequestView
		if err := rows.Scan(
			&v.ID, &v.EquipmentID, &v.ClientID, &v.ProviderID, &v.RequestDate, &v.Status,
			&v.Notes, &v.MonthlyPrice, &v.IsDeleted, &v.CreatedOn, &v.UpdatedOn,
			&v.EquipmentName, &v.EquipmentType, &v.EquipmentImage,
			&v.ClientEmail, &v.ProviderEmail, &v.ProviderName,
		); err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

func scanRentalView(row *sql.Row) (*domain.RentalRequestView, error) {
	var v domain.RentalRequestView
	err := row.Scan(
		&v.ID, &v.EquipmentID, &v.ClientID, &v.ProviderID, &v.RequestDate, &v.Status,
		&v.Notes, &v.MonthlyPrice, &v.IsDeleted, &v.CreatedOn, &v.UpdatedOn,
		&v.EquipmentName, &v.EquipmentType, &v.EquipmentImage,
		&v.ClientEmail, &v.ProviderEmail, &v.ProviderName,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

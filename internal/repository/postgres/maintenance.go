package postgres

import (
	"context"
	"time"

	"coolgym-backend/internal/domain"
	"coolgym-backend/internal/repository"
)

type maintenanceRequestRepository struct {
	db DBTX
}

func NewMaintenanceRequestRepository(db DBTX) repository.MaintenanceRequestRepository {
	return &maintenanceRequestRepository{db: db}
}

const maintenanceColumns = `id, equipment_id, client_id, selected_date, observation, status, is_deleted, created_on, updated_on`

func (r *maintenanceRequestRepository) Create(ctx context.Context, req *domain.MaintenanceRequest) error {
	query := `INSERT INTO maintenance_requests (equipment_id, client_id, selected_date, observation, status, is_deleted, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, FALSE, $6, $6) RETURNING id`
	now := time.Now().UTC()
	req.CreatedOn = now
	req.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query,
		req.EquipmentID, req.ClientID, req.SelectedDate, req.Observation, req.Status, now,
	).Scan(&req.ID)
}

func (r *maintenanceRequestRepository) GetByID(ctx context.Context, id int32) (*domain.MaintenanceRequest, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_requests WHERE id = $1 AND is_deleted = FALSE`
	var m domain.MaintenanceRequest
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.EquipmentID, &m.ClientID, &m.SelectedDate, &m.Observation, &m.Status,
		&m.IsDeleted, &m.CreatedOn, &m.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *maintenanceRequestRepository) ListAll(ctx context.Context) ([]domain.MaintenanceRequest, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_requests WHERE is_deleted = FALSE ORDER BY selected_date DESC`
	return r.query(ctx, query)
}

func (r *maintenanceRequestRepository) ListByClient(ctx context.Context, clientID int32) ([]domain.MaintenanceRequest, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_requests WHERE client_id = $1 AND is_deleted = FALSE ORDER BY selected_date DESC`
	return r.query(ctx, query, clientID)
}

func (r *maintenanceRequestRepository) Update(ctx context.Context, req *domain.MaintenanceRequest) error {
	query := `UPDATE maintenance_requests SET selected_date=$1, observation=$2, status=$3, is_deleted=$4, updated_on=$5 WHERE id=$6`
	req.UpdatedOn = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query,
		req.SelectedDate, req.Observation, req.Status, req.IsDeleted, req.UpdatedOn, req.ID)
	return err
}

func (r *maintenanceRequestRepository) HasPendingForEquipment(ctx context.Context, equipmentID int32) (bool, error) {
	query := `SELECT EXISTS (
	            SELECT 1 FROM maintenance_requests
	            WHERE equipment_id = $1 AND status = $2 AND is_deleted = FALSE)`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, equipmentID, domain.MaintenanceStatusPending).Scan(&exists)
	return exists, err
}

func (r *maintenanceRequestRepository) query(ctx context.Context, query string, args ...any) ([]domain.MaintenanceRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.MaintenanceRequest
	for rows.Next() {
		var m domain.MaintenanceRequest
		if err := rows.Scan(
			&m.ID, &m.EquipmentID, &m.ClientID, &m.SelectedDate, &m.Observation, &m.Status,
			&m.IsDeleted, &m.CreatedOn, &m.UpdatedOn,
		); err != nil {
			return nil, err
		}
		reqs = append(reqs, m)
	}
	return reqs, rows.Err()
}

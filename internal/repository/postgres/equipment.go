package postgres

import (
	"context"
	"database/sql"
	"time"

	"coolgym-backend/internal/domain"
	"coolgym-backend/internal/repository"
)

type equipmentRepository struct {
	db DBTX
}

func NewEquipmentRepository(db DBTX) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

const equipmentColumns = `id, name, type, model, manufacturer, serial_number, code, installation_date, power_watts, status, notes, image, room, floor, is_deleted, created_on, updated_on`

func (r *equipmentRepository) Create(ctx context.Context, eq *domain.Equipment) error {
	query := `INSERT INTO equipment (name, type, model, manufacturer, serial_number, code, installation_date, power_watts, status, notes, image, room, floor, is_deleted, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, FALSE, $14, $14) RETURNING id`
	now := time.Now().UTC()
	eq.CreatedOn = now
	eq.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query,
		eq.Name, eq.Type, eq.Model, eq.Manufacturer, eq.SerialNumber, eq.Code,
		eq.InstallationDate, eq.PowerWatts, eq.Status, eq.Notes, eq.Image, eq.Room, eq.Floor, now,
	).Scan(&eq.ID)
}

func (r *equipmentRepository) GetByID(ctx context.Context, id int32) (*domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1 AND is_deleted = FALSE`
	return scanEquipment(r.db.QueryRowContext(ctx, query, id))
}

func (r *equipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE is_deleted = FALSE ORDER BY created_on DESC`
	return r.query(ctx, query)
}

func (r *equipmentRepository) ListByType(ctx context.Context, eqType string) ([]domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE type = $1 AND is_deleted = FALSE ORDER BY created_on DESC`
	return r.query(ctx, query, eqType)
}

func (r *equipmentRepository) ListByStatus(ctx context.Context, status string) ([]domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE status = $1 AND is_deleted = FALSE ORDER BY created_on DESC`
	return r.query(ctx, query, status)
}

func (r *equipmentRepository) Update(ctx context.Context, eq *domain.Equipment) error {
	query := `UPDATE equipment SET name=$1, type=$2, model=$3, manufacturer=$4, serial_number=$5, code=$6, installation_date=$7, power_watts=$8, status=$9, notes=$10, image=$11, room=$12, floor=$13, updated_on=$14 WHERE id=$15`
	eq.UpdatedOn = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query,
		eq.Name, eq.Type, eq.Model, eq.Manufacturer, eq.SerialNumber, eq.Code,
		eq.InstallationDate, eq.PowerWatts, eq.Status, eq.Notes, eq.Image, eq.Room, eq.Floor,
		eq.UpdatedOn, eq.ID)
	return err
}

func (r *equipmentRepository) SoftDelete(ctx context.Context, id int32) error {
	query := `UPDATE equipment SET is_deleted=TRUE, updated_on=$1 WHERE id=$2`
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

func (r *equipmentRepository) query(ctx context.Context, query string, args ...any) ([]domain.Equipment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Equipment
	for rows.Next() {
		var eq domain.Equipment
		if err := rows.Scan(
			&eq.ID, &eq.Name, &eq.Type, &eq.Model, &eq.Manufacturer, &eq.SerialNumber, &eq.Code,
			&eq.InstallationDate, &eq.PowerWatts, &eq.Status, &eq.Notes, &eq.Image, &eq.Room, &eq.Floor,
			&eq.IsDeleted, &eq.CreatedOn, &eq.UpdatedOn,
		); err != nil {
			return nil, err
		}
		items = append(items, eq)
	}
	return items, rows.Err()
}

func scanEquipment(row *sql.Row) (*domain.Equipment, error) {
	var eq domain.Equipment
	err := row.Scan(
		&eq.ID, &eq.Name, &eq.Type, &eq.Model, &eq.Manufacturer, &eq.SerialNumber, &eq.Code,
		&eq.InstallationDate, &eq.PowerWatts, &eq.Status, &eq.Notes, &eq.Image, &eq.Room, &eq.Floor,
		&eq.IsDeleted, &eq.CreatedOn, &eq.UpdatedOn,
	)
	if err != nil {
		return nil, err
	}
	return &eq, nil
}

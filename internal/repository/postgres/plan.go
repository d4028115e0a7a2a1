package postgres

import (
	"context"
	"time"

	"coolgym-backend/internal/domain"
	"coolgym-backend/internal/repository"
)

type clientPlanRepository struct {
	db DBTX
}

func NewClientPlanRepository(db DBTX) repository.ClientPlanRepository {
	return &clientPlanRepository{db: db}
}

func (r *clientPlanRepository) Create(ctx context.Context, p *domain.ClientPlan) error {
	query := `INSERT INTO client_plans (name, description, monthly_price, max_equipment_access, has_maintenance_support, has_priority_support, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $7) RETURNING id`
	now := time.Now().UTC()
	p.CreatedOn = now
	p.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query,
		p.Name, p.Description, p.MonthlyPrice, p.MaxEquipmentAccess, p.HasMaintenanceSupport, p.HasPrioritySupport, now,
	).Scan(&p.ID)
}

func (r *clientPlanRepository) GetByID(ctx context.Context, id int32) (*domain.ClientPlan, error) {
	query := `SELECT id, name, description, monthly_price, max_equipment_access, has_maintenance_support, has_priority_support, created_on, updated_on
	          FROM client_plans WHERE id = $1`
	var p domain.ClientPlan
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.MonthlyPrice, &p.MaxEquipmentAccess,
		&p.HasMaintenanceSupport, &p.HasPrioritySupport, &p.CreatedOn, &p.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *clientPlanRepository) List(ctx context.Context) ([]domain.ClientPlan, error) {
	query := `SELECT id, name, description, monthly_price, max_equipment_access, has_maintenance_support, has_priority_support, created_on, updated_on
	          FROM client_plans ORDER BY monthly_price ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []domain.ClientPlan
	for rows.Next() {
		var p domain.ClientPlan
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.MonthlyPrice, &p.MaxEquipmentAccess,
			&p.HasMaintenanceSupport, &p.HasPrioritySupport, &p.CreatedOn, &p.UpdatedOn,
		); err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

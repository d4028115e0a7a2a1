package postgres

import (
	"context"
	"database/sql"
	"time"

	"coolgym-backend/internal/domain"
	"coolgym-backend/internal/repository"
)

type invoiceRepository struct {
	db DBTX
}

func NewInvoiceRepository(db DBTX) repository.InvoiceRepository {
	return &invoiceRepository{db: db}
}

const invoiceColumns = `id, user_id, company_name, amount, currency, status, issued_at, paid_at, provider_id, maintenance_request_id, rental_request_id, created_on, updated_on`

func (r *invoiceRepository) Create(ctx context.Context, inv *domain.BillingInvoice) error {
	query := `INSERT INTO billing_invoices (user_id, company_name, amount, currency, status, issued_at, paid_at, provider_id, maintenance_request_id, rental_request_id, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11) RETURNING id`
	now := time.Now().UTC()
	inv.CreatedOn = now
	inv.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query,
		inv.UserID, inv.CompanyName, inv.Amount, inv.Currency, inv.Status, inv.IssuedAt, inv.PaidAt,
		inv.ProviderID, inv.MaintenanceRequestID, inv.RentalRequestID, now,
	).Scan(&inv.ID)
}

func (r *invoiceRepository) GetByID(ctx context.Context, id int32) (*domain.BillingInvoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM billing_invoices WHERE id = $1`
	return scanInvoice(r.db.QueryRowContext(ctx, query, id))
}

func (r *invoiceRepository) ListByUser(ctx context.Context, userID int32) ([]domain.BillingInvoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM billing_invoices WHERE user_id = $1 ORDER BY issued_at DESC`
	return r.query(ctx, query, userID)
}

func (r *invoiceRepository) ListPendingIssuedBefore(ctx context.Context, cutoff time.Time) ([]domain.BillingInvoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM billing_invoices WHERE status = $1 AND issued_at < $2 ORDER BY issued_at ASC`
	return r.query(ctx, query, domain.InvoiceStatusPending, cutoff)
}

func (r *invoiceRepository) Update(ctx context.Context, inv *domain.BillingInvoice) error {
	query := `UPDATE billing_invoices SET status=$1, paid_at=$2, updated_on=$3 WHERE id=$4`
	inv.UpdatedOn = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, inv.Status, inv.PaidAt, inv.UpdatedOn, inv.ID)
	return err
}

func (r *invoiceRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM billing_invoices WHERE id = $1`, id)
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

func (r *invoiceRepository) query(ctx context.Context, query string, args ...any) ([]domain.BillingInvoice, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []domain.BillingInvoice
	for rows.Next() {
		var inv domain.BillingInvoice
		if err := rows.Scan(
			&inv.ID, &inv.UserID, &inv.CompanyName, &inv.Amount, &inv.Currency, &inv.Status,
			&inv.IssuedAt, &inv.PaidAt, &inv.ProviderID, &inv.MaintenanceRequestID, &inv.RentalRequestID,
			&inv.CreatedOn, &inv.UpdatedOn,
		); err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func scanInvoice(row *sql.Row) (*domain.BillingInvoice, error) {
	var inv domain.BillingInvoice
	err := row.Scan(
		&inv.ID, &inv.UserID, &inv.CompanyName, &inv.Amount, &inv.Currency, &inv.Status,
		&inv.IssuedAt, &inv.PaidAt, &inv.ProviderID, &inv.MaintenanceRequestID, &inv.RentalRequestID,
		&inv.CreatedOn, &inv.UpdatedOn,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"coolgym-backend/internal/repository"

	_ "github.com/lib/pq"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx so every repository can
// run against the pooled connection or inside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB

	users       repository.UserRepository
	plans       repository.ClientPlanRepository
	equipment   repository.EquipmentRepository
	items       repository.RentalItemRepository
	rentals     repository.RentalRequestRepository
	invoices    repository.InvoiceRepository
	maintenance repository.MaintenanceRequestRepository
}

func NewStore(db *sql.DB) *Store {
	return newStore(db, db)
}

func newStore(db *sql.DB, q DBTX) *Store {
	return &Store{
		db:          db,
		users:       NewUserRepository(q),
		plans:       NewClientPlanRepository(q),
		equipment:   NewEquipmentRepository(q),
		items:       NewRentalItemRepository(q),
		rentals:     NewRentalRequestRepository(q),
		invoices:    NewInvoiceRepository(q),
		maintenance: NewMaintenanceRequestRepository(q),
	}
}

func (s *Store) Users() repository.UserRepository                      { return s.users }
func (s *Store) Plans() repository.ClientPlanRepository                { return s.plans }
func (s *Store) Equipment() repository.EquipmentRepository             { return s.equipment }
func (s *Store) RentalItems() repository.RentalItemRepository          { return s.items }
func (s *Store) RentalRequests() repository.RentalRequestRepository    { return s.rentals }
func (s *Store) Invoices() repository.InvoiceRepository               { return s.invoices }
func (s *Store) MaintenanceRequests() repository.MaintenanceRequestRepository {
	return s.maintenance
}

// ExecTx runs fn against a store bound to a single database transaction.
// Any error from fn rolls everything back.
func (s *Store) ExecTx(ctx context.Context, fn func(repository.Store) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(newStore(s.db, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx error: %v, rollback error: %v", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}

package repository

import (
	"context"
	"time"

	"coolgym-backend/internal/domain"
)

// Store bundles the repositories and the transactional boundary. ExecTx
// runs fn against a store whose repositories share one database
// transaction; the writes commit or roll back together.
type Store interface {
	Users() UserRepository
	Plans() ClientPlanRepository
	Equipment() EquipmentRepository
	RentalItems() RentalItemRepository
	RentalRequests() RentalRequestRepository
	Invoices() InvoiceRepository
	MaintenanceRequests() MaintenanceRequestRepository

	ExecTx(ctx context.Context, fn func(Store) error) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	// GetByIDForUpdate locks the user row for the rest of the enclosing
	// transaction. Used to serialize concurrent plan-quota checks.
	GetByIDForUpdate(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
}

type ClientPlanRepository interface {
	Create(ctx context.Context, plan *domain.ClientPlan) error
	GetByID(ctx context.Context, id int32) (*domain.ClientPlan, error)
	List(ctx context.Context) ([]domain.ClientPlan, error)
}

type EquipmentRepository interface {
	Create(ctx context.Context, eq *domain.Equipment) error
	GetByID(ctx context.Context, id int32) (*domain.Equipment, error)
	List(ctx context.Context) ([]domain.Equipment, error)
	ListByType(ctx context.Context, eqType string) ([]domain.Equipment, error)
	ListByStatus(ctx context.Context, status string) ([]domain.Equipment, error)
	Update(ctx context.Context, eq *domain.Equipment) error
	SoftDelete(ctx context.Context, id int32) error
}

type RentalItemRepository interface {
	Create(ctx context.Context, item *domain.RentalItem) error
	GetByID(ctx context.Context, id int32) (*domain.RentalItem, error)
	List(ctx context.Context) ([]domain.RentalItem, error)
	ListByType(ctx context.Context, itemType string) ([]domain.RentalItem, error)
	ListAvailable(ctx context.Context) ([]domain.RentalItem, error)
	ExistsByNameAndModel(ctx context.Context, name, model string) (bool, error)
	Update(ctx context.Context, item *domain.RentalItem) error
	SoftDelete(ctx context.Context, id int32) error
}

type RentalRequestRepository interface {
	Create(ctx context.Context, req *domain.RentalRequest) error
	GetByID(ctx context.Context, id int32) (*domain.RentalRequestView, error)
	Update(ctx context.Context, req *domain.RentalRequest) error
	// UpdateWhereStatus persists req only if the stored row still holds
	// the expected status (and is not soft-deleted). Returns
	// domain.ErrNotPending's repository-side analogue: sql.ErrNoRows is
	// mapped by the caller when the optimistic check loses.
	UpdateWhereStatus(ctx context.Context, req *domain.RentalRequest, expected domain.RentalStatus) error
	ListByClient(ctx context.Context, clientID int32) ([]domain.RentalRequestView, error)
	ListByStatus(ctx context.Context, status domain.RentalStatus) ([]domain.RentalRequestView, error)
	ListAll(ctx context.Context) ([]domain.RentalRequestView, error)
	CountApprovedByClient(ctx context.Context, clientID int32) (int32, error)
	HasPendingForEquipment(ctx context.Context, clientID, equipmentID int32) (bool, error)
}

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.BillingInvoice) error
	GetByID(ctx context.Context, id int32) (*domain.BillingInvoice, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.BillingInvoice, error)
	ListPendingIssuedBefore(ctx context.Context, cutoff time.Time) ([]domain.BillingInvoice, error)
	Update(ctx context.Context, invoice *domain.BillingInvoice) error
	Delete(ctx context.Context, id int32) error
}

type MaintenanceRequestRepository interface {
	Create(ctx context.Context, req *domain.MaintenanceRequest) error
	GetByID(ctx context.Context, id int32) (*domain.MaintenanceRequest, error)
	ListAll(ctx context.Context) ([]domain.MaintenanceRequest, error)
	ListByClient(ctx context.Context, clientID int32) ([]domain.MaintenanceRequest, error)
	Update(ctx context.Context, req *domain.MaintenanceRequest) error
	HasPendingForEquipment(ctx context.Context, equipmentID int32) (bool, error)
}

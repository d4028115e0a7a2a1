package service_test

import (
	"context"
	"time"

	"coolgym-backend/internal/domain"
	"coolgym-backend/internal/repository"

	"github.com/stretchr/testify/mock"
)

// mockStore satisfies repository.Store for service tests. ExecTx runs
// the callback against the store itself so the services' transactional
// code paths run without a database.
type mockStore struct {
	users       *MockUserRepo
	plans       *MockPlanRepo
	equipment   *MockEquipmentRepo
	items       *MockRentalItemRepo
	rentals     *MockRentalRequestRepo
	invoices    *MockInvoiceRepo
	maintenance *MockMaintenanceRepo
}

func newMockStore() *mockStore {
	return &mockStore{
		users:       new(MockUserRepo),
		plans:       new(MockPlanRepo),
		equipment:   new(MockEquipmentRepo),
		items:       new(MockRentalItemRepo),
		rentals:     new(MockRentalRequestRepo),
		invoices:    new(MockInvoiceRepo),
		maintenance: new(MockMaintenanceRepo),
	}
}

func (s *mockStore) Users() repository.UserRepository               { return s.users }
func (s *mockStore) Plans() repository.ClientPlanRepository         { return s.plans }
func (s *mockStore) Equipment() repository.EquipmentRepository      { return s.equipment }
func (s *mockStore) RentalItems() repository.RentalItemRepository   { return s.items }
func (s *mockStore) RentalRequests() repository.RentalRequestRepository {
	return s.rentals
}
func (s *mockStore) Invoices() repository.InvoiceRepository { return s.invoices }
func (s *mockStore) MaintenanceRequests() repository.MaintenanceRequestRepository {
	return s.maintenance
}

func (s *mockStore) ExecTx(ctx context.Context, fn func(repository.Store) error) error {
	return fn(s)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByIDForUpdate(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockPlanRepo
type MockPlanRepo struct {
	mock.Mock
}

func (m *MockPlanRepo) Create(ctx context.Context, plan *domain.ClientPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}
func (m *MockPlanRepo) GetByID(ctx context.Context, id int32) (*domain.ClientPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClientPlan), args.Error(1)
}
func (m *MockPlanRepo) List(ctx context.Context) ([]domain.ClientPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClientPlan), args.Error(1)
}

// MockEquipmentRepo
type MockEquipmentRepo struct {
	mock.Mock
}

func (m *MockEquipmentRepo) Create(ctx context.Context, eq *domain.Equipment) error {
	args := m.Called(ctx, eq)
	return args.Error(0)
}
func (m *MockEquipmentRepo) GetByID(ctx context.Context, id int32) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) List(ctx context.Context) ([]domain.Equipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) ListByType(ctx context.Context, eqType string) ([]domain.Equipment, error) {
	args := m.Called(ctx, eqType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) ListByStatus(ctx context.Context, status string) ([]domain.Equipment, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) Update(ctx context.Context, eq *domain.Equipment) error {
	args := m.Called(ctx, eq)
	return args.Error(0)
}
func (m *MockEquipmentRepo) SoftDelete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRentalItemRepo
type MockRentalItemRepo struct {
	mock.Mock
}

func (m *MockRentalItemRepo) Create(ctx context.Context, item *domain.RentalItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockRentalItemRepo) GetByID(ctx context.Context, id int32) (*domain.RentalItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalItem), args.Error(1)
}
func (m *MockRentalItemRepo) List(ctx context.Context) ([]domain.RentalItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalItem), args.Error(1)
}
func (m *MockRentalItemRepo) ListByType(ctx context.Context, itemType string) ([]domain.RentalItem, error) {
	args := m.Called(ctx, itemType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalItem), args.Error(1)
}
func (m *MockRentalItemRepo) ListAvailable(ctx context.Context) ([]domain.RentalItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalItem), args.Error(1)
}
func (m *MockRentalItemRepo) ExistsByNameAndModel(ctx context.Context, name, model string) (bool, error) {
	args := m.Called(ctx, name, model)
	return args.Bool(0), args.Error(1)
}
func (m *MockRentalItemRepo) Update(ctx context.Context, item *domain.RentalItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockRentalItemRepo) SoftDelete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRentalRequestRepo
type MockRentalRequestRepo struct {
	mock.Mock
}

func (m *MockRentalRequestRepo) Create(ctx context.Context, req *domain.RentalRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockRentalRequestRepo) GetByID(ctx context.Context, id int32) (*domain.RentalRequestView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRequestView), args.Error(1)
}
func (m *MockRentalRequestRepo) Update(ctx context.Context, req *domain.RentalRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockRentalRequestRepo) UpdateWhereStatus(ctx context.Context, req *domain.RentalRequest, expected domain.RentalStatus) error {
	args := m.Called(ctx, req, expected)
	return args.Error(0)
}
func (m *MockRentalRequestRepo) ListByClient(ctx context.Context, clientID int32) ([]domain.RentalRequestView, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalRequestView), args.Error(1)
}
func (m *MockRentalRequestRepo) ListByStatus(ctx context.Context, status domain.RentalStatus) ([]domain.RentalRequestView, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalRequestView), args.Error(1)
}
func (m *MockRentalRequestRepo) ListAll(ctx context.Context) ([]domain.RentalRequestView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalRequestView), args.Error(1)
}
func (m *MockRentalRequestRepo) CountApprovedByClient(ctx context.Context, clientID int32) (int32, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockRentalRequestRepo) HasPendingForEquipment(ctx context.Context, clientID, equipmentID int32) (bool, error) {
	args := m.Called(ctx, clientID, equipmentID)
	return args.Bool(0), args.Error(1)
}

// MockInvoiceRepo
type MockInvoiceRepo struct {
	mock.Mock
}

func (m *MockInvoiceRepo) Create(ctx context.Context, invoice *domain.BillingInvoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}
func (m *MockInvoiceRepo) GetByID(ctx context.Context, id int32) (*domain.BillingInvoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillingInvoice), args.Error(1)
}
func (m *MockInvoiceRepo) ListByUser(ctx context.Context, userID int32) ([]domain.BillingInvoice, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BillingInvoice), args.Error(1)
}
func (m *MockInvoiceRepo) ListPendingIssuedBefore(ctx context.Context, cutoff time.Time) ([]domain.BillingInvoice, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BillingInvoice), args.Error(1)
}
func (m *MockInvoiceRepo) Update(ctx context.Context, invoice *domain.BillingInvoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}
func (m *MockInvoiceRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMaintenanceRepo
type MockMaintenanceRepo struct {
	mock.Mock
}

func (m *MockMaintenanceRepo) Create(ctx context.Context, req *domain.MaintenanceRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockMaintenanceRepo) GetByID(ctx context.Context, id int32) (*domain.MaintenanceRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaintenanceRequest), args.Error(1)
}
func (m *MockMaintenanceRepo) ListAll(ctx context.Context) ([]domain.MaintenanceRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MaintenanceRequest), args.Error(1)
}
func (m *MockMaintenanceRepo) ListByClient(ctx context.Context, clientID int32) ([]domain.MaintenanceRequest, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MaintenanceRequest), args.Error(1)
}
func (m *MockMaintenanceRepo) Update(ctx context.Context, req *domain.MaintenanceRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockMaintenanceRepo) HasPendingForEquipment(ctx context.Context, equipmentID int32) (bool, error) {
	args := m.Called(ctx, equipmentID)
	return args.Bool(0), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRentalApproved(ctx context.Context, to, equipmentName string, monthlyPrice float64) error {
	args := m.Called(ctx, to, equipmentName, monthlyPrice)
	return args.Error(0)
}
func (m *MockEmailService) SendRentalRejected(ctx context.Context, to, equipmentName string) error {
	args := m.Called(ctx, to, equipmentName)
	return args.Error(0)
}
func (m *MockEmailService) SendInvoiceReminder(ctx context.Context, to string, amount float64, currency string, issuedAt time.Time) error {
	args := m.Called(ctx, to, amount, currency, issuedAt)
	return args.Error(0)
}

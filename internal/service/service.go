package service

import (
	"context"
	"time"

	"coolgym-backend/internal/domain"
	"coolgym-backend/internal/repository"
)

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

type UserService interface {
	GetUser(ctx context.Context, id int32) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateProfile(ctx context.Context, id int32, in UpdateProfileInput) (*domain.User, error)
}

type EquipmentService interface {
	CreateEquipment(ctx context.Context, in CreateEquipmentInput) (*domain.Equipment, error)
	GetEquipment(ctx context.Context, id int32) (*domain.Equipment, error)
	ListEquipment(ctx context.Context) ([]domain.Equipment, error)
	ListEquipmentByType(ctx context.Context, eqType string) ([]domain.Equipment, error)
	ListEquipmentByStatus(ctx context.Context, status string) ([]domain.Equipment, error)
	UpdateEquipment(ctx context.Context, id int32, in UpdateEquipmentInput) (*domain.Equipment, error)
	DeleteEquipment(ctx context.Context, id int32) error
}

type ClientPlanService interface {
	GetPlan(ctx context.Context, id int32) (*domain.ClientPlan, error)
	ListPlans(ctx context.Context) ([]domain.ClientPlan, error)
	// SeedDefaultPlans inserts the stock plan catalog when the table is
	// empty. Called once at startup; a populated catalog is left alone.
	SeedDefaultPlans(ctx context.Context) error
}

type RentalItemService interface {
	CreateRentalItem(ctx context.Context, in CreateRentalItemInput) (*domain.RentalItem, error)
	GetRentalItem(ctx context.Context, id int32) (*domain.RentalItem, error)
	ListRentalItems(ctx context.Context) ([]domain.RentalItem, error)
	ListRentalItemsByType(ctx context.Context, itemType string) ([]domain.RentalItem, error)
	ListAvailableRentalItems(ctx context.Context) ([]domain.RentalItem, error)
	UpdateRentalItem(ctx context.Context, id int32, in UpdateRentalItemInput) (*domain.RentalItem, error)
	SetRentalItemAvailability(ctx context.Context, id int32, available bool) (*domain.RentalItem, error)
	DeleteRentalItem(ctx context.Context, id int32) error
}

type RentalService interface {
	CreateRentalRequest(ctx context.Context, in CreateRentalRequestInput) (*domain.RentalRequestView, error)
	ApproveRentalRequest(ctx context.Context, requestID, providerID int32) (*domain.RentalRequestView, error)
	UpdateRentalRequestStatus(ctx context.Context, requestID int32, status string) (*domain.RentalRequestView, error)
	CancelRentalRequest(ctx context.Context, requestID int32) error
	GetRentalRequest(ctx context.Context, requestID int32) (*domain.RentalRequestView, error)
	ListRentalRequestsByClient(ctx context.Context, clientID int32) ([]domain.RentalRequestView, error)
	ListRentalRequestsByStatus(ctx context.Context, status string) ([]domain.RentalRequestView, error)
	ListAllRentalRequests(ctx context.Context) ([]domain.RentalRequestView, error)
}

type InvoiceService interface {
	InvoiceIssuer
	CreateInvoice(ctx context.Context, in IssueInvoiceInput) (*domain.BillingInvoice, error)
	GetInvoice(ctx context.Context, id int32) (*domain.BillingInvoice, error)
	ListInvoicesByUser(ctx context.Context, userID int32) ([]domain.BillingInvoice, error)
	MarkInvoiceAsPaid(ctx context.Context, id int32, paidAt time.Time) (*domain.BillingInvoice, error)
	CancelInvoice(ctx context.Context, id int32) (*domain.BillingInvoice, error)
	DeleteInvoice(ctx context.Context, id int32) error
}

// InvoiceIssuer is the slice of the invoice service the approval
// workflows call. Issue writes through the store it is handed, so a
// caller inside ExecTx gets the invoice into the same transaction.
type InvoiceIssuer interface {
	Issue(ctx context.Context, st repository.Store, in IssueInvoiceInput) (*domain.BillingInvoice, error)
}

type MaintenanceService interface {
	CreateMaintenanceRequest(ctx context.Context, in CreateMaintenanceRequestInput) (*domain.MaintenanceRequest, error)
	GetMaintenanceRequest(ctx context.Context, id int32) (*domain.MaintenanceRequest, error)
	ListMaintenanceRequests(ctx context.Context) ([]domain.MaintenanceRequest, error)
	ListMaintenanceRequestsByClient(ctx context.Context, clientID int32) ([]domain.MaintenanceRequest, error)
	UpdateMaintenanceRequestStatus(ctx context.Context, id int32, status string, providerID *int32, amount *float64) (*domain.MaintenanceRequest, error)
}

type EmailService interface {
	SendRentalApproved(ctx context.Context, to, equipmentName string, monthlyPrice float64) error
	SendRentalRejected(ctx context.Context, to, equipmentName string) error
	SendInvoiceReminder(ctx context.Context, to string, amount float64, currency string, issuedAt time.Time) error
}

type RegisterInput struct {
	Username     string
	Email        string
	Password     string
	Name         string
	Phone        *string
	Type         string
	Role         string
	ClientPlanID *int32
}

type AuthResult struct {
	User        *domain.User
	AccessToken string
}

type UpdateProfileInput struct {
	Name         *string
	Phone        *string
	ProfilePhoto *string
	ClientPlanID *int32
}

type CreateEquipmentInput struct {
	Name             string
	Type             string
	Model            string
	Manufacturer     string
	SerialNumber     string
	Code             string
	InstallationDate time.Time
	PowerWatts       int32
	Room             string
	Floor            int32
}

type UpdateEquipmentInput struct {
	Name       *string
	Status     *string
	Notes      *string
	Image      *string
	Room       *string
	Floor      *int32
	PowerWatts *int32
}

type CreateRentalItemInput struct {
	Name         string
	Type         string
	Model        string
	MonthlyPrice float64
	Currency     string
	ImageURL     string
	IsAvailable  bool
}

type UpdateRentalItemInput struct {
	Name         string
	Type         string
	Model        string
	MonthlyPrice float64
	Currency     string
	ImageURL     string
	IsAvailable  bool
}

type CreateRentalRequestInput struct {
	EquipmentID  int32
	ClientID     int32
	MonthlyPrice float64
	Notes        *string
}

type IssueInvoiceInput struct {
	UserID               int32
	CompanyName          string
	Amount               float64
	Currency             string
	Status               string
	IssuedAt             time.Time
	PaidAt               *time.Time
	ProviderID           *int32
	MaintenanceRequestID *int32
	RentalRequestID      *int32
}

type CreateMaintenanceRequestInput struct {
	EquipmentID  int32
	ClientID     int32
	SelectedDate time.Time
	Observation  string
}

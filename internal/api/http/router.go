package http

import (
	"net/http"

	"coolgym-backend/internal/domain"
	"coolgym-backend/internal/security"
	"coolgym-backend/internal/service"

	"github.com/gorilla/mux"
)

// Services bundles everything the router needs.
type Services struct {
	Auth        service.AuthService
	Users       service.UserService
	Equipment   service.EquipmentService
	Plans       service.ClientPlanService
	RentalItems service.RentalItemService
	Rentals     service.RentalService
	Invoices    service.InvoiceService
	Maintenance service.MaintenanceService
}

// NewRouter wires all handlers under /api/v1. Auth endpoints are
// public; everything else requires a valid access token.
func NewRouter(svcs Services, tokens security.TokenManager) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestIDMiddleware)
	router.Use(LoggingMiddleware)

	api := router.PathPrefix("/api/v1").Subrouter()

	authHandler := NewAuthHandler(svcs.Auth)
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	protected := api.NewRoute().Subrouter()
	protected.Use(AuthMiddleware(tokens))

	userHandler := NewUserHandler(svcs.Users)
	protected.HandleFunc("/users", userHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/users/{id:[0-9]+}", userHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/users/{id:[0-9]+}", userHandler.UpdateProfile).Methods(http.MethodPut)

	equipmentHandler := NewEquipmentHandler(svcs.Equipment)
	protected.HandleFunc("/equipments", equipmentHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/equipments", equipmentHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/equipments/{id:[0-9]+}", equipmentHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/equipments/{id:[0-9]+}", equipmentHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/equipments/{id:[0-9]+}", equipmentHandler.Delete).Methods(http.MethodDelete)

	planHandler := NewPlanHandler(svcs.Plans)
	protected.HandleFunc("/client-plans", planHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/client-plans/{id:[0-9]+}", planHandler.Get).Methods(http.MethodGet)

	itemHandler := NewRentalItemHandler(svcs.RentalItems)
	protected.HandleFunc("/rental-items", itemHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/rental-items", itemHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/rental-items/available", itemHandler.ListAvailable).Methods(http.MethodGet)
	protected.HandleFunc("/rental-items/type/{type}", itemHandler.ListByType).Methods(http.MethodGet)
	protected.HandleFunc("/rental-items/{id:[0-9]+}", itemHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/rental-items/{id:[0-9]+}", itemHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/rental-items/{id:[0-9]+}/availability", itemHandler.SetAvailability).Methods(http.MethodPut)
	protected.HandleFunc("/rental-items/{id:[0-9]+}", itemHandler.Delete).Methods(http.MethodDelete)

	rentalHandler := NewRentalHandler(svcs.Rentals)
	protected.HandleFunc("/rental-requests", rentalHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/rental-requests", rentalHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/rental-requests/{id:[0-9]+}", rentalHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/rental-requests/{id:[0-9]+}/approve",
		requireRole(domain.UserRoleProvider, rentalHandler.Approve)).Methods(http.MethodPost)
	protected.HandleFunc("/rental-requests/{id:[0-9]+}/status", rentalHandler.UpdateStatus).Methods(http.MethodPut)
	protected.HandleFunc("/rental-requests/{id:[0-9]+}", rentalHandler.Cancel).Methods(http.MethodDelete)

	invoiceHandler := NewInvoiceHandler(svcs.Invoices)
	protected.HandleFunc("/invoices", invoiceHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/invoices", invoiceHandler.ListByUser).Methods(http.MethodGet)
	protected.HandleFunc("/invoices/{id:[0-9]+}", invoiceHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/invoices/{id:[0-9]+}/pay", invoiceHandler.MarkAsPaid).Methods(http.MethodPost)
	protected.HandleFunc("/invoices/{id:[0-9]+}/cancel", invoiceHandler.Cancel).Methods(http.MethodPost)
	protected.HandleFunc("/invoices/{id:[0-9]+}", invoiceHandler.Delete).Methods(http.MethodDelete)

	maintenanceHandler := NewMaintenanceHandler(svcs.Maintenance)
	protected.HandleFunc("/maintenance-requests", maintenanceHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/maintenance-requests", maintenanceHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/maintenance-requests/{id:[0-9]+}", maintenanceHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/maintenance-requests/{id:[0-9]+}/status", maintenanceHandler.UpdateStatus).Methods(http.MethodPut)

	return router
}

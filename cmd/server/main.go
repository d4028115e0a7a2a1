package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "coolgym-backend/internal/api/http"
	"coolgym-backend/internal/config"
	"coolgym-backend/internal/jobs"
	"coolgym-backend/internal/logger"
	"coolgym-backend/internal/repository/postgres"
	"coolgym-backend/internal/scheduler"
	"coolgym-backend/internal/security"
	"coolgym-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting CoolGym Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)

	emailSvc := service.NewSendGridEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	if cfg.SendGrid.APIKey == "" {
		logger.Warn("SendGrid API key not set, outbound email disabled")
	}

	invoiceSvc := service.NewInvoiceService(store)
	authSvc := service.NewAuthService(store, tokenManager)
	userSvc := service.NewUserService(store)
	equipmentSvc := service.NewEquipmentService(store)
	planSvc := service.NewClientPlanService(store)
	itemSvc := service.NewRentalItemService(store)
	rentalSvc := service.NewRentalService(store, invoiceSvc, emailSvc, service.MissingPlanPolicy(cfg.Billing.OnMissingPlan))
	maintenanceSvc := service.NewMaintenanceService(store, invoiceSvc)

	if err := planSvc.SeedDefaultPlans(context.Background()); err != nil {
		logger.Error("Failed to seed client plans", "error", err)
		log.Fatalf("Failed to seed client plans: %v", err)
	}

	router := httpapi.NewRouter(httpapi.Services{
		Auth:        authSvc,
		Users:       userSvc,
		Equipment:   equipmentSvc,
		Plans:       planSvc,
		RentalItems: itemSvc,
		Rentals:     rentalSvc,
		Invoices:    invoiceSvc,
		Maintenance: maintenanceSvc,
	}, tokenManager)

	jobRunner := jobs.NewJobRunner(store, emailSvc, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	if err := server.Close(); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
}

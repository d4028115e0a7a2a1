package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"coolgym-backend/internal/domain"
	"coolgym-backend/internal/repository"
)

type invoiceService struct {
	store repository.Store
}

func NewInvoiceService(store repository.Store) InvoiceService {
	return &invoiceService{store: store}
}

// Issue validates and writes an invoice through the given store without
// committing. The approval workflows hand it their transaction-bound
// store so the invoice shares their commit boundary.
func (s *invoiceService) Issue(ctx context.Context, st repository.Store, in IssueInvoiceInput) (*domain.BillingInvoice, error) {
	invoice, err := domain.NewBillingInvoice(in.UserID, in.CompanyName, in.Amount, in.Currency, in.Status, in.IssuedAt, in.PaidAt)
	if err != nil {
		return nil, err
	}
	invoice.ProviderID = in.ProviderID
	invoice.MaintenanceRequestID = in.MaintenanceRequestID
	invoice.RentalRequestID = in.RentalRequestID

	if err := st.Invoices().Create(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) CreateInvoice(ctx context.Context, in IssueInvoiceInput) (*domain.BillingInvoice, error) {
	return s.Issue(ctx, s.store, in)
}

func (s *invoiceService) GetInvoice(ctx context.Context, id int32) (*domain.BillingInvoice, error) {
	invoice, err := s.store.Invoices().GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return invoice, err
}

func (s *invoiceService) ListInvoicesByUser(ctx context.Context, userID int32) ([]domain.BillingInvoice, error) {
	return s.store.Invoices().ListByUser(ctx, userID)
}

func (s *invoiceService) MarkInvoiceAsPaid(ctx context.Context, id int32, paidAt time.Time) (*domain.BillingInvoice, error) {
	invoice, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := invoice.MarkAsPaid(paidAt); err != nil {
		return nil, err
	}
	if err := s.store.Invoices().Update(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) CancelInvoice(ctx context.Context, id int32) (*domain.BillingInvoice, error) {
	invoice, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := invoice.Cancel(); err != nil {
		return nil, err
	}
	if err := s.store.Invoices().Update(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, id int32) error {
	err := s.store.Invoices().Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

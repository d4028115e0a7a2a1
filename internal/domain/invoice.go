package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

const maxCompanyNameLength = 255

var (
	ErrInvalidInvoiceUser    = errors.New("invoice user id must be positive")
	ErrEmptyCompanyName      = errors.New("invoice company name cannot be empty")
	ErrCompanyNameTooLong    = errors.New("invoice company name exceeds 255 characters")
	ErrInvalidInvoiceAmount  = errors.New("invoice amount cannot be negative")
	ErrInvalidCurrency       = errors.New("currency must be a 3-letter ISO code")
	ErrInvalidInvoiceStatus  = errors.New("invalid invoice status")
	ErrPaidDateBeforeIssued  = errors.New("paid date cannot be before issue date")
	ErrMissingPaidDate       = errors.New("paid invoices must carry a paid date")
	ErrPaidDateForUnpaid     = errors.New("only paid invoices may carry a paid date")
	ErrInvoiceAlreadyPaid    = errors.New("invoice is already paid")
	ErrCannotCancelPaid      = errors.New("paid invoices cannot be cancelled")
)

// ParseInvoiceStatus validates an invoice status string case-insensitively.
func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	status := InvoiceStatus(strings.ToLower(s))
	switch status {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusCancelled:
		return status, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidInvoiceStatus, s)
}

// BillingInvoice is a payment record for a user. Rental and maintenance
// approvals reference back through RentalRequestID / MaintenanceRequestID.
type BillingInvoice struct {
	ID                   int32         `json:"id"`
	UserID               int32         `json:"user_id"`
	CompanyName          string        `json:"company_name"`
	Amount               float64       `json:"amount"`
	Currency             string        `json:"currency"`
	Status               InvoiceStatus `json:"status"`
	IssuedAt             time.Time     `json:"issued_at"`
	PaidAt               *time.Time    `json:"paid_at,omitempty"`
	ProviderID           *int32        `json:"provider_id,omitempty"`
	MaintenanceRequestID *int32        `json:"maintenance_request_id,omitempty"`
	RentalRequestID      *int32        `json:"rental_request_id,omitempty"`
	CreatedOn            time.Time     `json:"created_on"`
	UpdatedOn            time.Time     `json:"updated_on"`
}

func NewBillingInvoice(userID int32, companyName string, amount float64, currency, status string, issuedAt time.Time, paidAt *time.Time) (*BillingInvoice, error) {
	if userID <= 0 {
		return nil, ErrInvalidInvoiceUser
	}
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return nil, ErrEmptyCompanyName
	}
	if len(companyName) > maxCompanyNameLength {
		return nil, ErrCompanyNameTooLong
	}
	if amount < 0 {
		return nil, ErrInvalidInvoiceAmount
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return nil, ErrInvalidCurrency
	}
	invoiceStatus, err := ParseInvoiceStatus(status)
	if err != nil {
		return nil, err
	}
	if paidAt != nil && paidAt.Before(issuedAt) {
		return nil, ErrPaidDateBeforeIssued
	}
	if invoiceStatus == InvoiceStatusPaid && paidAt == nil {
		return nil, ErrMissingPaidDate
	}
	if invoiceStatus != InvoiceStatusPaid && paidAt != nil {
		return nil, ErrPaidDateForUnpaid
	}
	return &BillingInvoice{
		UserID:      userID,
		CompanyName: companyName,
		Amount:      amount,
		Currency:    currency,
		Status:      invoiceStatus,
		IssuedAt:    issuedAt,
		PaidAt:      paidAt,
		CreatedOn:   time.Now().UTC(),
	}, nil
}

// MarkAsPaid moves a pending invoice to paid with the given paid date.
func (i *BillingInvoice) MarkAsPaid(paidAt time.Time) error {
	if i.Status == InvoiceStatusPaid {
		return ErrInvoiceAlreadyPaid
	}
	if paidAt.Before(i.IssuedAt) {
		return ErrPaidDateBeforeIssued
	}
	i.Status = InvoiceStatusPaid
	i.PaidAt = &paidAt
	i.UpdatedOn = time.Now().UTC()
	return nil
}

// Cancel voids the invoice unless it is already paid.
func (i *BillingInvoice) Cancel() error {
	if i.Status == InvoiceStatusPaid {
		return ErrCannotCancelPaid
	}
	i.Status = InvoiceStatusCancelled
	i.UpdatedOn = time.Now().UTC()
	return nil
}

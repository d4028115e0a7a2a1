package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewBillingInvoice(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Valid pending invoice", func(t *testing.T) {
		invoice, err := NewBillingInvoice(1, "client@gym.com", 49.90, "usd", "pending", issuedAt, nil)
		assert.NoError(t, err)
		assert.Equal(t, "USD", invoice.Currency)
		assert.Equal(t, InvoiceStatusPending, invoice.Status)
		assert.Nil(t, invoice.PaidAt)
	})

	t.Run("Zero amount is allowed", func(t *testing.T) {
		invoice, err := NewBillingInvoice(1, "client@gym.com", 0, "USD", "pending", issuedAt, nil)
		assert.NoError(t, err)
		assert.Equal(t, float64(0), invoice.Amount)
	})

	t.Run("Validation failures", func(t *testing.T) {
		paidBefore := issuedAt.Add(-time.Hour)
		paidAfter := issuedAt.Add(time.Hour)

		cases := []struct {
			name     string
			userID   int32
			company  string
			amount   float64
			currency string
			status   string
			paidAt   *time.Time
			want     error
		}{
			{"non-positive user", 0, "acme", 10, "USD", "pending", nil, ErrInvalidInvoiceUser},
			{"empty company name", 1, "   ", 10, "USD", "pending", nil, ErrEmptyCompanyName},
			{"company name too long", 1, strings.Repeat("x", 256), 10, "USD", "pending", nil, ErrCompanyNameTooLong},
			{"negative amount", 1, "acme", -1, "USD", "pending", nil, ErrInvalidInvoiceAmount},
			{"bad currency", 1, "acme", 10, "DOLLARS", "pending", nil, ErrInvalidCurrency},
			{"bad status", 1, "acme", 10, "USD", "overdue", nil, ErrInvalidInvoiceStatus},
			{"paid before issued", 1, "acme", 10, "USD", "paid", &paidBefore, ErrPaidDateBeforeIssued},
			{"paid without date", 1, "acme", 10, "USD", "paid", nil, ErrMissingPaidDate},
			{"pending with paid date", 1, "acme", 10, "USD", "pending", &paidAfter, ErrPaidDateForUnpaid},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := NewBillingInvoice(tc.userID, tc.company, tc.amount, tc.currency, tc.status, issuedAt, tc.paidAt)
				assert.ErrorIs(t, err, tc.want)
			})
		}
	})
}

func TestBillingInvoice_MarkAsPaid(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Pending invoice becomes paid", func(t *testing.T) {
		invoice, err := NewBillingInvoice(1, "client@gym.com", 49.90, "USD", "pending", issuedAt, nil)
		assert.NoError(t, err)

		paidAt := issuedAt.Add(48 * time.Hour)
		assert.NoError(t, invoice.MarkAsPaid(paidAt))
		assert.Equal(t, InvoiceStatusPaid, invoice.Status)
		if assert.NotNil(t, invoice.PaidAt) {
			assert.Equal(t, paidAt, *invoice.PaidAt)
		}
	})

	t.Run("Already paid", func(t *testing.T) {
		invoice, _ := NewBillingInvoice(1, "client@gym.com", 49.90, "USD", "pending", issuedAt, nil)
		assert.NoError(t, invoice.MarkAsPaid(issuedAt.Add(time.Hour)))

		err := invoice.MarkAsPaid(issuedAt.Add(2 * time.Hour))
		assert.ErrorIs(t, err, ErrInvoiceAlreadyPaid)
	})

	t.Run("Paid date before issue date", func(t *testing.T) {
		invoice, _ := NewBillingInvoice(1, "client@gym.com", 49.90, "USD", "pending", issuedAt, nil)
		err := invoice.MarkAsPaid(issuedAt.Add(-time.Hour))
		assert.ErrorIs(t, err, ErrPaidDateBeforeIssued)
		assert.Equal(t, InvoiceStatusPending, invoice.Status)
	})
}

func TestBillingInvoice_Cancel(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Pending invoice is cancelled", func(t *testing.T) {
		invoice, _ := NewBillingInvoice(1, "client@gym.com", 49.90, "USD", "pending", issuedAt, nil)
		assert.NoError(t, invoice.Cancel())
		assert.Equal(t, InvoiceStatusCancelled, invoice.Status)
	})

	t.Run("Paid invoice cannot be cancelled", func(t *testing.T) {
		invoice, _ := NewBillingInvoice(1, "client@gym.com", 49.90, "USD", "pending", issuedAt, nil)
		assert.NoError(t, invoice.MarkAsPaid(issuedAt.Add(time.Hour)))

		err := invoice.Cancel()
		assert.ErrorIs(t, err, ErrCannotCancelPaid)
		assert.Equal(t, InvoiceStatusPaid, invoice.Status)
	})
}

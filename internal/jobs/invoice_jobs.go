package jobs

import (
	"context"
	"time"

	"coolgym-backend/internal/logger"
)

// SendInvoiceReminders emails every client whose invoice has sat
// pending longer than the configured grace period. One failed send
// does not stop the rest of the batch.
func (jr *JobRunner) SendInvoiceReminders() {
	jr.runWithRecovery("SendInvoiceReminders", func() {
		ctx := context.Background()

		cutoff := time.Now().UTC().AddDate(0, 0, -jr.config.Billing.ReminderAfterDays)
		invoices, err := jr.store.Invoices().ListPendingIssuedBefore(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list pending invoices", "error", err)
			return
		}
		if len(invoices) == 0 {
			logger.Info("No pending invoices past the reminder cutoff")
			return
		}

		sent := 0
		for _, invoice := range invoices {
			user, err := jr.store.Users().GetByID(ctx, invoice.UserID)
			if err != nil {
				logger.Error("Failed to load invoice recipient",
					"invoice_id", invoice.ID, "user_id", invoice.UserID, "error", err)
				continue
			}
			if user.Email == "" {
				continue
			}

			err = jr.email.SendInvoiceReminder(ctx, user.Email, invoice.Amount, invoice.Currency, invoice.IssuedAt)
			if err != nil {
				logger.Error("Failed to send invoice reminder",
					"invoice_id", invoice.ID, "user_id", invoice.UserID, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Invoice reminders sent", "total", len(invoices), "sent", sent)
	})
}

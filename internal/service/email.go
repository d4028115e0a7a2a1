package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendGridEmailService sends transactional mail through SendGrid. A
// disabled instance (empty API key) drops every message silently so
// dev environments work without credentials.
type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewSendGridEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendGridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendGridEmailService) SendRentalApproved(ctx context.Context, to, equipmentName string, monthlyPrice float64) error {
	subject := fmt.Sprintf("Rental approved: %s", equipmentName)
	plainText := fmt.Sprintf("Your rental request for %s has been approved. The monthly price is %.2f. An invoice has been issued to your account.", equipmentName, monthlyPrice)
	html := fmt.Sprintf("<p>Your rental request for <strong>%s</strong> has been approved.</p><p>Monthly price: %.2f. An invoice has been issued to your account.</p>", equipmentName, monthlyPrice)
	return s.send(ctx, to, subject, plainText, html)
}

func (s *sendGridEmailService) SendRentalRejected(ctx context.Context, to, equipmentName string) error {
	subject := fmt.Sprintf("Rental request update: %s", equipmentName)
	plainText := fmt.Sprintf("Your rental request for %s was not approved. Contact the provider for details.", equipmentName)
	html := fmt.Sprintf("<p>Your rental request for <strong>%s</strong> was not approved.</p><p>Contact the provider for details.</p>", equipmentName)
	return s.send(ctx, to, subject, plainText, html)
}

func (s *sendGridEmailService) SendInvoiceReminder(ctx context.Context, to string, amount float64, currency string, issuedAt time.Time) error {
	subject := "Payment reminder: invoice pending"
	plainText := fmt.Sprintf("You have a pending invoice of %.2f %s issued on %s. Please settle it at your earliest convenience.", amount, currency, issuedAt.Format("2006-01-02"))
	html := fmt.Sprintf("<p>You have a pending invoice of <strong>%.2f %s</strong> issued on %s.</p><p>Please settle it at your earliest convenience.</p>", amount, currency, issuedAt.Format("2006-01-02"))
	return s.send(ctx, to, subject, plainText, html)
}

func (s *sendGridEmailService) send(ctx context.Context, to, subject, plainText, html string) error {
	if s.apiKey == "" {
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, html)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendOverdueInvoiceReminder(ctx context.Context, email, companyName string, folio int64, amount int64, paymentDate string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Payment reminder - contract %d", folio))

	body := fmt.Sprintf("Dear %s,\n\nThe rent invoice for contract %d, due on %s, is still pending. The outstanding amount is $%d.\n\nPlease disregard this notice if the payment is already on its way.\n\nBest regards,\nAnsimaq", companyName, folio, paymentDate, amount)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send overdue reminder: %w", err)
	}

	return nil
}

func (s *emailService) SendContractExpiryNotice(ctx context.Context, email, companyName string, folio int64, endDate string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Contract %d expires soon", folio))

	body := fmt.Sprintf("Dear %s,\n\nYour rental contract %d ends on %s. Contact us if you would like to extend it.\n\nBest regards,\nAnsimaq", companyName, folio, endDate)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send expiry notice: %w", err)
	}

	return nil
}

// noopEmailService stands in when SMTP is not configured.
type noopEmailService struct{}

func NewNoopEmailService() EmailService {
	return noopEmailService{}
}

func (noopEmailService) SendOverdueInvoiceReminder(context.Context, string, string, int64, int64, string) error {
	return nil
}

func (noopEmailService) SendContractExpiryNotice(context.Context, string, string, int64, string) error {
	return nil
}

package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"itsourstudio/config"
	"itsourstudio/models"

	"gopkg.in/gomail.v2"
)

// Subjects per email type.
const (
	subjectReceived  = "Booking Received - It's ouR Studio"
	subjectConfirmed = "Booking Confirmed - It's ouR Studio"
	subjectRejected  = "Booking Update - It's ouR Studio"
)

// SMTPMailer delivers booking emails over SMTP.
type SMTPMailer struct {
	dialer        *gomail.Dialer
	from          string
	businessEmail string
	gcashNumber   string
	gcashName     string
}

// NewSMTPMailer builds a mailer from the loaded application config.
func NewSMTPMailer() (*SMTPMailer, error) {
	cfg := config.AppConfig
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" {
		return nil, fmt.Errorf("smtp credentials not set in configuration")
	}
	return &SMTPMailer{
		dialer:        gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:          cfg.SMTPUser,
		businessEmail: cfg.BusinessEmail,
		gcashNumber:   cfg.GcashNumber,
		gcashName:     cfg.GcashName,
	}, nil
}

// RenderBody renders the HTML body for an email payload. Split out from
// delivery so templates can be exercised without an SMTP connection.
func (m *SMTPMailer) RenderBody(payload models.EmailPayload) (subject, body string, err error) {
	var tmpl *template.Template
	switch payload.Type {
	case models.EmailReceived:
		subject, tmpl = subjectReceived, receivedTmpl
	case models.EmailConfirmed:
		subject, tmpl = subjectConfirmed, confirmedTmpl
	case models.EmailRejected:
		subject, tmpl = subjectRejected, rejectedTmpl
	default:
		return "", "", fmt.Errorf("invalid email type %q", payload.Type)
	}

	b := payload.Booking
	reason := b.Reason
	if payload.Type == models.EmailRejected && reason == "" {
		reason = "Scheduling conflict"
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, templateData{
		Name:          b.Name,
		Package:       b.Package,
		TotalAmount:   b.TotalAmount,
		Downpayment:   b.Downpayment,
		Date:          b.Date,
		TimeStart:     b.TimeStart,
		ExtensionText: b.ExtensionText,
		Reason:        reason,
		BusinessEmail: m.businessEmail,
		GcashNumber:   m.gcashNumber,
		GcashName:     m.gcashName,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to render %s email: %w", payload.Type, err)
	}
	return subject, buf.String(), nil
}

// SendBookingEmail renders and delivers one booking email.
func (m *SMTPMailer) SendBookingEmail(payload models.EmailPayload) error {
	if payload.Booking.Email == "" {
		return fmt.Errorf("email payload is missing a recipient")
	}

	subject, body, err := m.RenderBody(payload)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", payload.Booking.Email)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send %s email to %s: %w", payload.Type, payload.Booking.Email, err)
	}
	return nil
}

// Package mailer provides a minimal SMTP client for transactional email.
// Uses net/smtp directly (no SDK) to minimize external dependencies.
package mailer

import (
	"fmt"
	"log/slog"
	"net/smtp"
)

// Message is one outbound unit for a single recipient. TextBody and
// HTMLBody carry the same information in two representations and are sent
// together as multipart/alternative.
type Message struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Mailer dispatches a composed message to its recipient.
type Mailer interface {
	Send(msg Message) error
}

// Config holds SMTP transport settings and the sender identity. Credentials
// are injected from the deployment environment, never hardcoded.
type Config struct {
	Enabled   bool
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// SMTPMailer is the production Mailer backed by an SMTP relay.
type SMTPMailer struct {
	cfg Config
}

// NewSMTPMailer creates an SMTPMailer with the given transport config.
func NewSMTPMailer(cfg Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Ensure SMTPMailer implements Mailer at compile time.
var _ Mailer = (*SMTPMailer)(nil)

// Send delivers one message. When the mailer is disabled (no credentials in
// the environment) it logs the message instead and reports success.
func (m *SMTPMailer) Send(msg Message) error {
	if !m.cfg.Enabled {
		slog.Info("email disabled, skipping send", "to", msg.To, "subject", msg.Subject)
		return nil
	}
	if m.cfg.Host == "" || m.cfg.Username == "" || m.cfg.Password == "" {
		return fmt.Errorf("mailer: smtp transport not configured")
	}

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	if err := smtp.SendMail(addr, auth, m.cfg.FromEmail, []string{msg.To}, m.build(msg)); err != nil {
		return fmt.Errorf("mailer: send to %s: %w", msg.To, err)
	}
	return nil
}

const mimeBoundary = "----=_ContactAPI_Boundary"

// build assembles the raw multipart/alternative MIME message.
func (m *SMTPMailer) build(msg Message) []byte {
	from := m.cfg.FromEmail
	if m.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.FromEmail)
	}

	raw := fmt.Sprintf("From: %s\r\n", from) +
		fmt.Sprintf("To: %s\r\n", msg.To) +
		fmt.Sprintf("Subject: %s\r\n", msg.Subject) +
		"MIME-Version: 1.0\r\n" +
		fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n", mimeBoundary) +
		"\r\n"

	raw += fmt.Sprintf("--%s\r\n", mimeBoundary) +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		msg.TextBody + "\r\n"

	if msg.HTMLBody != "" {
		raw += fmt.Sprintf("--%s\r\n", mimeBoundary) +
			"Content-Type: text/html; charset=UTF-8\r\n" +
			"\r\n" +
			msg.HTMLBody + "\r\n"
	}

	raw += fmt.Sprintf("--%s--\r\n", mimeBoundary)
	return []byte(raw)
}

package service

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/jiayee/contact-api/internal/metrics"
	"github.com/jiayee/contact-api/internal/model"
	"github.com/jiayee/contact-api/pkg/mailer"
)

// notificationServiceImpl composes and dispatches submission emails through
// a Mailer.
type notificationServiceImpl struct {
	mailer     mailer.Mailer
	adminEmail string
}

// NewNotificationService creates a NotificationService that mails the
// operator summary to adminEmail and the acknowledgment to the submitter.
func NewNotificationService(m mailer.Mailer, adminEmail string) NotificationService {
	return &notificationServiceImpl{mailer: m, adminEmail: adminEmail}
}

// Ensure notificationServiceImpl implements NotificationService at compile time.
var _ NotificationService = (*notificationServiceImpl)(nil)

// Notify composes and dispatches both messages for one record.
func (s *notificationServiceImpl) Notify(rec *model.ContactRecord) {
	s.dispatch("operator", s.operatorMessage(rec))
	s.dispatch("submitter", s.acknowledgmentMessage(rec))
}

// dispatch sends one message and records the outcome. A failure is terminal
// for the attempt: logged, counted, never retried, never surfaced.
func (s *notificationServiceImpl) dispatch(recipient string, msg mailer.Message) {
	err := s.mailer.Send(msg)
	metrics.RecordNotificationDispatch(recipient, err)
	if err != nil {
		slog.Error("notification dispatch failed", "recipient", recipient, "to", msg.To, "error", err)
		return
	}
	slog.Info("notification dispatched", "recipient", recipient, "to", msg.To)
}

// operatorMessage summarizes the submission for the site operator.
func (s *notificationServiceImpl) operatorMessage(rec *model.ContactRecord) mailer.Message {
	origin := rec.Website
	if origin == "" {
		origin = rec.Source
	}
	submitted := rec.Timestamp.Format("2006-01-02 15:04:05")

	text := fmt.Sprintf(`New inquiry
===========

Name: %s
Email: %s
Message: %s
Origin: %s
Time: %s

Inquiry ID: %s`,
		rec.Name, rec.Email, rec.Message, origin, submitted, rec.ID)

	html := fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; background: #f5f5f5; padding: 20px;">
  <div style="max-width: 600px; margin: 0 auto; background: white; border-radius: 10px; padding: 30px;">
    <h2 style="color: #6366f1; margin-top: 0;">New inquiry</h2>
    <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
      <p><strong>Name:</strong> %s</p>
      <p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>
      <p><strong>Message:</strong></p>
      <div style="background: white; padding: 15px; border-radius: 5px; margin-top: 10px;">%s</div>
      <p><strong>Origin:</strong> %s</p>
      <p><strong>Time:</strong> %s</p>
    </div>
    <p style="color: #666; font-size: 12px;">Inquiry ID: %s — sent automatically by the portfolio contact form.</p>
  </div>
</body>
</html>`,
		rec.Name, rec.Email, rec.Email, htmlBody(rec.Message), origin, submitted, rec.ID)

	return mailer.Message{
		To:       s.adminEmail,
		Subject:  fmt.Sprintf("New inquiry from %s", rec.Name),
		TextBody: text,
		HTMLBody: html,
	}
}

// acknowledgmentMessage confirms receipt to the submitter, restating their
// message and promising a reply within 24 hours.
func (s *notificationServiceImpl) acknowledgmentMessage(rec *model.ContactRecord) mailer.Message {
	text := fmt.Sprintf(`Thank you for your inquiry - Jiayee Design
===========================================

Dear %s,

Thank you for reaching out through my portfolio site. Your message has
been received.

Your inquiry:
%s

I will get back to you within 24 hours at the address you provided:
%s

Please keep an eye on your inbox (and your spam folder, just in case).

Looking forward to working with you!

--
Jiayee
Creative landing page design, focused on conversion`,
		rec.Name, rec.Message, rec.Email)

	html := fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; background: #f5f5f5; padding: 20px;">
  <div style="max-width: 600px; margin: 0 auto; background: white; border-radius: 10px; padding: 30px;">
    <h2 style="color: #6366f1; margin-top: 0;">Thank you for your inquiry!</h2>
    <p>Dear <strong>%s</strong>,</p>
    <p>Thank you for reaching out through my portfolio site. Your message has been received.</p>
    <div style="background: #f0f9ff; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #06b6d4;">
      <p><strong>Your inquiry:</strong></p>
      <div style="background: white; padding: 15px; border-radius: 5px; margin-top: 10px;">%s</div>
    </div>
    <p>I will get back to you within <strong style="color: #06b6d4;">24 hours</strong> at:</p>
    <p style="font-weight: bold;">%s</p>
    <p>Please keep an eye on your inbox (and your spam folder, just in case).</p>
    <p>Looking forward to working with you!</p>
    <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #e5e5e5; color: #666; font-size: 12px;">
      <p>Jiayee Design · Creative landing page design, focused on conversion</p>
    </div>
  </div>
</body>
</html>`,
		rec.Name, htmlBody(rec.Message), rec.Email)

	return mailer.Message{
		To:       rec.Email,
		Subject:  "Thank you for your inquiry - Jiayee Design",
		TextBody: text,
		HTMLBody: html,
	}
}

// htmlBody renders a submitted message for embedding in an HTML email.
func htmlBody(message string) string {
	escaped := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	).Replace(message)
	return strings.ReplaceAll(escaped, "\n", "<br>")
}

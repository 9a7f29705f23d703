package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jiayee/contact-api/internal/model"
	"github.com/jiayee/contact-api/pkg/mailer"
)

// ---------------------------------------------------------------------------
// mockMailer — records sent messages, optionally failing per recipient
// ---------------------------------------------------------------------------

type mockMailer struct {
	sendFunc func(msg mailer.Message) error
	sent     []mailer.Message
}

func (m *mockMailer) Send(msg mailer.Message) error {
	m.sent = append(m.sent, msg)
	if m.sendFunc != nil {
		return m.sendFunc(msg)
	}
	return nil
}

func testRecord() *model.ContactRecord {
	return &model.ContactRecord{
		ID:        "20240101120000.000000000-abcd1234",
		Name:      "Amy",
		Email:     "amy@x.com",
		Message:   "Need a landing page\nwith two sections",
		Source:    model.DefaultSource,
		Timestamp: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		Status:    model.StatusNew,
	}
}

// ---------------------------------------------------------------------------
// Notify tests
// ---------------------------------------------------------------------------

// TestNotificationService_Notify_SendsTwoMessages verifies exactly two
// messages go out: operator first, then submitter acknowledgment.
func TestNotificationService_Notify_SendsTwoMessages(t *testing.T) {
	m := &mockMailer{}
	svc := NewNotificationService(m, "admin@example.com")

	svc.Notify(testRecord())

	if len(m.sent) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(m.sent))
	}
	if m.sent[0].To != "admin@example.com" {
		t.Errorf("expected operator message to admin@example.com, got %q", m.sent[0].To)
	}
	if m.sent[1].To != "amy@x.com" {
		t.Errorf("expected acknowledgment to amy@x.com, got %q", m.sent[1].To)
	}
}

func TestNotificationService_Notify_OperatorContent(t *testing.T) {
	m := &mockMailer{}
	svc := NewNotificationService(m, "admin@example.com")

	svc.Notify(testRecord())

	op := m.sent[0]
	if !strings.Contains(op.Subject, "Amy") {
		t.Errorf("expected submitter name in subject, got %q", op.Subject)
	}
	for _, want := range []string{"Amy", "amy@x.com", "Need a landing page", model.DefaultSource} {
		if !strings.Contains(op.TextBody, want) {
			t.Errorf("expected %q in operator text body", want)
		}
	}
	if op.HTMLBody == "" {
		t.Error("expected HTML body alongside text body")
	}
	if !strings.Contains(op.HTMLBody, "amy@x.com") {
		t.Error("expected submitter email in operator HTML body")
	}
}

func TestNotificationService_Notify_AcknowledgmentContent(t *testing.T) {
	m := &mockMailer{}
	svc := NewNotificationService(m, "admin@example.com")

	svc.Notify(testRecord())

	ack := m.sent[1]
	if !strings.Contains(ack.TextBody, "Need a landing page") {
		t.Error("expected submitted message restated in acknowledgment")
	}
	if !strings.Contains(ack.TextBody, "24 hours") {
		t.Error("expected reply window in acknowledgment")
	}
	if ack.HTMLBody == "" {
		t.Error("expected HTML body alongside text body")
	}
	// Newlines in the submitted message become <br> in the HTML rendering.
	if !strings.Contains(ack.HTMLBody, "Need a landing page<br>with two sections") {
		t.Error("expected message newlines rendered as <br> in HTML body")
	}
}

// TestNotificationService_Notify_FailureIsolation verifies a failed
// operator dispatch does not prevent the submitter attempt.
func TestNotificationService_Notify_FailureIsolation(t *testing.T) {
	m := &mockMailer{
		sendFunc: func(msg mailer.Message) error {
			if msg.To == "admin@example.com" {
				return errors.New("mailbox full")
			}
			return nil
		},
	}
	svc := NewNotificationService(m, "admin@example.com")

	svc.Notify(testRecord())

	if len(m.sent) != 2 {
		t.Fatalf("expected both dispatches attempted, got %d", len(m.sent))
	}
	if m.sent[1].To != "amy@x.com" {
		t.Errorf("expected submitter attempt after operator failure, got %q", m.sent[1].To)
	}
}

// TestNotificationService_Notify_EscapesHTML verifies markup in a submitted
// message cannot be injected into the HTML body.
func TestNotificationService_Notify_EscapesHTML(t *testing.T) {
	rec := testRecord()
	rec.Message = "<script>alert(1)</script>"
	m := &mockMailer{}
	svc := NewNotificationService(m, "admin@example.com")

	svc.Notify(rec)

	for _, msg := range m.sent {
		if strings.Contains(msg.HTMLBody, "<script>") {
			t.Error("expected submitted markup escaped in HTML body")
		}
	}
}

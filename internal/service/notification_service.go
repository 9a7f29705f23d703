package service

import "github.com/jiayee/contact-api/internal/model"

// NotificationService sends the emails triggered by an accepted submission:
// an operator-facing summary and a submitter-facing acknowledgment.
//
// Notify is best effort. Each dispatch is attempted exactly once, its
// outcome logged independently, and a failure for one recipient never
// prevents the attempt to the other. The coordinator calls Notify from its
// own goroutine with no join; work in flight when the process exits is lost.
type NotificationService interface {
	Notify(rec *model.ContactRecord)
}

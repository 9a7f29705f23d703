package service

import (
	"context"

	"github.com/jiayee/contact-api/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit validates a raw form payload, persists the resulting record
	// and schedules notification emails. Rejected input returns a
	// *ValidationError; a persistence failure is reported through
	// SubmissionResult.Stored rather than an error, so the caller still
	// sees the submission as accepted.
	Submit(ctx context.Context, payload map[string]any) (*model.SubmissionResult, error)

	// List returns every stored contact record.
	List(ctx context.Context) ([]*model.ContactRecord, error)
}

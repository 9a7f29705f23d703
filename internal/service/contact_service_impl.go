package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/jiayee/contact-api/internal/metrics"
	"github.com/jiayee/contact-api/internal/model"
	"github.com/jiayee/contact-api/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo     repository.ContactRepository
	notifier NotificationService
}

// NewContactService creates a ContactService backed by the given repository
// and notifier.
func NewContactService(repo repository.ContactRepository, notifier NotificationService) ContactService {
	return &contactServiceImpl{repo: repo, notifier: notifier}
}

// Submit runs the submission pipeline: validate, persist, schedule
// notifications, respond. Once validation has passed the caller is told the
// submission succeeded; persistence and notification failures are recorded
// but never fail the response.
func (s *contactServiceImpl) Submit(ctx context.Context, payload map[string]any) (*model.SubmissionResult, error) {
	sub, verr := ValidateSubmission(payload)
	if verr != nil {
		metrics.RecordSubmissionRejection(verr.Field)
		slog.Info("contact submission rejected", "code", verr.Code, "field", verr.Field)
		return nil, verr
	}

	rec := &model.ContactRecord{
		Name:    sub.Name,
		Email:   sub.Email,
		Message: sub.Message,
		Source:  sub.Source,
		Website: sub.Website,
		Status:  model.StatusNew,
	}

	stored := true
	if err := s.repo.Save(ctx, rec); err != nil {
		// Validation already passed, so the failure is visible only in
		// logs and metrics; the caller still gets a success response.
		stored = false
		metrics.RecordStoreWriteFailure()
		slog.Error("failed to persist contact record", "name", rec.Name, "email", rec.Email, "error", err)
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}

	metrics.RecordContactSubmission()
	slog.Info("contact submission accepted", "id", rec.ID, "name", rec.Name, "email", rec.Email, "stored", stored)

	// Fire and forget: the response path never waits on SMTP. Persistence
	// happens before this point; completion of the notification work is
	// unordered with respect to the response.
	go s.notifier.Notify(rec)

	return &model.SubmissionResult{
		ID:        rec.ID,
		Name:      rec.Name,
		Timestamp: rec.Timestamp,
		Stored:    stored,
	}, nil
}

// List returns every stored contact record.
func (s *contactServiceImpl) List(ctx context.Context) ([]*model.ContactRecord, error) {
	return s.repo.List(ctx)
}

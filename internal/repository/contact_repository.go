package repository

import (
	"context"

	"github.com/jiayee/contact-api/internal/model"
)

// ContactRepository defines the persistence interface for contact records.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	// Save appends a new record to the store. The record's ID, Timestamp,
	// CreatedAt and (if unset) Status are populated by the implementation.
	Save(ctx context.Context, rec *model.ContactRecord) error

	// List returns every stored record in insertion order.
	List(ctx context.Context) ([]*model.ContactRecord, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)
}

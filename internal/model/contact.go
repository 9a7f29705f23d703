package model

import "time"

// StatusNew is the initial status assigned to every persisted record.
const StatusNew = "new"

// DefaultSource identifies submissions arriving from the portfolio site
// when the form does not name another origin.
const DefaultSource = "jiayee-portfolio"

// ContactRecord is the canonical persisted form of an accepted submission.
// Records are created once, never mutated, and read back in full by listing.
type ContactRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Source    string    `json:"source"`
	Website   string    `json:"website"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"` // "new"
	CreatedAt time.Time `json:"created_at"`
}

// Submission is the normalized output of validating a raw form payload.
type Submission struct {
	Name    string
	Email   string
	Message string
	Source  string
	Website string
}

// SubmissionResult is the outcome returned to the caller for an accepted
// submission. Stored is false when persistence failed; the submission is
// still reported as accepted in that case.
type SubmissionResult struct {
	ID        string
	Name      string
	Timestamp time.Time
	Stored    bool
}

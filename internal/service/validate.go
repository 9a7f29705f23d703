package service

import (
	"fmt"
	"strings"

	"github.com/jiayee/contact-api/internal/model"
)

// Validation error codes.
const (
	CodeMalformedPayload = "malformed_payload"
	CodeMissingField     = "missing_field"
	CodeEmptyField       = "empty_field"
	CodeInvalidEmail     = "invalid_email"
	CodeMessageTooShort  = "message_too_short"
)

const minMessageLength = 3

// requiredFields is checked in this order; the first failing field wins and
// no further rules run.
var requiredFields = []string{"name", "email", "message"}

// ValidationError reports the first rule an inbound submission violated.
// Field is empty for payload-level failures.
type ValidationError struct {
	Code   string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// ValidateSubmission checks and normalizes a decoded form payload into a
// Submission. It is a pure function: no side effects, no clock, no I/O.
//
// The email check only requires the presence of "@" and "." — a coarse
// syntactic gate inherited from the service contract, not RFC validation.
// Do not tighten it.
func ValidateSubmission(payload map[string]any) (*model.Submission, *ValidationError) {
	if payload == nil {
		return nil, &ValidationError{
			Code:   CodeMalformedPayload,
			Reason: "request body must be a JSON object",
		}
	}

	values := make(map[string]string, len(requiredFields))
	for _, field := range requiredFields {
		raw, ok := payload[field]
		if !ok {
			return nil, &ValidationError{
				Code:   CodeMissingField,
				Field:  field,
				Reason: fmt.Sprintf("missing required field: %s", field),
			}
		}
		value := strings.TrimSpace(coerceString(raw))
		if value == "" {
			return nil, &ValidationError{
				Code:   CodeEmptyField,
				Field:  field,
				Reason: fmt.Sprintf("field must not be empty: %s", field),
			}
		}
		values[field] = value
	}

	email := values["email"]
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return nil, &ValidationError{
			Code:   CodeInvalidEmail,
			Field:  "email",
			Reason: "invalid email address",
		}
	}

	// Length in characters, not bytes.
	if len([]rune(values["message"])) < minMessageLength {
		return nil, &ValidationError{
			Code:   CodeMessageTooShort,
			Field:  "message",
			Reason: fmt.Sprintf("message must be at least %d characters", minMessageLength),
		}
	}

	sub := &model.Submission{
		Name:    values["name"],
		Email:   values["email"],
		Message: values["message"],
		Source:  model.DefaultSource,
	}

	// Optional fields: coerced to text, otherwise unvalidated. Source
	// defaults only when the key is absent entirely.
	if raw, ok := payload["source"]; ok {
		sub.Source = strings.TrimSpace(coerceString(raw))
	}
	if raw, ok := payload["website"]; ok {
		sub.Website = strings.TrimSpace(coerceString(raw))
	}

	return sub, nil
}

// coerceString renders any decoded JSON value as text. Submitted fields are
// not trusted to be correctly typed.
func coerceString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

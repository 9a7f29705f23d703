package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/jiayee/contact-api/internal/model"
	"github.com/jiayee/contact-api/internal/service"
)

// ContactHandler handles contact form submission and listing of stored
// contacts.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// errorResponse is the JSON envelope for every failed request.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// submitData echoes the accepted submission back to the caller.
type submitData struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Timestamp string `json:"timestamp"`
}

// submitStorage reports the side effects of the submission.
type submitStorage struct {
	LocalFile  bool `json:"local_file"`
	EmailsSent bool `json:"emails_sent"`
}

// submitResponse is the JSON envelope for a successful POST /api/submit.
type submitResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    submitData    `json:"data"`
	Storage submitStorage `json:"storage"`
}

// Submit handles POST /api/submit. The body must be a JSON object with
// name, email and message; source, website and timestamp are optional.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "request body must be valid JSON"})
		return
	}

	result, err := h.contactService.Submit(r.Context(), payload)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Reason})
			return
		}
		slog.Error("contact submission failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{
		Success: true,
		Message: "Inquiry submitted successfully! A confirmation email is on its way.",
		Data: submitData{
			ID:        result.ID,
			Name:      result.Name,
			Timestamp: result.Timestamp.Format(time.RFC3339Nano),
		},
		Storage: submitStorage{
			LocalFile:  result.Stored,
			EmailsSent: true,
		},
	})
}

// listResponse is the JSON envelope for GET /api/contacts.
type listResponse struct {
	Success  bool                   `json:"success"`
	Count    int                    `json:"count"`
	Contacts []*model.ContactRecord `json:"contacts"`
}

// List handles GET /api/contacts and returns every stored record.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contactService.List(r.Context())
	if err != nil {
		slog.Error("failed to list contacts", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to read contact store"})
		return
	}

	// Return [] not null for empty lists
	if contacts == nil {
		contacts = []*model.ContactRecord{}
	}

	writeJSON(w, http.StatusOK, listResponse{
		Success:  true,
		Count:    len(contacts),
		Contacts: contacts,
	})
}

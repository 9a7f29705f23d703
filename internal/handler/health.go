package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jiayee/contact-api/internal/repository"
)

// HealthHandler reports service liveness and basic store statistics.
type HealthHandler struct {
	repo     repository.ContactRepository
	service  string
	version  string
	dataFile string
}

// NewHealthHandler creates a HealthHandler reading counts from repo.
func NewHealthHandler(repo repository.ContactRepository, service, version, dataFile string) *HealthHandler {
	return &HealthHandler{repo: repo, service: service, version: version, dataFile: dataFile}
}

type healthResponse struct {
	Status        string `json:"status"`
	Service       string `json:"service"`
	Timestamp     string `json:"timestamp"`
	Version       string `json:"version"`
	DataFile      string `json:"data_file"`
	ContactsCount int    `json:"contactsCount"`
}

// Health handles GET /api/health. It always reports healthy; a count
// failure is logged and reported as zero rather than failing the check.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	count, err := h.repo.Count(r.Context())
	if err != nil {
		slog.Warn("health: failed to count contacts", "error", err)
		count = 0
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status:        "healthy",
		Service:       h.service,
		Timestamp:     time.Now().UTC().Format(time.RFC3339Nano),
		Version:       h.version,
		DataFile:      h.dataFile,
		ContactsCount: count,
	})
}

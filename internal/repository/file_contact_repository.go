package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jiayee/contact-api/internal/model"
)

const contactsFileName = "contacts.json"

// FileContactRepository persists contact records as a single human-readable
// JSON array on local disk. Every Save rewrites the whole collection, so the
// read-modify-write cycle is serialized by a mutex; without it concurrent
// submissions would lose updates.
type FileContactRepository struct {
	path string
	mu   sync.Mutex
}

// NewFileContactRepository creates the data directory if it does not exist
// and returns a repository writing to <dataDir>/contacts.json.
func NewFileContactRepository(dataDir string) (*FileContactRepository, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("repository: mkdir %s: %w", dataDir, err)
	}
	return &FileContactRepository{path: filepath.Join(dataDir, contactsFileName)}, nil
}

// Ensure FileContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*FileContactRepository)(nil)

// Path returns the location of the backing file, absolute when possible.
func (r *FileContactRepository) Path() string {
	abs, err := filepath.Abs(r.path)
	if err != nil {
		return r.path
	}
	return abs
}

// Save assigns the record's generated fields and appends it to the store.
// The snapshot is replaced through a temp file and rename so readers never
// observe a partial write.
func (r *FileContactRepository) Save(_ context.Context, rec *model.ContactRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.load()

	now := time.Now().UTC()
	rec.ID = newRecordID(now)
	rec.Timestamp = now
	rec.CreatedAt = now
	if rec.Status == "" {
		rec.Status = model.StatusNew
	}

	records = append(records, rec)
	if err := r.rewrite(records); err != nil {
		return fmt.Errorf("repository: rewrite %s: %w", r.path, err)
	}
	return nil
}

// List returns all stored records. A missing file is an empty store; an
// unparseable file is logged and treated as empty, with no recovery attempt.
func (r *FileContactRepository) List(_ context.Context) ([]*model.ContactRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(), nil
}

// Count returns the number of stored records.
func (r *FileContactRepository) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.load()), nil
}

// load reads the current snapshot. Callers must hold mu.
func (r *FileContactRepository) load() []*model.ContactRecord {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("contact store unreadable, treating as empty", "path", r.path, "error", err)
		}
		return []*model.ContactRecord{}
	}
	var records []*model.ContactRecord
	if err := json.Unmarshal(data, &records); err != nil {
		slog.Warn("contact store corrupt, treating as empty", "path", r.path, "error", err)
		return []*model.ContactRecord{}
	}
	return records
}

// rewrite replaces the snapshot atomically. Callers must hold mu.
func (r *FileContactRepository) rewrite(records []*model.ContactRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), contactsFileName+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), r.path)
}

// newRecordID combines a creation-order-sortable UTC wall-clock prefix with
// a random suffix so submissions landing in the same instant cannot collide.
func newRecordID(now time.Time) string {
	return now.Format("20060102150405.000000000") + "-" + uuid.NewString()[:8]
}

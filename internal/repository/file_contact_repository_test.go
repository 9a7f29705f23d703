package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/jiayee/contact-api/internal/model"
)

func newTestRepo(t *testing.T) *FileContactRepository {
	t.Helper()
	repo, err := NewFileContactRepository(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create repository: %v", err)
	}
	return repo
}

// ---------------------------------------------------------------------------
// Save / List
// ---------------------------------------------------------------------------

func TestFileContactRepository_SavePopulatesGeneratedFields(t *testing.T) {
	repo := newTestRepo(t)

	rec := &model.ContactRecord{Name: "Amy", Email: "amy@x.com", Message: "Need a landing page"}
	if err := repo.Save(context.Background(), rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.ID == "" {
		t.Error("expected ID to be populated")
	}
	if rec.Timestamp.IsZero() || rec.CreatedAt.IsZero() {
		t.Error("expected timestamps to be populated")
	}
	if rec.Status != model.StatusNew {
		t.Errorf("expected status %q, got %q", model.StatusNew, rec.Status)
	}
}

// TestFileContactRepository_RoundTrip writes records and reads them back
// field for field.
func TestFileContactRepository_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)

	for i := 0; i < 3; i++ {
		rec := &model.ContactRecord{
			Name:    fmt.Sprintf("User %d", i),
			Email:   fmt.Sprintf("user%d@example.com", i),
			Message: "hello from a test",
			Source:  model.DefaultSource,
			Website: "https://example.com",
			Status:  model.StatusNew,
		}
		if err := repo.Save(context.Background(), rec); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	for i, rec := range got {
		if rec.Name != fmt.Sprintf("User %d", i) {
			t.Errorf("record %d: expected name preserved in insertion order, got %q", i, rec.Name)
		}
		if rec.Email != fmt.Sprintf("user%d@example.com", i) {
			t.Errorf("record %d: expected email preserved, got %q", i, rec.Email)
		}
		if rec.Website != "https://example.com" {
			t.Errorf("record %d: expected website preserved, got %q", i, rec.Website)
		}
	}

	count, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("expected count 3, got %d", count)
	}
}

func TestFileContactRepository_ListMissingFile(t *testing.T) {
	repo := newTestRepo(t)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty store, got %d records", len(got))
	}
}

// TestFileContactRepository_ListCorruptFile verifies an unparseable
// snapshot is treated as empty, not as an error.
func TestFileContactRepository_ListCorruptFile(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewFileContactRepository(dir)
	if err != nil {
		t.Fatalf("failed to create repository: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "contacts.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty store for corrupt file, got %d records", len(got))
	}
}

// TestFileContactRepository_SnapshotIsValidJSON verifies the on-disk form
// stays a parseable JSON array after every rewrite.
func TestFileContactRepository_SnapshotIsValidJSON(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewFileContactRepository(dir)
	if err != nil {
		t.Fatalf("failed to create repository: %v", err)
	}

	rec := &model.ContactRecord{Name: "Amy", Email: "amy@x.com", Message: "hello!"}
	if err := repo.Save(context.Background(), rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "contacts.json"))
	if err != nil {
		t.Fatalf("failed to read snapshot: %v", err)
	}
	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("snapshot is not valid JSON: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record in snapshot, got %d", len(records))
	}
	if records[0]["status"] != "new" {
		t.Errorf("expected status new in snapshot, got %v", records[0]["status"])
	}
}

// ---------------------------------------------------------------------------
// Concurrency
// ---------------------------------------------------------------------------

// TestFileContactRepository_ConcurrentSaves drives 50 concurrent writers
// against the store: no update may be lost and every ID must be unique.
func TestFileContactRepository_ConcurrentSaves(t *testing.T) {
	repo := newTestRepo(t)

	const writers = 50
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			rec := &model.ContactRecord{
				Name:    fmt.Sprintf("User %d", i),
				Email:   fmt.Sprintf("user%d@example.com", i),
				Message: "concurrent submission",
			}
			if err := repo.Save(context.Background(), rec); err != nil {
				t.Errorf("save %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != writers {
		t.Fatalf("expected %d records, got %d (lost updates)", writers, len(got))
	}

	ids := make(map[string]bool, writers)
	for _, rec := range got {
		if ids[rec.ID] {
			t.Errorf("duplicate ID %q", rec.ID)
		}
		ids[rec.ID] = true
	}
}

// TestFileContactRepository_IDsSortByCreationOrder verifies sequentially
// created IDs sort in creation order.
func TestFileContactRepository_IDsSortByCreationOrder(t *testing.T) {
	repo := newTestRepo(t)

	var created []string
	for i := 0; i < 5; i++ {
		rec := &model.ContactRecord{Name: "A", Email: "a@b.com", Message: "hello!"}
		if err := repo.Save(context.Background(), rec); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
		created = append(created, rec.ID)
	}

	sorted := append([]string(nil), created...)
	sort.Strings(sorted)
	for i := range created {
		if created[i] != sorted[i] {
			t.Fatalf("IDs not sortable by creation order: %v", created)
		}
	}
}

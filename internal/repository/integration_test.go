package repository

import (
	"path/filepath"
	"testing"
	"time"

	"ecolearn/internal/database"
	"ecolearn/internal/models"

	"github.com/google/uuid"
)

// openTestDB creates a throwaway SQLite database with the real migrations
func openTestDB(t *testing.T) *database.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := database.Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func TestStateRepositoryRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewStateRepository(db)

	// Absent key is not an error
	_, ok, err := repo.Get("ecolearn_student")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Fatal("expected absent key")
	}

	if err := repo.Set("ecolearn_student", `{"id":"student-1"}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, ok, err := repo.Get("ecolearn_student")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || value != `{"id":"student-1"}` {
		t.Errorf("Get() = %q, %v", value, ok)
	}

	// Upsert replaces the stored value
	if err := repo.Set("ecolearn_student", `{"id":"student-2"}`); err != nil {
		t.Fatalf("Set overwrite failed: %v", err)
	}
	value, _, _ = repo.Get("ecolearn_student")
	if value != `{"id":"student-2"}` {
		t.Errorf("overwrite not applied, got %q", value)
	}
}

func TestSessionRepositoryLifecycle(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)

	session := &models.Session{
		ID:        uuid.New().String(),
		StudentID: "student-1",
		ExpiresAt: time.Now().Add(24 * time.Hour),
		CreatedAt: time.Now(),
	}

	if err := repo.CreateSession(session); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	got, err := repo.GetSessionByID(session.ID)
	if err != nil {
		t.Fatalf("GetSessionByID failed: %v", err)
	}
	if got == nil || got.StudentID != "student-1" {
		t.Errorf("GetSessionByID() = %+v", got)
	}

	if err := repo.DeleteSession(session.ID); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}
	got, err = repo.GetSessionByID(session.ID)
	if err != nil {
		t.Fatalf("GetSessionByID after delete failed: %v", err)
	}
	if got != nil {
		t.Error("session still present after delete")
	}
}

func TestDeleteExpiredSessions(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)

	expired := &models.Session{
		ID:        uuid.New().String(),
		StudentID: "student-1",
		ExpiresAt: time.Now().Add(-time.Hour),
		CreatedAt: time.Now().Add(-25 * time.Hour),
	}
	live := &models.Session{
		ID:        uuid.New().String(),
		StudentID: "student-1",
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
	repo.CreateSession(expired)
	repo.CreateSession(live)

	n, err := repo.DeleteExpiredSessions()
	if err != nil {
		t.Fatalf("DeleteExpiredSessions failed: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted %d sessions, want 1", n)
	}

	if got, _ := repo.GetSessionByID(live.ID); got == nil {
		t.Error("live session was removed")
	}
}

func TestContactRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewContactRepository(db)

	msg := &models.ContactMessage{
		ID:        uuid.New().String(),
		Name:      "Arjun Sharma",
		Email:     "arjun@example.com",
		Subject:   "Question about challenges",
		Body:      "How do I submit challenge photos?",
		CreatedAt: time.Now(),
	}
	if err := repo.CreateMessage(msg); err != nil {
		t.Fatalf("CreateMessage failed: %v", err)
	}

	unsent, err := repo.GetUnsentMessages(10)
	if err != nil {
		t.Fatalf("GetUnsentMessages failed: %v", err)
	}
	if len(unsent) != 1 || unsent[0].ID != msg.ID {
		t.Fatalf("unsent = %+v", unsent)
	}

	if err := repo.MarkMessageSent(msg.ID); err != nil {
		t.Fatalf("MarkMessageSent failed: %v", err)
	}
	unsent, _ = repo.GetUnsentMessages(10)
	if len(unsent) != 0 {
		t.Errorf("message still unsent after MarkMessageSent: %+v", unsent)
	}
}

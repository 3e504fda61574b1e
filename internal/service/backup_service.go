package service

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"ecolearn/internal/database"
)

// BackupData represents the complete database backup structure
type BackupData struct {
	Version    string             `json:"version"`
	ExportedAt time.Time          `json:"exported_at"`
	State      []StateEntryBackup `json:"state"`
	Messages   []MessageBackup    `json:"contact_messages"`
}

// StateEntryBackup is one app_state row for backup. Student progress and
// owned items live here as JSON values.
type StateEntryBackup struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MessageBackup is one contact message for backup
type MessageBackup struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Sent      bool      `json:"sent"`
	CreatedAt time.Time `json:"created_at"`
}

// BackupService handles database backup and restore operations
type BackupService struct {
	db *database.DB
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB) *BackupService {
	return &BackupService{db: db}
}

// Export creates a complete backup of the database to a file
func (s *BackupService) Export(outputPath string) error {
	log.Println("Starting database export...")

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := s.ExportToWriter(file); err != nil {
		return err
	}

	log.Printf("Database exported successfully to %s", outputPath)
	return nil
}

// ExportToWriter exports the database to an io.Writer (useful for HTTP responses)
func (s *BackupService) ExportToWriter(w io.Writer) error {
	backup := &BackupData{
		Version:    "1.0",
		ExportedAt: time.Now(),
	}

	if err := s.exportState(backup); err != nil {
		return fmt.Errorf("failed to export state: %w", err)
	}
	if err := s.exportMessages(backup); err != nil {
		return fmt.Errorf("failed to export contact messages: %w", err)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(backup)
}

// Import restores a database from a backup file
func (s *BackupService) Import(inputPath string) error {
	log.Printf("Starting database import from %s...", inputPath)

	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return s.ImportFromReader(file)
}

// ImportFromReader restores a database from a backup reader
func (s *BackupService) ImportFromReader(reader io.Reader) error {
	var backup BackupData
	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}

	log.Printf("Backup version: %s, exported at: %s", backup.Version, backup.ExportedAt)

	if err := s.importState(backup.State); err != nil {
		return fmt.Errorf("failed to import state: %w", err)
	}
	if err := s.importMessages(backup.Messages); err != nil {
		return fmt.Errorf("failed to import contact messages: %w", err)
	}

	log.Println("Database import completed successfully")
	return nil
}

func (s *BackupService) exportState(backup *BackupData) error {
	query := "SELECT state_key, state_value, updated_at FROM app_state ORDER BY state_key"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var e StateEntryBackup
		if err := rows.Scan(&e.Key, &e.Value, &e.UpdatedAt); err != nil {
			return err
		}
		backup.State = append(backup.State, e)
	}
	return rows.Err()
}

func (s *BackupService) exportMessages(backup *BackupData) error {
	query := "SELECT id, name, email, subject, body, sent, created_at FROM contact_messages ORDER BY created_at"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var m MessageBackup
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body, &m.Sent, &m.CreatedAt); err != nil {
			return err
		}
		backup.Messages = append(backup.Messages, m)
	}
	return rows.Err()
}

func (s *BackupService) importState(entries []StateEntryBackup) error {
	log.Printf("Importing %d state entries...", len(entries))
	for _, e := range entries {
		// Upsert so importing over a seeded database replaces the defaults
		_, err := s.db.Exec(s.db.Dialect.UpsertStateQuery(), e.Key, e.Value)
		if err != nil {
			return fmt.Errorf("failed to import state entry %s: %w", e.Key, err)
		}
	}
	return nil
}

func (s *BackupService) importMessages(messages []MessageBackup) error {
	log.Printf("Importing %d contact messages...", len(messages))
	for _, m := range messages {
		query := "INSERT INTO contact_messages (id, name, email, subject, body, sent, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)"
		_, err := s.db.Exec(query, m.ID, m.Name, m.Email, m.Subject, m.Body, m.Sent, m.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to import contact message %s: %w", m.ID, err)
		}
	}
	return nil
}

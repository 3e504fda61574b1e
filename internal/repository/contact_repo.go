package repository

import (
	"fmt"

	"ecolearn/internal/database"
	"ecolearn/internal/models"
)

// ContactRepository handles database operations for contact messages
type ContactRepository struct {
	db *database.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *database.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// CreateMessage stores a submitted contact message
func (r *ContactRepository) CreateMessage(msg *models.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, name, email, subject, body, sent, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query, msg.ID, msg.Name, msg.Email, msg.Subject, msg.Body, msg.Sent, msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

// MarkMessageSent records that a message was delivered by email
func (r *ContactRepository) MarkMessageSent(messageID string) error {
	_, err := r.db.Exec("UPDATE contact_messages SET sent = ? WHERE id = ?", true, messageID)
	if err != nil {
		return fmt.Errorf("failed to mark message sent: %w", err)
	}
	return nil
}

// GetUnsentMessages retrieves messages that have not been delivered yet
func (r *ContactRepository) GetUnsentMessages(limit int) ([]models.ContactMessage, error) {
	query := `
		SELECT id, name, email, subject, body, sent, created_at
		FROM contact_messages
		WHERE sent = ?
		ORDER BY created_at ASC
		LIMIT ?
	`
	rows, err := r.db.Query(query, false, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query contact messages: %w", err)
	}
	defer rows.Close()

	var messages []models.ContactMessage
	for rows.Next() {
		var msg models.ContactMessage
		if err := rows.Scan(
			&msg.ID,
			&msg.Name,
			&msg.Email,
			&msg.Subject,
			&msg.Body,
			&msg.Sent,
			&msg.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		messages = append(messages, msg)
	}

	return messages, rows.Err()
}

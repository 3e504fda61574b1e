package repository

import (
	"database/sql"
	"fmt"

	"ecolearn/internal/database"
)

// StateRepository persists the progression key-value state. It satisfies
// the progression store's StateStore port.
type StateRepository struct {
	db *database.DB
}

// NewStateRepository creates a new state repository
func NewStateRepository(db *database.DB) *StateRepository {
	return &StateRepository{db: db}
}

// Get reads the value stored under key; ok is false when the key is absent
func (r *StateRepository) Get(key string) (string, bool, error) {
	var value string
	err := r.db.QueryRow("SELECT state_value FROM app_state WHERE state_key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read state %s: %w", key, err)
	}
	return value, true, nil
}

// Set writes the value under key, inserting or replacing as needed
func (r *StateRepository) Set(key, value string) error {
	if _, err := r.db.Exec(r.db.Dialect.UpsertStateQuery(), key, value); err != nil {
		return fmt.Errorf("failed to write state %s: %w", key, err)
	}
	return nil
}

package database

import (
	"fmt"

	"github.com/example/frasebot/pkg/models"
	"github.com/jmoiron/sqlx"
)

// HistoryRepository handles database operations for the interaction history
type HistoryRepository struct {
	db *sqlx.DB
}

// NewHistoryRepository creates a new repository instance
func NewHistoryRepository(db *sqlx.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// GetRecent returns up to limit entries, newest first
func (r *HistoryRepository) GetRecent(limit int) ([]models.HistoryEntry, error) {
	var entries []models.HistoryEntry
	err := r.db.Select(&entries, `
		SELECT timestamp, session_id, phrase_id, source_text, target_text,
		       user_answer, correct, skipped, level
		FROM history_entries
		ORDER BY id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %v", err)
	}
	return entries, nil
}

// Insert appends one entry
func (r *HistoryRepository) Insert(entry *models.HistoryEntry) error {
	_, err := r.db.Exec(`
		INSERT INTO history_entries (
			timestamp, session_id, phrase_id, source_text, target_text,
			user_answer, correct, skipped, level
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		entry.Timestamp,
		entry.SessionID,
		entry.PhraseID,
		entry.SourceText,
		entry.TargetText,
		entry.UserAnswer,
		entry.Correct,
		entry.Skipped,
		entry.Level,
	)
	if err != nil {
		return fmt.Errorf("failed to insert history entry: %v", err)
	}
	return nil
}

// Trim drops everything but the newest max entries
func (r *HistoryRepository) Trim(max int) error {
	_, err := r.db.Exec(`
		DELETE FROM history_entries
		WHERE id NOT IN (SELECT id FROM history_entries ORDER BY id DESC LIMIT $1)`,
		max,
	)
	if err != nil {
		return fmt.Errorf("failed to trim history: %v", err)
	}
	return nil
}

// DeleteAll removes every entry
func (r *HistoryRepository) DeleteAll() error {
	if _, err := r.db.Exec("DELETE FROM history_entries"); err != nil {
		return fmt.Errorf("failed to delete history: %v", err)
	}
	return nil
}

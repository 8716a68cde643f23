package database

import (
	"fmt"

	"github.com/example/frasebot/pkg/models"
	"github.com/jmoiron/sqlx"
)

// PhraseRepository handles database operations for the phrase catalog
type PhraseRepository struct {
	db *sqlx.DB
}

// NewPhraseRepository creates a new repository instance
func NewPhraseRepository(db *sqlx.DB) *PhraseRepository {
	return &PhraseRepository{db: db}
}

// GetAll returns the full catalog in stable id order
func (r *PhraseRepository) GetAll() ([]models.Phrase, error) {
	var phrases []models.Phrase
	err := r.db.Select(&phrases, "SELECT id, source_text, target_text, level FROM phrases ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to get phrases: %v", err)
	}
	return phrases, nil
}

// Count returns the number of phrases in the catalog
func (r *PhraseRepository) Count() (int, error) {
	var count int
	if err := r.db.Get(&count, "SELECT COUNT(*) FROM phrases"); err != nil {
		return 0, fmt.Errorf("failed to count phrases: %v", err)
	}
	return count, nil
}

// Upsert inserts a phrase or replaces the texts of an existing one
func (r *PhraseRepository) Upsert(phrase *models.Phrase) error {
	_, err := r.db.Exec(`
		INSERT INTO phrases (id, source_text, target_text, level)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			source_text = EXCLUDED.source_text,
			target_text = EXCLUDED.target_text,
			level = EXCLUDED.level`,
		phrase.ID, phrase.SourceText, phrase.TargetText, phrase.Level,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert phrase %d: %v", phrase.ID, err)
	}
	return nil
}

// DeleteAll removes every phrase
func (r *PhraseRepository) DeleteAll() error {
	if _, err := r.db.Exec("DELETE FROM phrases"); err != nil {
		return fmt.Errorf("failed to delete phrases: %v", err)
	}
	return nil
}

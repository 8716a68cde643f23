package database

import (
	"fmt"

	"github.com/example/frasebot/pkg/models"
	"github.com/jmoiron/sqlx"
)

// RecordRepository handles database operations for review records
type RecordRepository struct {
	db *sqlx.DB
}

// NewRecordRepository creates a new repository instance
func NewRecordRepository(db *sqlx.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// GetAll returns every persisted record keyed by phrase id
func (r *RecordRepository) GetAll() (map[int]*models.ReviewRecord, error) {
	var records []models.ReviewRecord
	err := r.db.Select(&records, `
		SELECT phrase_id, repetitions, ease, interval_days, lapses,
		       correct_count, wrong_count, due_date, last_answered_at
		FROM review_records
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get review records: %v", err)
	}

	out := make(map[int]*models.ReviewRecord, len(records))
	for i := range records {
		out[records[i].PhraseID] = &records[i]
	}
	return out, nil
}

// Upsert creates or overwrites the record for its phrase
func (r *RecordRepository) Upsert(rec *models.ReviewRecord) error {
	_, err := r.db.Exec(`
		INSERT INTO review_records (
			phrase_id, repetitions, ease, interval_days, lapses,
			correct_count, wrong_count, due_date, last_answered_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (phrase_id) DO UPDATE SET
			repetitions = EXCLUDED.repetitions,
			ease = EXCLUDED.ease,
			interval_days = EXCLUDED.interval_days,
			lapses = EXCLUDED.lapses,
			correct_count = EXCLUDED.correct_count,
			wrong_count = EXCLUDED.wrong_count,
			due_date = EXCLUDED.due_date,
			last_answered_at = EXCLUDED.last_answered_at`,
		rec.PhraseID,
		rec.Repetitions,
		rec.Ease,
		rec.IntervalDays,
		rec.Lapses,
		rec.CorrectCount,
		rec.WrongCount,
		rec.DueDate,
		rec.LastAnsweredAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert review record %d: %v", rec.PhraseID, err)
	}
	return nil
}

// DeleteAll removes every record
func (r *RecordRepository) DeleteAll() error {
	if _, err := r.db.Exec("DELETE FROM review_records"); err != nil {
		return fmt.Errorf("failed to delete review records: %v", err)
	}
	return nil
}

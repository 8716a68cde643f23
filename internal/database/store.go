package database

import (
	"github.com/example/frasebot/internal/history"
	"github.com/example/frasebot/pkg/models"
	"github.com/jmoiron/sqlx"
)

// Store adapts the record and history repositories to the trainer's
// persistence port.
type Store struct {
	records *RecordRepository
	history *HistoryRepository
}

// NewStore creates a store over an open database connection
func NewStore(db *sqlx.DB) *Store {
	return &Store{
		records: NewRecordRepository(db),
		history: NewHistoryRepository(db),
	}
}

// LoadRecords returns all persisted review records
func (s *Store) LoadRecords() (map[int]*models.ReviewRecord, error) {
	return s.records.GetAll()
}

// SaveRecord persists one review record
func (s *Store) SaveRecord(rec *models.ReviewRecord) error {
	return s.records.Upsert(rec)
}

// LoadHistory returns up to limit entries, newest first
func (s *Store) LoadHistory(limit int) ([]models.HistoryEntry, error) {
	return s.history.GetRecent(limit)
}

// AppendHistory persists one entry and keeps the table at the log cap
func (s *Store) AppendHistory(entry models.HistoryEntry) error {
	if err := s.history.Insert(&entry); err != nil {
		return err
	}
	return s.history.Trim(history.MaxEntries)
}

// Reset clears all persisted trainer state
func (s *Store) Reset() error {
	if err := s.records.DeleteAll(); err != nil {
		return err
	}
	return s.history.DeleteAll()
}

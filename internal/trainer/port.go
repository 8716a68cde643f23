package trainer

import "github.com/example/frasebot/pkg/models"

// Store is the persistence port for a trainer session. Implementations own
// durability only; the trainer treats load errors as absent state and write
// errors as non-fatal.
type Store interface {
	// LoadRecords returns all persisted review records keyed by phrase id
	LoadRecords() (map[int]*models.ReviewRecord, error)
	// SaveRecord persists one record, overwriting any previous version
	SaveRecord(rec *models.ReviewRecord) error
	// LoadHistory returns up to limit history entries, newest first
	LoadHistory(limit int) ([]models.HistoryEntry, error)
	// AppendHistory persists one history entry
	AppendHistory(entry models.HistoryEntry) error
	// Reset clears all persisted records and history
	Reset() error
}

// MemoryStore is an in-memory Store for tests and throwaway sessions
type MemoryStore struct {
	records map[int]*models.ReviewRecord
	history []models.HistoryEntry
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[int]*models.ReviewRecord)}
}

// LoadRecords returns copies of the stored records
func (m *MemoryStore) LoadRecords() (map[int]*models.ReviewRecord, error) {
	out := make(map[int]*models.ReviewRecord, len(m.records))
	for id, rec := range m.records {
		c := *rec
		out[id] = &c
	}
	return out, nil
}

// SaveRecord stores a copy of the record
func (m *MemoryStore) SaveRecord(rec *models.ReviewRecord) error {
	c := *rec
	m.records[rec.PhraseID] = &c
	return nil
}

// LoadHistory returns up to limit entries, newest first
func (m *MemoryStore) LoadHistory(limit int) ([]models.HistoryEntry, error) {
	n := len(m.history)
	if limit > 0 && n > limit {
		n = limit
	}
	out := make([]models.HistoryEntry, n)
	copy(out, m.history[:n])
	return out, nil
}

// AppendHistory prepends the entry, keeping newest-first order
func (m *MemoryStore) AppendHistory(entry models.HistoryEntry) error {
	m.history = append([]models.HistoryEntry{entry}, m.history...)
	return nil
}

// Reset drops everything
func (m *MemoryStore) Reset() error {
	m.records = make(map[int]*models.ReviewRecord)
	m.history = nil
	return nil
}

package history

import (
	"strings"

	"github.com/example/frasebot/pkg/models"
)

// MaxEntries caps the log at the most recent interactions
const MaxEntries = 500

// Log is a bounded, newest-first record of past interactions. Entries are
// never mutated; the only removal path is truncation at the cap or a full
// reset.
type Log struct {
	entries []models.HistoryEntry
}

// New creates an empty log
func New() *Log {
	return &Log{}
}

// Restore builds a log from persisted entries, newest first. Anything beyond
// the cap is dropped.
func Restore(entries []models.HistoryEntry) *Log {
	l := &Log{entries: append([]models.HistoryEntry(nil), entries...)}
	if len(l.entries) > MaxEntries {
		l.entries = l.entries[:MaxEntries]
	}
	return l
}

// Append inserts the entry at the front and truncates to the cap
func (l *Log) Append(entry models.HistoryEntry) {
	l.entries = append([]models.HistoryEntry{entry}, l.entries...)
	if len(l.entries) > MaxEntries {
		l.entries = l.entries[:MaxEntries]
	}
}

// Entries returns a copy of the log, newest first
func (l *Log) Entries() []models.HistoryEntry {
	out := make([]models.HistoryEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of stored entries
func (l *Log) Len() int {
	return len(l.entries)
}

// DailyStats tallies the answers recorded on the given calendar date, matched
// by timestamp date-prefix. Skipped phrases are not answers and stay out of
// the tally.
func (l *Log) DailyStats(date string) models.DailyStats {
	var stats models.DailyStats
	for _, e := range l.entries {
		if e.Skipped || !strings.HasPrefix(e.Timestamp, date) {
			continue
		}
		if e.Correct {
			stats.Correct++
		} else {
			stats.Wrong++
		}
	}
	return stats
}

// Clear drops every entry
func (l *Log) Clear() {
	l.entries = nil
}

package history

import (
	"fmt"
	"testing"

	"github.com/example/frasebot/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendNewestFirst(t *testing.T) {
	l := New()
	for i := 1; i <= 3; i++ {
		l.Append(models.HistoryEntry{PhraseID: i, Timestamp: fmt.Sprintf("2026-08-30T10:0%d:00Z", i)})
	}

	entries := l.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, 3, entries[0].PhraseID)
	assert.Equal(t, 2, entries[1].PhraseID)
	assert.Equal(t, 1, entries[2].PhraseID)
}

func TestAppendTruncatesAtCap(t *testing.T) {
	l := New()
	for i := 0; i < MaxEntries+50; i++ {
		l.Append(models.HistoryEntry{PhraseID: i})
	}

	assert.Equal(t, MaxEntries, l.Len())
	// The newest entry survives, the oldest ones are gone
	entries := l.Entries()
	assert.Equal(t, MaxEntries+49, entries[0].PhraseID)
	assert.Equal(t, 50, entries[len(entries)-1].PhraseID)
}

func TestEntriesReturnsCopy(t *testing.T) {
	l := New()
	l.Append(models.HistoryEntry{PhraseID: 1})

	entries := l.Entries()
	entries[0].PhraseID = 99

	assert.Equal(t, 1, l.Entries()[0].PhraseID)
}

func TestRestoreHonorsCap(t *testing.T) {
	entries := make([]models.HistoryEntry, MaxEntries+10)
	for i := range entries {
		entries[i] = models.HistoryEntry{PhraseID: i}
	}

	l := Restore(entries)
	assert.Equal(t, MaxEntries, l.Len())
	assert.Equal(t, 0, l.Entries()[0].PhraseID, "restore keeps the given order")
}

func TestDailyStats(t *testing.T) {
	l := New()
	l.Append(models.HistoryEntry{Timestamp: "2026-08-30T09:00:00Z", Correct: true})
	l.Append(models.HistoryEntry{Timestamp: "2026-08-30T10:00:00Z", Correct: false})
	l.Append(models.HistoryEntry{Timestamp: "2026-08-30T11:00:00Z", Correct: true})
	l.Append(models.HistoryEntry{Timestamp: "2026-08-30T12:00:00Z", Skipped: true})
	l.Append(models.HistoryEntry{Timestamp: "2026-08-29T09:00:00Z", Correct: true})

	stats := l.DailyStats("2026-08-30")
	assert.Equal(t, 2, stats.Correct)
	assert.Equal(t, 1, stats.Wrong, "skips are not wrong answers")

	assert.Equal(t, models.DailyStats{Correct: 1}, l.DailyStats("2026-08-29"))
	assert.Equal(t, models.DailyStats{}, l.DailyStats("2026-01-01"))
}

func TestClear(t *testing.T) {
	l := New()
	l.Append(models.HistoryEntry{PhraseID: 1})
	l.Clear()
	assert.Zero(t, l.Len())
}

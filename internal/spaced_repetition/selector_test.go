package spaced_repetition

import (
	"testing"

	"github.com/example/frasebot/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []models.Phrase {
	return []models.Phrase{
		{ID: 1, SourceText: "Hola", TargetText: "Olá", Level: "A1"},
		{ID: 2, SourceText: "Estoy cansado", TargetText: "Estou cansado", Level: "A2"},
		{ID: 3, SourceText: "¿Qué hora es?", TargetText: "Que horas são?", Level: "A2"},
		{ID: 4, SourceText: "Ojalá llueva café", TargetText: "Tomara que chova café", Level: "B2"},
	}
}

func TestWeight(t *testing.T) {
	tests := []struct {
		name     string
		rec      models.ReviewRecord
		expected int
	}{
		{"fresh record", models.ReviewRecord{IntervalDays: 0}, 3},
		{"established record", models.ReviewRecord{IntervalDays: 5}, 1},
		{"lapsed and reset", models.ReviewRecord{Lapses: 2, IntervalDays: 0}, 9},
		{"lapsed but progressing", models.ReviewRecord{Lapses: 1, IntervalDays: 3}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := tt.rec
			assert.Equal(t, tt.expected, Weight(&rec))
		})
	}
}

func TestSelectNextEmptyCatalog(t *testing.T) {
	s := NewSelectorWithSeed(1)
	_, ok := s.SelectNext(nil, map[int]*models.ReviewRecord{}, "2026-08-30", "A1")
	assert.False(t, ok)
}

func TestSelectNextCreatesMissingRecords(t *testing.T) {
	s := NewSelectorWithSeed(1)
	records := make(map[int]*models.ReviewRecord)

	_, ok := s.SelectNext(testCatalog(), records, "2026-08-30", "A1")

	require.True(t, ok)
	assert.Len(t, records, 4, "every phrase gets a lazily created record")
	for _, rec := range records {
		assert.Equal(t, DefaultEase, rec.Ease)
	}
}

func TestSelectNextOnlyDuePhrases(t *testing.T) {
	s := NewSelectorWithSeed(42)
	catalog := testCatalog()
	today := "2026-08-30"
	records := map[int]*models.ReviewRecord{
		1: {PhraseID: 1, DueDate: "2026-09-10", IntervalDays: 11},
		2: {PhraseID: 2, DueDate: "2026-08-30", IntervalDays: 3},
		3: {PhraseID: 3, DueDate: "2026-09-01", IntervalDays: 2},
		4: {PhraseID: 4, DueDate: "2026-08-01", IntervalDays: 1},
	}

	for i := 0; i < 200; i++ {
		p, ok := s.SelectNext(catalog, records, today, "A1")
		require.True(t, ok)
		assert.Contains(t, []int{2, 4}, p.ID, "only due phrases may be selected")
	}
}

func TestSelectNextFallsBackToLevelPool(t *testing.T) {
	s := NewSelectorWithSeed(7)
	catalog := testCatalog()
	today := "2026-08-30"

	// Nothing due
	records := make(map[int]*models.ReviewRecord)
	for _, p := range catalog {
		records[p.ID] = &models.ReviewRecord{PhraseID: p.ID, DueDate: "2026-09-15", IntervalDays: 16}
	}

	for i := 0; i < 100; i++ {
		p, ok := s.SelectNext(catalog, records, today, "A2")
		require.True(t, ok)
		assert.Contains(t, []int{2, 3}, p.ID, "fallback draws from the adaptive level pool")
	}
}

func TestSelectNextFallsBackToWholeCatalog(t *testing.T) {
	s := NewSelectorWithSeed(7)
	catalog := testCatalog()
	today := "2026-08-30"

	records := make(map[int]*models.ReviewRecord)
	for _, p := range catalog {
		records[p.ID] = &models.ReviewRecord{PhraseID: p.ID, DueDate: "2026-09-15", IntervalDays: 16}
	}

	// No phrase carries level C1, so the pool widens to the whole catalog
	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		p, ok := s.SelectNext(catalog, records, today, "C1")
		require.True(t, ok)
		seen[p.ID] = true
	}
	assert.Len(t, seen, 4)
}

func TestSelectNextWeightedConvergence(t *testing.T) {
	s := NewSelectorWithSeed(12345)
	catalog := []models.Phrase{
		{ID: 1, SourceText: "a", TargetText: "a"},
		{ID: 2, SourceText: "b", TargetText: "b"},
	}
	today := "2026-08-30"
	records := map[int]*models.ReviewRecord{
		// Weight 1 versus weight 7: expect roughly a 1:7 split
		1: {PhraseID: 1, DueDate: today, IntervalDays: 5},
		2: {PhraseID: 2, DueDate: today, IntervalDays: 5, Lapses: 2},
	}
	require.Equal(t, 1, Weight(records[1]))
	require.Equal(t, 7, Weight(records[2]))

	const trials = 20000
	counts := map[int]int{}
	for i := 0; i < trials; i++ {
		p, ok := s.SelectNext(catalog, records, today, "")
		require.True(t, ok)
		counts[p.ID]++
	}

	share := float64(counts[2]) / trials
	assert.InDelta(t, 7.0/8.0, share, 0.02, "selection frequency should track the weights")
}

func TestEarliestDue(t *testing.T) {
	catalog := testCatalog()
	records := map[int]*models.ReviewRecord{
		1: {PhraseID: 1, DueDate: "2026-09-10"},
		2: {PhraseID: 2, DueDate: "2026-09-02"},
		3: {PhraseID: 3, DueDate: "2026-09-02"},
		4: {PhraseID: 4, DueDate: "2026-09-05"},
	}

	p, ok := EarliestDue(catalog, records, "2026-08-30")
	require.True(t, ok)
	assert.Equal(t, 2, p.ID, "catalog order breaks the tie between phrases 2 and 3")

	_, ok = EarliestDue(nil, records, "2026-08-30")
	assert.False(t, ok)
}

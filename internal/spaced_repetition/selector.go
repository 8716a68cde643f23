package spaced_repetition

import (
	"math/rand"
	"time"

	"github.com/example/frasebot/pkg/models"
)

// Selector picks the next phrase to present. It owns its random source so
// tests can seed it deterministically.
type Selector struct {
	rng *rand.Rand
}

// NewSelector creates a selector seeded from the current time
func NewSelector() *Selector {
	return NewSelectorWithSeed(time.Now().UnixNano())
}

// NewSelectorWithSeed creates a selector with a fixed seed
func NewSelectorWithSeed(seed int64) *Selector {
	return &Selector{rng: rand.New(rand.NewSource(seed))}
}

// Weight returns the draw weight of a due record. Every lapse permanently
// raises the weight; a zero interval marks a fresh or just-failed phrase.
func Weight(rec *models.ReviewRecord) int {
	w := 1 + rec.Lapses*3
	if rec.IntervalDays == 0 {
		w += 2
	}
	return w
}

// SelectNext returns the next phrase to present. Due phrases (dueDate <= today)
// are drawn by weighted random sampling in stable catalog order; when nothing
// is due the draw is uniform over the phrases at the given level, or over the
// whole catalog when that pool is empty. Records are lazily created for
// phrases seen for the first time. Returns false only for an empty catalog.
func (s *Selector) SelectNext(catalog []models.Phrase, records map[int]*models.ReviewRecord, today string, level string) (models.Phrase, bool) {
	if len(catalog) == 0 {
		return models.Phrase{}, false
	}

	var due []models.Phrase
	var weights []int
	total := 0
	for _, p := range catalog {
		rec := EnsureRecord(records, p.ID, today)
		// ISO dates compare correctly as strings
		if rec.DueDate <= today {
			w := Weight(rec)
			due = append(due, p)
			weights = append(weights, w)
			total += w
		}
	}

	if len(due) == 0 {
		pool := make([]models.Phrase, 0, len(catalog))
		for _, p := range catalog {
			if p.Level == level {
				pool = append(pool, p)
			}
		}
		if len(pool) == 0 {
			pool = catalog
		}
		return pool[s.rng.Intn(len(pool))], true
	}

	r := s.rng.Float64() * float64(total)
	for i, p := range due {
		r -= float64(weights[i])
		if r <= 0 {
			return p, true
		}
	}

	// Floating-point leftovers land on the last due phrase
	return due[len(due)-1], true
}

// EarliestDue returns the phrase whose record has the earliest due date, with
// catalog order breaking ties. Used by callers that need a deterministic pick
// regardless of randomness, such as the due-preview in the stats view.
func EarliestDue(catalog []models.Phrase, records map[int]*models.ReviewRecord, today string) (models.Phrase, bool) {
	if len(catalog) == 0 {
		return models.Phrase{}, false
	}
	best := catalog[0]
	bestDue := EnsureRecord(records, best.ID, today).DueDate
	for _, p := range catalog[1:] {
		if due := EnsureRecord(records, p.ID, today).DueDate; due < bestDue {
			best = p
			bestDue = due
		}
	}
	return best, true
}

package spaced_repetition

import (
	"math"
	"time"

	"github.com/example/frasebot/pkg/models"
)

// DefaultEase is the ease factor assigned to fresh records
const DefaultEase = 2.5

// SM2 implements a simplified SM-2 style progression: the first two successful
// repetitions use fixed intervals to avoid runaway growth from a low initial
// ease, later successes multiply the interval by the ease factor, and any
// failure resets progress to the start of the ladder.
type SM2 struct {
	// Ease never drops below this floor after any update
	EaseFloor float64
	// Ease reward per correct answer
	EaseBonus float64
	// Ease penalty per incorrect answer
	EasePenalty float64
	// Fixed intervals in days for the first two successful repetitions
	FirstInterval  int
	SecondInterval int
}

// NewSM2 creates a new SM2 instance with default settings
func NewSM2() *SM2 {
	return &SM2{
		EaseFloor:      1.3,
		EaseBonus:      0.03,
		EasePenalty:    0.15,
		FirstInterval:  1,
		SecondInterval: 3,
	}
}

// NewRecord creates the default review record for a phrase, due immediately
func NewRecord(phraseID int, today string) *models.ReviewRecord {
	return &models.ReviewRecord{
		PhraseID: phraseID,
		Ease:     DefaultEase,
		DueDate:  today,
	}
}

// EnsureRecord returns the record for a phrase, lazily creating the default
// record on first reference. Idempotent.
func EnsureRecord(records map[int]*models.ReviewRecord, phraseID int, today string) *models.ReviewRecord {
	if rec, ok := records[phraseID]; ok {
		return rec
	}
	rec := NewRecord(phraseID, today)
	records[phraseID] = rec
	return rec
}

// Process updates a record in place after an answer. today is a calendar date
// in models.DateLayout form; now stamps LastAnsweredAt.
func (sm *SM2) Process(rec *models.ReviewRecord, correct bool, today string, now time.Time) {
	if correct {
		rec.Repetitions++
		rec.CorrectCount++
		switch rec.Repetitions {
		case 1:
			rec.IntervalDays = sm.FirstInterval
		case 2:
			rec.IntervalDays = sm.SecondInterval
		default:
			// The pre-update ease drives the growth
			rec.IntervalDays = int(math.Round(float64(rec.IntervalDays) * rec.Ease))
		}
		rec.Ease += sm.EaseBonus
	} else {
		rec.Lapses++
		rec.WrongCount++
		rec.Repetitions = 0
		rec.IntervalDays = 0
		rec.Ease -= sm.EasePenalty
	}

	if rec.Ease < sm.EaseFloor {
		rec.Ease = sm.EaseFloor
	}

	rec.DueDate = AddDays(today, rec.IntervalDays)
	rec.LastAnsweredAt = now.Format(time.RFC3339)
}

// AddDays shifts a calendar date by the given number of days. An unparsable
// date falls back to the current day so scheduling can always proceed.
func AddDays(date string, days int) string {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		t = time.Now()
	}
	return t.AddDate(0, 0, days).Format(models.DateLayout)
}

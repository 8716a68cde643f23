package models

// DateLayout is the calendar date format used for due dates and daily statistics
const DateLayout = "2006-01-02"

// ReviewRecord tracks the review schedule of a single phrase using the SM-2 algorithm
type ReviewRecord struct {
	PhraseID       int     `json:"phrase_id" db:"phrase_id"`
	Repetitions    int     `json:"repetitions" db:"repetitions"`       // Successful repetitions since the last lapse
	Ease           float64 `json:"ease" db:"ease"`                     // SM-2 ease factor, floored at 1.3
	IntervalDays   int     `json:"interval_days" db:"interval_days"`   // Current interval in days
	Lapses         int     `json:"lapses" db:"lapses"`                 // Total incorrect answers, never decreases
	CorrectCount   int     `json:"correct_count" db:"correct_count"`
	WrongCount     int     `json:"wrong_count" db:"wrong_count"`
	DueDate        string  `json:"due_date" db:"due_date"`             // Calendar date in DateLayout form
	LastAnsweredAt string  `json:"last_answered_at,omitempty" db:"last_answered_at"` // RFC3339, empty until first answer
}

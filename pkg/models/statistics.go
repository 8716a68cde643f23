package models

// DailyStats holds the answer tally for one calendar day
type DailyStats struct {
	Correct int `json:"correct"`
	Wrong   int `json:"wrong"`
}

// SessionStats is a snapshot of the trainer state reported to the presenter
type SessionStats struct {
	DueToday     int        `json:"due_today"`
	TotalPhrases int        `json:"total_phrases"`
	Struggling   int        `json:"struggling"` // Phrases with two or more lapses
	Today        DailyStats `json:"today"`
}

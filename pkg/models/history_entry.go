package models

// HistoryEntry records a single past interaction with a phrase
type HistoryEntry struct {
	Timestamp  string `json:"timestamp" db:"timestamp"` // RFC3339
	SessionID  string `json:"session_id" db:"session_id"`
	PhraseID   int    `json:"phrase_id" db:"phrase_id"`
	SourceText string `json:"source_text" db:"source_text"`
	TargetText string `json:"target_text" db:"target_text"`
	UserAnswer string `json:"user_answer,omitempty" db:"user_answer"`
	Correct    bool   `json:"correct" db:"correct"`
	Skipped    bool   `json:"skipped" db:"skipped"`
	Level      string `json:"level,omitempty" db:"level"`
}

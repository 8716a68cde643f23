package models

// Phrase represents a source-language sentence to be translated
type Phrase struct {
	ID         int    `json:"linha" db:"id"`                // Stable line index from the dataset
	SourceText string `json:"esp" db:"source_text"`         // Sentence shown to the learner
	TargetText string `json:"ptbr" db:"target_text"`        // Expected translation
	Level      string `json:"nivel,omitempty" db:"level"`   // CEFR level (A1..C1), may be empty
}

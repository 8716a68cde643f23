package textmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "lowercases",
			input:    "Estoy CANSADO",
			expected: "estoy cansado",
		},
		{
			name:     "folds accents",
			input:    "¿Cómo estás?",
			expected: "como estas",
		},
		{
			name:     "strips punctuation",
			input:    "¡Hola! ¿Qué tal? (bien, gracias...)",
			expected: "hola que tal bien gracias",
		},
		{
			name:     "collapses whitespace",
			input:    "  estoy \t muy \n cansado  ",
			expected: "estoy muy cansado",
		},
		{
			name:     "keeps enye distinct after folding marks",
			input:    "mañana",
			expected: "manana",
		},
		{
			name:     "punctuation only",
			input:    "¿?!.,;:-()",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"¿Cómo ESTÁS?",
		"  a   b\tc ",
		"já não sei",
		"",
		"Ég tala íslensku",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", in)
	}
}

func TestNormalizeAccentAndCaseInsensitive(t *testing.T) {
	assert.Equal(t, Normalize("como estas"), Normalize("¿Cómo ESTÁS?"))
}

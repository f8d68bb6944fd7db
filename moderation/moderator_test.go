package moderation

import (
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const replacementChar = '*'

// The dictionary avoids partial collisions (e.g., "he" inside "The")
func TestModerator_Censor(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	dictionary := []string{"spam", "scam", "phishing"}
	mod, err := NewModerator(dictionary, replacementChar, log)
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
		words    []string
	}{
		{
			name:     "Simple word and space preservation",
			input:    "This is spam for sure",
			expected: "This is **** for sure",
			words:    []string{"spam"},
		},
		{
			name:     "Multiple occurrences",
			input:    "spam spam spam",
			expected: "**** **** ****",
			words:    []string{"spam", "spam", "spam"},
		},
		{
			name:     "Leet speak and internal punctuation",
			input:    "Look: 5.c.4.m !",
			expected: "Look: ******* !",
			words:    []string{"scam"},
		},
		{
			name:     "Uppercase",
			input:    "PHISHING attempt",
			expected: "******** attempt",
			words:    []string{"phishing"},
		},
		{
			name:     "Accents are kept",
			input:    "Un été sans spam",
			expected: "Un été sans ****",
			words:    []string{"spam"},
		},
		{
			name:     "Nothing to censor",
			input:    "hello everyone",
			expected: "hello everyone",
			words:    nil,
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
			words:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			content, words := mod.Censor(tt.input)
			req.Equal(tt.expected, content)
			req.Equal(tt.words, words)
		})
	}
}

func TestModerator_NoiseOnlyDictionary(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given a dictionary that normalizes to nothing
	mod, err := NewModerator([]string{"...", ",,,", ""}, replacementChar, log)
	req.NoError(err)

	// Then nothing is ever censored
	content, words := mod.Censor("Hello ... spam")
	req.Equal("Hello ... spam", content)
	req.Nil(words)
}

package classifier

import (
	"strings"
	"testing"
	"unicode/utf8"

	"mailclassifier-backend/internal/classify/domain"
)

func TestTruncateKeepsRuneBoundaries(t *testing.T) {
	tests := []struct {
		name string
		s    string
		max  int
		want string
	}{
		{"short input untouched", "orçamento", 100, "orçamento"},
		{"cut on ascii boundary", "abcdef", 3, "abc"},
		// "ç" is two bytes starting at index 3; a byte-wise cut at 4
		// would split it.
		{"cut backs off a split rune", "orçamento", 4, "or"},
		{"exact boundary kept", "orçamento", 5, "orç"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.s, tt.max)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.s, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q, %d) produced invalid UTF-8", tt.s, tt.max)
			}
		})
	}
}

func TestBuildPromptBodyEndsOnWholeRune(t *testing.T) {
	email := domain.Email{Subject: "Acentos", Body: strings.Repeat("ã", promptBodyLimit)}
	ruleResult := domain.ClassificationResult{
		Category: domain.CategoryUnproductive,
		Extra:    map[string]any{domain.ExtraConfidence: 0.5},
	}

	prompt := buildPrompt(email, ruleResult, Options{})
	if !utf8.ValidString(prompt) {
		t.Error("buildPrompt() produced invalid UTF-8 for an accented body")
	}
}

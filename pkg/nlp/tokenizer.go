// Package nlp provides the text normalization and tokenization used by the
// classification pipeline. Tokenizers are pure: identical input always yields
// identical output and no state is carried between calls.
package nlp

import (
	"regexp"
	"strings"
)

var wordRe = regexp.MustCompile(`[A-Za-zÀ-ÖØ-öø-ÿ0-9_]+`)

var stopwords = map[string]map[string]struct{}{
	"pt": toSet("a", "o", "as", "os", "de", "do", "da", "para", "por", "e", "ou", "que", "com", "um", "uma", "em", "no", "na", "nos", "nas"),
	"en": toSet("a", "the", "to", "for", "and", "or", "of", "in", "on", "is", "are", "be", "with"),
}

func toSet(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Tokenizer splits normalized text into words, dropping stopwords for its
// configured language. Lang "auto" detects the language per input.
type Tokenizer struct {
	lang string
}

func NewTokenizer(lang string) *Tokenizer {
	if lang == "" {
		lang = "auto"
	}
	return &Tokenizer{lang: lang}
}

// Preprocess lowercases and trims raw text.
func (t *Tokenizer) Preprocess(text string) string {
	return strings.TrimSpace(strings.ToLower(text))
}

// Tokenize splits text into alphanumeric runs (accented Latin letters
// included) and removes stopwords. Empty input yields an empty slice.
func (t *Tokenizer) Tokenize(text string) []string {
	words := wordRe.FindAllString(text, -1)
	if len(words) == 0 {
		return []string{}
	}

	lang := t.lang
	if lang == "auto" {
		lang = DetectLang(words)
	}
	stop := stopwords[lang]

	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if _, skip := stop[w]; skip {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// Lang returns the language the tokenizer resolves for the given text,
// honoring a fixed configuration over auto-detection.
func (t *Tokenizer) Lang(text string) string {
	if t.lang != "auto" {
		return t.lang
	}
	return DetectLang(wordRe.FindAllString(strings.ToLower(text), -1))
}

// DetectLang picks the language whose stopword list hits the word sequence
// most often. Portuguese wins ties, matching the primary corpus.
func DetectLang(words []string) string {
	hits := map[string]int{}
	for _, w := range words {
		for lang, stop := range stopwords {
			if _, ok := stop[w]; ok {
				hits[lang]++
			}
		}
	}
	if hits["en"] > hits["pt"] {
		return "en"
	}
	return "pt"
}

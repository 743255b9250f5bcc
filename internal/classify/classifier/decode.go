package classifier

import (
	"encoding/json"
	"fmt"
	"strings"
)

// llmVerdict is the strict three-field output the remote model is instructed
// to produce.
type llmVerdict struct {
	Category string `json:"category"`
	Reason   string `json:"reason"`
	Reply    string `json:"reply"`
}

// decodeVerdict leniently extracts the first brace-delimited JSON object from
// free-form model output and unmarshals it. Surrounding prose, markdown
// fences and trailing objects are tolerated.
func decodeVerdict(text string) (*llmVerdict, error) {
	obj, ok := extractJSONObject(text)
	if !ok {
		return nil, fmt.Errorf("no JSON object found in model output")
	}
	var v llmVerdict
	if err := json.Unmarshal([]byte(obj), &v); err != nil {
		return nil, fmt.Errorf("failed to parse model output: %w", err)
	}
	return &v, nil
}

// extractJSONObject returns the first balanced {...} span in text. Braces
// inside JSON strings are ignored.
func extractJSONObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}

// Category values the model may use for a productive verdict. Anything else
// maps to unproductive, the conservative default.
var productiveSynonyms = map[string]struct{}{
	"productive": {},
	"produtivo":  {},
	"produtiva":  {},
}

func normalizeCategory(raw string) bool {
	_, ok := productiveSynonyms[strings.ToLower(strings.TrimSpace(raw))]
	return ok
}

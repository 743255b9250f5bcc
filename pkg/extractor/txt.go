package extractor

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrUnsupported rejects uploads with an extension no extractor handles.
var ErrUnsupported = errors.New("supported files: .pdf, .txt or .eml")

// TxtExtractor decodes plain text uploads, assuming UTF-8 with a Latin-1
// fallback for legacy exports.
type TxtExtractor struct{}

func (e *TxtExtractor) Extract(raw []byte) (string, error) {
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	var b strings.Builder
	b.Grow(len(raw))
	for _, c := range raw {
		b.WriteRune(rune(c))
	}
	return b.String(), nil
}

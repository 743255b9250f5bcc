// Package extractor converts uploaded files (.txt, .pdf, .eml) into plain
// text for classification.
package extractor

import (
	"path/filepath"
	"strings"
)

// Extractor turns raw file bytes into text.
type Extractor interface {
	Extract(raw []byte) (string, error)
}

// Facade dispatches to the extractor registered for the file extension.
type Facade struct {
	byExt map[string]Extractor
}

func NewFacade() *Facade {
	return &Facade{
		byExt: map[string]Extractor{
			".txt": &TxtExtractor{},
			".pdf": &PdfExtractor{},
			".eml": &EmlExtractor{},
		},
	}
}

// Extract converts an upload into text, keyed on the file extension.
func (f *Facade) Extract(fileName string, raw []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	ex, ok := f.byExt[ext]
	if !ok {
		return "", ErrUnsupported
	}
	return ex.Extract(raw)
}

package extractor

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/emersion/go-message/mail"
)

// EmlExtractor reads the plain text body out of an RFC 822 message upload.
type EmlExtractor struct{}

func (e *EmlExtractor) Extract(raw []byte) (string, error) {
	mr, err := mail.CreateReader(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("invalid EML: %w", err)
	}
	defer mr.Close()

	var fallback string
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to read EML part: %w", err)
		}

		header, ok := part.Header.(*mail.InlineHeader)
		if !ok {
			continue
		}
		contentType, _, _ := header.ContentType()
		body, err := io.ReadAll(part.Body)
		if err != nil {
			continue
		}
		if contentType == "text/plain" {
			return strings.TrimSpace(string(body)), nil
		}
		if fallback == "" {
			fallback = strings.TrimSpace(string(body))
		}
	}

	if fallback == "" {
		return "", fmt.Errorf("no readable text part in EML")
	}
	return fallback, nil
}

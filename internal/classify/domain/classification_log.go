package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Source tags for audit log entries.
const (
	SourceJSON = "json"
	SourceFile = "file"
	SourceIMAP = "imap"
)

// Log status values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BodyExcerptLimit caps the stored body excerpt on every audit log entry.
const BodyExcerptLimit = 500

// JSONMap is a custom type to persist the open extra map as a JSON column in GORM.
type JSONMap map[string]any

// Value implements driver.Valuer
func (m JSONMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONMap{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONMap", value)
	}
	if len(bytes) == 0 {
		*m = JSONMap{}
		return nil
	}
	return json.Unmarshal(bytes, m)
}

// ClassificationLog is the append-only audit record for one classification
// attempt. The core creates each entry exactly once and never updates or
// deletes it. Category, Reason and SuggestedReply are set only on success.
type ClassificationLog struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`

	Source      string `json:"source" gorm:"index;not null"` // json | file | imap
	Subject     string `json:"subject,omitempty"`
	BodyExcerpt string `json:"body_excerpt,omitempty" gorm:"size:500"`
	Sender      string `json:"sender,omitempty"`
	FileName    string `json:"file_name,omitempty"`
	ProfileID   string `json:"profile_id,omitempty" gorm:"index"`

	Category       string `json:"category,omitempty"`
	Reason         string `json:"reason,omitempty"`
	SuggestedReply string `json:"suggested_reply,omitempty"`

	UsedModel        string  `json:"used_model,omitempty"`
	Provider         string  `json:"provider,omitempty"`
	PromptTokens     int     `json:"prompt_tokens,omitempty"`
	CompletionTokens int     `json:"completion_tokens,omitempty"`
	TotalTokens      int     `json:"total_tokens,omitempty"`
	CostUSD          float64 `json:"cost_usd,omitempty"`
	LatencyMs        int64   `json:"latency_ms,omitempty"`

	Status string `json:"status" gorm:"index;not null"` // ok | error
	Error  string `json:"error,omitempty"`

	Extra JSONMap `json:"extra,omitempty" gorm:"type:text"`
}

// Excerpt truncates a body to the audit excerpt limit. The limit counts
// runes, never splitting a multibyte character, so the stored excerpt is
// always valid UTF-8.
func Excerpt(body string) string {
	count := 0
	for i := range body {
		if count == BodyExcerptLimit {
			return body[:i]
		}
		count++
	}
	return body
}

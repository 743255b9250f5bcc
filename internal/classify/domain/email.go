package domain

// Category is the binary classification outcome.
type Category string

const (
	CategoryProductive   Category = "productive"
	CategoryUnproductive Category = "unproductive"
)

// Email is the immutable inbound message value. Body is required; subject and
// sender may be empty.
type Email struct {
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body"`
	Sender  string `json:"sender,omitempty"`
}

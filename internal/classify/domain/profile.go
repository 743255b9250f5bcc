package domain

// DefaultProfileID must always resolve in any profile store.
const DefaultProfileID = "default"

// Profile is a named tuning configuration applied per request: a reply tone
// plus keywords that weigh extra in the productive score.
type Profile struct {
	ID               string   `json:"id"`
	Mood             string   `json:"mood,omitempty"`
	PriorityKeywords []string `json:"priority_keywords,omitempty"`
}

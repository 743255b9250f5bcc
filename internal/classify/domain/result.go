package domain

// Recognized keys of ClassificationResult.Extra. Unknown keys are passed
// through untouched by every component.
const (
	ExtraConfidence   = "confidence"    // rule-based confidence in [0.5, 0.95]
	ExtraIsSpam       = "is_spam"       // spam lexicon dominated decisively
	ExtraLang         = "lang"          // detected/declared language
	ExtraLLM          = "llm"           // true when the remote model produced the category
	ExtraLLMFallback  = "llm_fallback"  // true when escalation failed and the rule result was used
	ExtraRBConfidence = "rb_confidence" // rule-based confidence preserved across escalation
	ExtraMovedTo      = "moved_to"      // destination folder chosen by the sync worker
	ExtraProfileID    = "profile_id"    // profile active during sync classification
)

// ClassificationResult is the immutable outcome of one classification. The
// reply is merged in by the orchestrator through WithReply; nothing mutates a
// result in place.
type ClassificationResult struct {
	Category         Category       `json:"category"`
	Reason           string         `json:"reason"`
	SuggestedReply   string         `json:"suggested_reply"`
	UsedModel        string         `json:"used_model,omitempty"`
	PromptTokens     int            `json:"prompt_tokens,omitempty"`
	CompletionTokens int            `json:"completion_tokens,omitempty"`
	TotalTokens      int            `json:"total_tokens,omitempty"`
	Extra            map[string]any `json:"extra,omitempty"`
}

// WithReply returns a copy of the result carrying the suggested reply.
func (r ClassificationResult) WithReply(reply string) ClassificationResult {
	out := r
	out.SuggestedReply = reply
	return out
}

// WithExtra returns a copy of the result with the given key set, cloning the
// extra map so the receiver stays untouched.
func (r ClassificationResult) WithExtra(key string, value any) ClassificationResult {
	out := r
	out.Extra = cloneExtra(r.Extra)
	out.Extra[key] = value
	return out
}

// Confidence reads the rule-based confidence from the extra map, 0 when absent.
func (r ClassificationResult) Confidence() float64 {
	if v, ok := r.Extra[ExtraConfidence].(float64); ok {
		return v
	}
	return 0
}

// IsSpam reports whether the scorer flagged the message as spam.
func (r ClassificationResult) IsSpam() bool {
	v, _ := r.Extra[ExtraIsSpam].(bool)
	return v
}

func cloneExtra(extra map[string]any) map[string]any {
	out := make(map[string]any, len(extra)+1)
	for k, v := range extra {
		out[k] = v
	}
	return out
}

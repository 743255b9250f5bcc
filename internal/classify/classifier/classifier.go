// Package classifier implements the hybrid email classification pipeline: a
// deterministic rule-based scorer that never fails, and an optional LLM
// escalation gated by the scorer's confidence. Every failure path degrades to
// the rule-based result.
package classifier

import (
	"context"

	"mailclassifier-backend/internal/classify/domain"
)

// Options carries the per-request profile tuning into a classification call.
type Options struct {
	Mood             string
	PriorityKeywords []string
}

// Classifier is the single contract behind which the rule-based and hybrid
// variants are selected at wiring time.
type Classifier interface {
	Classify(ctx context.Context, email domain.Email, tokens []string, opts Options) (domain.ClassificationResult, error)
}

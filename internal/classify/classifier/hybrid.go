package classifier

// Hybrid composes the rule-based scorer with the LLM escalator behind the
// Classifier contract. The gating is deterministic and stateless: nothing is
// shared between calls, so concurrent invocations are safe.

import (
	"context"

	"mailclassifier-backend/internal/classify/domain"
)

// DefaultEscalationThreshold is the rule-based confidence at or above which
// the remote model is never consulted.
const DefaultEscalationThreshold = 0.70

type Hybrid struct {
	rule      *RuleBased
	escalator *LLMEscalator // nil when no remote credential is configured
	threshold float64
}

func NewHybrid(rule *RuleBased, escalator *LLMEscalator, threshold float64) *Hybrid {
	if threshold <= 0 {
		threshold = DefaultEscalationThreshold
	}
	return &Hybrid{rule: rule, escalator: escalator, threshold: threshold}
}

// Classify always computes the rule-based result first and returns it
// unchanged when escalation is not warranted: no backend configured, the
// message is flagged spam, or the confidence already clears the threshold.
func (h *Hybrid) Classify(ctx context.Context, email domain.Email, tokens []string, opts Options) (domain.ClassificationResult, error) {
	ruleResult, _ := h.rule.Classify(ctx, email, tokens, opts)

	if h.escalator == nil || ruleResult.IsSpam() || ruleResult.Confidence() >= h.threshold {
		return ruleResult, nil
	}

	return h.escalator.Escalate(ctx, email, ruleResult, opts), nil
}

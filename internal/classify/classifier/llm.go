package classifier

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"mailclassifier-backend/internal/classify/domain"
	"mailclassifier-backend/pkg/llm"
)

// Sampling settings for classification calls: near-deterministic output,
// bounded length.
const (
	escalationTemperature = 0.1
	escalationMaxTokens   = 300
	promptBodyLimit       = 4000
)

// LLMEscalator wraps the remote completion backend. Escalate never fails:
// transport errors, declared API errors and unparseable output all fall back
// to the rule-based result, tagged with llm_fallback for observability.
type LLMEscalator struct {
	completer llm.Completer
	model     string
}

func NewLLMEscalator(completer llm.Completer, model string) *LLMEscalator {
	return &LLMEscalator{completer: completer, model: model}
}

// Escalate asks the remote model to re-classify the email, using the
// rule-based result both as context for the model and as the fallback.
func (e *LLMEscalator) Escalate(ctx context.Context, email domain.Email, ruleResult domain.ClassificationResult, opts Options) domain.ClassificationResult {
	req := llm.Request{
		Model:       e.model,
		Prompt:      buildPrompt(email, ruleResult, opts),
		Temperature: escalationTemperature,
		MaxTokens:   escalationMaxTokens,
	}

	resp, err := e.completer.Complete(ctx, req)
	if err != nil {
		return ruleResult.WithExtra(domain.ExtraLLMFallback, true)
	}

	verdict, err := decodeVerdict(resp.Text)
	if err != nil {
		return ruleResult.WithExtra(domain.ExtraLLMFallback, true)
	}

	out := ruleResult
	out.Extra = mergeLLMExtra(ruleResult)
	if normalizeCategory(verdict.Category) {
		out.Category = domain.CategoryProductive
		out.SuggestedReply = strings.TrimSpace(verdict.Reply)
	} else {
		out.Category = domain.CategoryUnproductive
		// Hard policy: no reply is ever suggested for non-productive mail,
		// regardless of what the model returned.
		out.SuggestedReply = ""
	}
	if reason := strings.TrimSpace(verdict.Reason); reason != "" {
		out.Reason = reason
	}
	out.UsedModel = e.model
	out.PromptTokens = resp.PromptTokens
	out.CompletionTokens = resp.CompletionTokens
	out.TotalTokens = resp.TotalTokens
	return out
}

func mergeLLMExtra(ruleResult domain.ClassificationResult) map[string]any {
	extra := make(map[string]any, len(ruleResult.Extra)+2)
	for k, v := range ruleResult.Extra {
		extra[k] = v
	}
	extra[domain.ExtraLLM] = true
	extra[domain.ExtraRBConfidence] = ruleResult.Confidence()
	return extra
}

func buildPrompt(email domain.Email, ruleResult domain.ClassificationResult, opts Options) string {
	var b strings.Builder

	b.WriteString("Classifique o email abaixo como 'productive' ou 'unproductive'.\n")
	b.WriteString("Responda SOMENTE com um objeto JSON com exatamente estes campos:\n")
	b.WriteString(`{"category": "productive" ou "unproductive", "reason": "motivo curto", "reply": "resposta sugerida, vazia se unproductive"}`)
	b.WriteString("\n")

	if opts.Mood != "" {
		fmt.Fprintf(&b, "Tom da resposta: %s\n", opts.Mood)
	}
	if len(opts.PriorityKeywords) > 0 {
		fmt.Fprintf(&b, "Palavras-chave prioritárias do perfil: %s\n", strings.Join(opts.PriorityKeywords, ", "))
	}

	// Rule-based signals as context for the model.
	fmt.Fprintf(&b, "Sinal do classificador por regras: confiança %.2f", ruleResult.Confidence())
	if hits, ok := ruleResult.Extra["hits"].([]string); ok && len(hits) > 0 {
		fmt.Fprintf(&b, ", palavras encontradas: %s", strings.Join(hits, ", "))
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Subject: %s\n", email.Subject)
	fmt.Fprintf(&b, "Body: %s\n", truncate(email.Body, promptBodyLimit))
	return b.String()
}

// truncate caps s at max bytes, backing up to the nearest rune boundary so
// the cut never leaves a partial character at the end of the prompt.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

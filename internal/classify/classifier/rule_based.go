package classifier

import (
	"context"
	"fmt"
	"math"

	"mailclassifier-backend/internal/classify/domain"
	"mailclassifier-backend/pkg/nlp"
)

// Fixed lexicons. Matching is done over tokenizer output, so entries are
// single lowercase words.
var productiveLexicon = toSet(
	"reunião", "agenda", "contrato", "proposta", "orçamento", "prazo", "entrega", "fatura", "boleto",
	"currículo", "vaga", "entrevista", "support", "suporte", "pedido", "invoice", "payment", "pagamento",
)

var unproductiveLexicon = toSet(
	"promoção", "desconto", "oferta", "newsletter", "spam", "inscreva", "ganhe", "cupom", "marketing",
)

// Subset of the unproductive lexicon that marks outright spam.
var spamLexicon = toSet(
	"spam", "promoção", "oferta", "ganhe", "cupom",
)

// Each profile priority keyword hit weighs this much in the productive score,
// independent of the fixed lexicon.
const priorityKeywordWeight = 2

// Body length beyond which a scoreless message is assumed productive.
const longBodyThreshold = 10000

func toSet(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// RuleBased scores tokens against the fixed lexicons plus profile overrides.
// It is total: Classify always returns a result and a nil error, making it
// the guaranteed fallback for every other component.
type RuleBased struct {
	tokenizer *nlp.Tokenizer
}

func NewRuleBased(tokenizer *nlp.Tokenizer) *RuleBased {
	return &RuleBased{tokenizer: tokenizer}
}

func (r *RuleBased) Classify(_ context.Context, email domain.Email, tokens []string, opts Options) (domain.ClassificationResult, error) {
	priority := toSet(opts.PriorityKeywords...)

	scoreProd := 0
	scoreImp := 0
	spamHits := 0
	var hits []string

	for _, tok := range tokens {
		hit := false
		if _, ok := productiveLexicon[tok]; ok {
			scoreProd++
			hit = true
		}
		if _, ok := priority[tok]; ok {
			scoreProd += priorityKeywordWeight
			hit = true
		}
		if _, ok := unproductiveLexicon[tok]; ok {
			scoreImp++
			hit = true
		}
		if _, ok := spamLexicon[tok]; ok {
			spamHits++
		}
		if hit {
			hits = append(hits, tok)
		}
	}

	lang := r.tokenizer.Lang(email.Body)
	isSpam := spamHits >= 2 && scoreImp > scoreProd

	switch {
	case scoreProd > scoreImp:
		return r.result(domain.CategoryProductive,
			fmt.Sprintf("palavras indicativas produtivas: %d", scoreProd),
			confidence(scoreProd), lang, isSpam, hits), nil

	case scoreImp > scoreProd:
		return r.result(domain.CategoryUnproductive,
			fmt.Sprintf("palavras indicativas improdutivas: %d", scoreImp),
			confidence(scoreImp), lang, isSpam, hits), nil

	case len(email.Body) > longBodyThreshold:
		return r.result(domain.CategoryProductive,
			"fallback pelo tamanho do corpo", 0.55, lang, isSpam, hits), nil

	default:
		return r.result(domain.CategoryUnproductive,
			"fallback neutro", 0.5, lang, isSpam, hits), nil
	}
}

func (r *RuleBased) result(cat domain.Category, reason string, conf float64, lang string, isSpam bool, hits []string) domain.ClassificationResult {
	extra := map[string]any{
		domain.ExtraConfidence: conf,
		domain.ExtraIsSpam:     isSpam,
		domain.ExtraLang:       lang,
	}
	if len(hits) > 0 {
		extra["hits"] = hits
	}
	return domain.ClassificationResult{
		Category: cat,
		Reason:   reason,
		Extra:    extra,
	}
}

func confidence(score int) float64 {
	return math.Min(0.95, 0.6+0.1*float64(score))
}

package classifier

import (
	"context"
	"math"
	"strings"
	"testing"

	"mailclassifier-backend/internal/classify/domain"
	"mailclassifier-backend/pkg/nlp"
)

func TestRuleBasedClassify(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		tokens       []string
		opts         Options
		wantCategory domain.Category
		wantConf     float64
		wantSpam     bool
	}{
		{
			name:         "productive keywords win",
			body:         "precisamos agendar a reunião sobre o contrato e o orçamento",
			tokens:       []string{"precisamos", "agendar", "reunião", "sobre", "contrato", "orçamento"},
			wantCategory: domain.CategoryProductive,
			wantConf:     0.9,
		},
		{
			name:         "unproductive keywords win",
			body:         "promoção imperdível com desconto",
			tokens:       []string{"promoção", "imperdível", "desconto"},
			wantCategory: domain.CategoryUnproductive,
			wantConf:     0.8,
		},
		{
			name:         "spam needs two spam hits and an unproductive lead",
			body:         "promoção: ganhe cupom na nossa oferta",
			tokens:       []string{"promoção", "ganhe", "cupom", "nossa", "oferta"},
			wantCategory: domain.CategoryUnproductive,
			wantConf:     0.95,
			wantSpam:     true,
		},
		{
			name:         "single spam word is not spam",
			body:         "segue a promoção combinada",
			tokens:       []string{"segue", "promoção", "combinada"},
			wantCategory: domain.CategoryUnproductive,
			wantConf:     0.7,
		},
		{
			name:         "priority keyword beats one unproductive hit",
			body:         "novidades do sprint e uma promoção interna",
			tokens:       []string{"novidades", "sprint", "promoção", "interna"},
			opts:         Options{PriorityKeywords: []string{"sprint"}},
			wantCategory: domain.CategoryProductive,
			wantConf:     0.8,
		},
		{
			name:         "tie with long body falls back to productive",
			body:         strings.Repeat("x", 10001),
			tokens:       []string{"texto", "longo", "sem", "sinais"},
			wantCategory: domain.CategoryProductive,
			wantConf:     0.55,
		},
		{
			name:         "tie with short body falls back to unproductive",
			body:         "olá, tudo bem?",
			tokens:       []string{"olá", "tudo", "bem"},
			wantCategory: domain.CategoryUnproductive,
			wantConf:     0.5,
		},
		{
			name:         "no tokens at all",
			body:         "",
			tokens:       []string{},
			wantCategory: domain.CategoryUnproductive,
			wantConf:     0.5,
		},
	}

	rb := NewRuleBased(nlp.NewTokenizer("pt"))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rb.Classify(context.Background(), domain.Email{Body: tt.body}, tt.tokens, tt.opts)
			if err != nil {
				t.Fatalf("Classify() error = %v, want nil", err)
			}
			if got.Category != tt.wantCategory {
				t.Errorf("Category = %q, want %q", got.Category, tt.wantCategory)
			}
			if math.Abs(got.Confidence()-tt.wantConf) > 1e-9 {
				t.Errorf("Confidence() = %v, want %v", got.Confidence(), tt.wantConf)
			}
			if got.IsSpam() != tt.wantSpam {
				t.Errorf("IsSpam() = %v, want %v", got.IsSpam(), tt.wantSpam)
			}
			if got.Reason == "" {
				t.Error("Reason is empty")
			}
		})
	}
}

func TestRuleBasedEmptyPriorityKeywordsActLikeNone(t *testing.T) {
	rb := NewRuleBased(nlp.NewTokenizer("pt"))
	tokens := []string{"reunião", "prazo", "promoção"}

	withNil, _ := rb.Classify(context.Background(), domain.Email{Body: "x"}, tokens, Options{})
	withEmpty, _ := rb.Classify(context.Background(), domain.Email{Body: "x"}, tokens, Options{PriorityKeywords: []string{}})

	if withNil.Category != withEmpty.Category || withNil.Confidence() != withEmpty.Confidence() {
		t.Errorf("nil vs empty priority keywords diverge: %v/%v and %v/%v",
			withNil.Category, withNil.Confidence(), withEmpty.Category, withEmpty.Confidence())
	}
}

func TestRuleBasedConfidenceIsCapped(t *testing.T) {
	tokens := []string{
		"reunião", "agenda", "contrato", "proposta", "orçamento",
		"prazo", "entrega", "fatura", "boleto", "pagamento",
	}

	rb := NewRuleBased(nlp.NewTokenizer("pt"))
	got, err := rb.Classify(context.Background(), domain.Email{Body: "x"}, tokens, Options{})
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if got.Confidence() != 0.95 {
		t.Errorf("Confidence() = %v, want cap 0.95", got.Confidence())
	}
}

func TestRuleBasedRecordsHits(t *testing.T) {
	rb := NewRuleBased(nlp.NewTokenizer("pt"))
	got, err := rb.Classify(context.Background(), domain.Email{Body: "x"},
		[]string{"reunião", "qualquer", "prazo"}, Options{})
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}

	hits, ok := got.Extra["hits"].([]string)
	if !ok {
		t.Fatalf("Extra[hits] = %v, want []string", got.Extra["hits"])
	}
	want := []string{"reunião", "prazo"}
	if len(hits) != len(want) || hits[0] != want[0] || hits[1] != want[1] {
		t.Errorf("hits = %v, want %v", hits, want)
	}
}

func TestRuleBasedHitsListEachTokenOnce(t *testing.T) {
	rb := NewRuleBased(nlp.NewTokenizer("pt"))

	// "orçamento" is both in the fixed productive lexicon and a priority
	// keyword; it must still appear once per occurrence.
	got, err := rb.Classify(context.Background(), domain.Email{Body: "x"},
		[]string{"orçamento", "prazo"}, Options{PriorityKeywords: []string{"orçamento"}})
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}

	hits, _ := got.Extra["hits"].([]string)
	want := []string{"orçamento", "prazo"}
	if len(hits) != len(want) || hits[0] != want[0] || hits[1] != want[1] {
		t.Errorf("hits = %v, want %v", hits, want)
	}

	// Both scores still count: orçamento 1+2, prazo 1, capped confidence.
	if got.Confidence() != 0.95 {
		t.Errorf("Confidence() = %v, want 0.95", got.Confidence())
	}
}

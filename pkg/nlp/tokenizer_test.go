package nlp

import (
	"reflect"
	"testing"
)

func TestPreprocess(t *testing.T) {
	tok := NewTokenizer("auto")

	got := tok.Preprocess("  Reunião AMANHÃ às 10h  ")
	want := "reunião amanhã às 10h"
	if got != want {
		t.Errorf("Preprocess() = %q, want %q", got, want)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		lang string
		text string
		want []string
	}{
		{
			name: "portuguese stopwords removed",
			lang: "pt",
			text: "a reunião de amanhã com o cliente",
			want: []string{"reunião", "amanhã", "cliente"},
		},
		{
			name: "english stopwords removed",
			lang: "en",
			text: "the invoice is attached to the email",
			want: []string{"invoice", "attached", "email"},
		},
		{
			name: "accented words survive",
			lang: "pt",
			text: "orçamento promoção currículo",
			want: []string{"orçamento", "promoção", "currículo"},
		},
		{
			name: "punctuation is a separator",
			lang: "pt",
			text: "inscreva-se já! cupom: ganhe10",
			want: []string{"inscreva", "se", "já", "cupom", "ganhe10"},
		},
		{
			name: "empty input yields empty slice",
			lang: "auto",
			text: "",
			want: []string{},
		},
		{
			name: "only punctuation yields empty slice",
			lang: "auto",
			text: "!!! ... ???",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewTokenizer(tt.lang).Tokenize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectLang(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  string
	}{
		{"portuguese text", []string{"preciso", "de", "uma", "resposta", "para", "o", "cliente"}, "pt"},
		{"english text", []string{"the", "report", "is", "ready", "for", "review", "and", "approval"}, "en"},
		{"no stopwords defaults to pt", []string{"reunião", "orçamento"}, "pt"},
		{"tie goes to pt", []string{"a"}, "pt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectLang(tt.words); got != tt.want {
				t.Errorf("DetectLang(%v) = %q, want %q", tt.words, got, tt.want)
			}
		})
	}
}

func TestLangHonorsFixedConfiguration(t *testing.T) {
	tok := NewTokenizer("en")
	if got := tok.Lang("preciso de uma resposta para o cliente"); got != "en" {
		t.Errorf("Lang() = %q, want fixed language en", got)
	}

	auto := NewTokenizer("auto")
	if got := auto.Lang("the report is ready for review and approval"); got != "en" {
		t.Errorf("Lang() = %q, want detected language en", got)
	}
}

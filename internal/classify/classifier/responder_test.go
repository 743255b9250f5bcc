package classifier

import (
	"strings"
	"testing"

	"mailclassifier-backend/internal/classify/domain"
)

func TestResponderSuggest(t *testing.T) {
	r := NewResponder()

	prod := r.Suggest(domain.ClassificationResult{Category: domain.CategoryProductive}, domain.Email{})
	if !strings.Contains(prod, "próximos passos") {
		t.Errorf("productive reply = %q, want follow-up template", prod)
	}

	improd := r.Suggest(domain.ClassificationResult{Category: domain.CategoryUnproductive}, domain.Email{})
	if !strings.Contains(improd, "não temos interesse") {
		t.Errorf("unproductive reply = %q, want decline template", improd)
	}

	if prod == improd {
		t.Error("both categories produced the same reply")
	}
}

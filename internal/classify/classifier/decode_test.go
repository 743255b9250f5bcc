package classifier

import "testing"

func TestDecodeVerdict(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    llmVerdict
		wantErr bool
	}{
		{
			name: "bare object",
			text: `{"category": "productive", "reason": "pedido de orçamento", "reply": "Olá"}`,
			want: llmVerdict{Category: "productive", Reason: "pedido de orçamento", Reply: "Olá"},
		},
		{
			name: "markdown fence",
			text: "```json\n{\"category\": \"unproductive\", \"reason\": \"newsletter\", \"reply\": \"\"}\n```",
			want: llmVerdict{Category: "unproductive", Reason: "newsletter"},
		},
		{
			name: "surrounding prose",
			text: `Claro! Aqui está a classificação: {"category": "productive", "reason": "ok", "reply": "x"} Espero ter ajudado.`,
			want: llmVerdict{Category: "productive", Reason: "ok", Reply: "x"},
		},
		{
			name: "braces inside strings",
			text: `{"category": "productive", "reason": "contém {chaves} e \"aspas\"", "reply": ""}`,
			want: llmVerdict{Category: "productive", Reason: `contém {chaves} e "aspas"`},
		},
		{
			name: "first of two objects wins",
			text: `{"category": "productive", "reason": "a", "reply": ""} {"category": "unproductive", "reason": "b", "reply": ""}`,
			want: llmVerdict{Category: "productive", Reason: "a"},
		},
		{
			name:    "no object at all",
			text:    "não consegui classificar este email",
			wantErr: true,
		},
		{
			name:    "unterminated object",
			text:    `{"category": "productive", "reason": "truncat`,
			wantErr: true,
		},
		{
			name:    "balanced but invalid JSON",
			text:    `{category: productive}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeVerdict(tt.text)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("decodeVerdict() = %+v, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeVerdict() error = %v", err)
			}
			if *got != tt.want {
				t.Errorf("decodeVerdict() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"productive", true},
		{"Produtivo", true},
		{"  PRODUTIVA  ", true},
		{"unproductive", false},
		{"improdutivo", false},
		{"lixo", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := normalizeCategory(tt.raw); got != tt.want {
			t.Errorf("normalizeCategory(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

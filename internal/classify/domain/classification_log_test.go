package domain

import "testing"

func TestJSONMapScan(t *testing.T) {
	var m JSONMap
	if err := m.Scan([]byte(`{"confidence": 0.9}`)); err != nil {
		t.Fatalf("Scan(bytes) error = %v", err)
	}
	if m["confidence"] != 0.9 {
		t.Errorf("m[confidence] = %v, want 0.9", m["confidence"])
	}

	if err := m.Scan(`{"lang": "pt"}`); err != nil {
		t.Fatalf("Scan(string) error = %v", err)
	}
	if m["lang"] != "pt" {
		t.Errorf("m[lang] = %v, want pt", m["lang"])
	}

	if err := m.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error = %v", err)
	}
	if len(m) != 0 {
		t.Errorf("Scan(nil) left %d entries, want empty map", len(m))
	}
}

func TestJSONMapScanRejectsUnexpectedType(t *testing.T) {
	m := JSONMap{"stale": true}
	if err := m.Scan(12345); err == nil {
		t.Fatal("Scan(int) error = nil, want unsupported type error")
	}
}

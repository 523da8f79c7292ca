package blacklist

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoad_Success tests loading a blacklist file
func TestLoad_Success(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lista_negra.json")
	if err := os.WriteFile(path, []byte(`["Narnia", "Mordor"]`), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	bl, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if bl.Size() != 2 {
		t.Errorf("expected 2 entries, got %d", bl.Size())
	}
	if !bl.IsRestricted("Narnia") {
		t.Error("expected 'Narnia' to be restricted")
	}
	if bl.IsRestricted("Chile") {
		t.Error("expected 'Chile' not to be restricted")
	}
}

// TestLoad_MissingFile tests a missing blacklist file
func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

// TestLoad_InvalidJSON tests a malformed blacklist file
func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lista_negra.json")
	os.WriteFile(path, []byte(`{"not": "an array"}`), 0o644)

	_, err := Load(path)
	if err == nil {
		t.Error("expected error for invalid JSON, got nil")
	}
}

// TestIsRestricted_ExactMatch tests that matching is exact, not partial
func TestIsRestricted_ExactMatch(t *testing.T) {
	bl := New([]string{"Narnia"})

	tests := []struct {
		name       string
		restricted bool
	}{
		{"Narnia", true},
		{"narnia", false}, // case matters, the canonical name decides
		{"Narni", false},
		{"Narnia ", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := bl.IsRestricted(tt.name); got != tt.restricted {
			t.Errorf("IsRestricted(%q) = %v, want %v", tt.name, got, tt.restricted)
		}
	}
}

// TestNew_Empty tests an empty blacklist
func TestNew_Empty(t *testing.T) {
	bl := New(nil)
	if bl.Size() != 0 {
		t.Errorf("expected empty blacklist, got %d entries", bl.Size())
	}
	if bl.IsRestricted("Chile") {
		t.Error("empty blacklist should restrict nothing")
	}
}

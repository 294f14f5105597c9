package id_test

import (
	"testing"

	"github.com/remaimber-it/clozeit/internal/id"
)

func TestGenerateID_Length(t *testing.T) {
	if got := id.GenerateID(); len(got) != 16 {
		t.Errorf("expected 16 characters, got %d (%q)", len(got), got)
	}
}

func TestGenerateID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		v := id.GenerateID()
		if seen[v] {
			t.Fatalf("duplicate ID %q after %d draws", v, i)
		}
		seen[v] = true
	}
}

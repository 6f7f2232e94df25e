package tournament

import (
	"testing"

	"github.com/metaform3d/prisoners-dilemma/pkg/dilemma"
)

func TestAllPrototypes(t *testing.T) {
	protos := AllPrototypes()
	if len(protos) != 32 {
		t.Fatalf("AllPrototypes returned %d entries, want 32", len(protos))
	}
	for i, g := range dilemma.AllGenomes() {
		if protos[i].Description() != g.Name() {
			t.Errorf("protos[%d] = %s, want %s", i, protos[i].Description(), g.Name())
		}
		if protos[i].Signature != dilemma.ComputeSignature(g) {
			t.Errorf("protos[%d] signature mismatch for %s", i, g.Name())
		}
	}
}

func TestUniquePrototypes(t *testing.T) {
	protos := UniquePrototypes()
	if len(protos) != 26 {
		t.Fatalf("UniquePrototypes returned %d entries, want 26", len(protos))
	}

	if protos[0].Description() != "00000" {
		t.Errorf("first entry = %s, want 00000", protos[0].Description())
	}
	if protos[1].Description() != "11111" {
		t.Errorf("second entry = %s, want 11111", protos[1].Description())
	}

	seen := make(map[string]string)
	for _, p := range protos {
		if other, ok := seen[p.Signature]; ok {
			t.Errorf("%s and %s share signature %q", other, p.Description(), p.Signature)
		}
		seen[p.Signature] = p.Description()
	}

	// Every behavior in the full space is represented.
	for name, sig := range dilemma.AllSignatures() {
		if _, ok := seen[sig]; !ok {
			t.Errorf("behavior of %s (signature %q) missing from unique pool", name, sig)
		}
	}
}

func TestArgmax(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   int
	}{
		{"empty", nil, -1},
		{"single", []float64{7}, 0},
		{"max in middle", []float64{1, 9, 3}, 1},
		{"max at end", []float64{1, 2, 3}, 2},
		{"tie keeps first", []float64{3, 5, 5, 2}, 1},
		{"all equal", []float64{4, 4, 4}, 0},
		{"negatives", []float64{-3, -1, -2}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := argmax(tt.values); got != tt.want {
				t.Errorf("argmax(%v) = %d, want %d", tt.values, got, tt.want)
			}
		})
	}
}

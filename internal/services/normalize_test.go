package services

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNormalizeScripts(t *testing.T) {
	contains := func(vs []string, want string) bool {
		for _, v := range vs {
			if v == want {
				return true
			}
		}
		return false
	}

	t.Run("latin expands to indic scripts", func(t *testing.T) {
		vs := normalizeScripts("namaste", zerolog.Nop())
		if !contains(vs, "नमस्ते") {
			t.Errorf("missing Devanagari variant: %v", vs)
		}
		if !contains(vs, "నమస్తే") {
			t.Errorf("missing Telugu variant: %v", vs)
		}
		if contains(vs, "namaste") {
			t.Errorf("original query must not be echoed as a variant: %v", vs)
		}
	})

	t.Run("devanagari expands to roman schemes", func(t *testing.T) {
		vs := normalizeScripts("योग", zerolog.Nop())
		if !contains(vs, "yoga") {
			t.Errorf("missing roman variant: %v", vs)
		}
	})

	t.Run("duplicates collapsed", func(t *testing.T) {
		// Plain ASCII transliterates identically under both roman schemes.
		vs := normalizeScripts("dharma", zerolog.Nop())
		seen := map[string]int{}
		for _, v := range vs {
			seen[v]++
			if seen[v] > 1 {
				t.Errorf("duplicate variant %q in %v", v, vs)
			}
		}
	})

	t.Run("mixed script is left alone", func(t *testing.T) {
		if vs := normalizeScripts("yoga योग", zerolog.Nop()); vs != nil {
			t.Errorf("expected no variants, got %v", vs)
		}
	})

	t.Run("blank query", func(t *testing.T) {
		if vs := normalizeScripts("   ", zerolog.Nop()); vs != nil {
			t.Errorf("expected nil, got %v", vs)
		}
	})
}

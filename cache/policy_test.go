package cache

import (
	"testing"
	"time"
)

func TestSelectVictimOldest(t *testing.T) {
	base := time.Now()
	entries := map[string]*entry[string]{
		"b": {createdAt: base.Add(-2 * time.Minute)},
		"a": {createdAt: base.Add(-time.Minute)},
		"c": {createdAt: base},
	}
	victim, ok := selectVictim(entries)
	if !ok || victim != "b" {
		t.Fatalf("expected oldest entry b, got (%q, %v)", victim, ok)
	}
}

func TestSelectVictimTieBreak(t *testing.T) {
	base := time.Now()
	entries := map[string]*entry[string]{
		"delta": {createdAt: base},
		"alpha": {createdAt: base},
		"bravo": {createdAt: base},
	}
	victim, ok := selectVictim(entries)
	if !ok || victim != "alpha" {
		t.Fatalf("expected lexicographically smallest key on tie, got (%q, %v)", victim, ok)
	}
}

func TestSelectVictimEmpty(t *testing.T) {
	if victim, ok := selectVictim(map[string]*entry[string]{}); ok {
		t.Fatalf("expected no victim for empty set, got %q", victim)
	}
}

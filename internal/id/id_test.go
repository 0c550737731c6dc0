package id

import (
	"testing"
	"time"
)

func TestGenerateID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		v := GenerateID()
		if seen[v] {
			t.Fatalf("duplicate id %q", v)
		}
		seen[v] = true
	}
}

func TestGenerateID_SortsByTime(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	a := generateAt(base)
	b := generateAt(base.Add(time.Hour))

	if !(a < b) {
		t.Errorf("expected %q < %q", a, b)
	}
}

package main

import "testing"

func TestParsePositionsList(t *testing.T) {
	got, err := parsePositions("3,7,10-12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{3, 7, 10, 11, 12}
	if len(got) != len(want) {
		t.Fatalf("unexpected positions: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestParsePositionsEmpty(t *testing.T) {
	got, err := parsePositions("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected no selection, got %v", got)
	}
}

func TestParsePositionsBad(t *testing.T) {
	for _, spec := range []string{"x", "3-1", "0", "1-", "-2"} {
		if _, err := parsePositions(spec); err == nil {
			t.Fatalf("expected an error for %q", spec)
		}
	}
}

package calendar

import (
	"testing"
	"time"
)

func TestNavigator_NormalizesToFirst(t *testing.T) {
	n := NewNavigator(time.Date(2024, time.January, 31, 18, 45, 0, 0, time.Local))
	if got := n.Anchor(); got.Day() != 1 || got.Month() != time.January || got.Year() != 2024 {
		t.Fatalf("unexpected anchor %v", got)
	}

	// Stepping from a 31st must not drift into March.
	n.Next()
	if got := n.Anchor(); got.Month() != time.February || got.Day() != 1 {
		t.Errorf("expected 2024-02-01, got %v", got)
	}
}

func TestNavigator_YearRollover(t *testing.T) {
	n := NewNavigator(date(2024, time.December, 1))

	n.Next()
	if got := n.Anchor(); !got.Equal(date(2025, time.January, 1)) {
		t.Fatalf("expected 2025-01-01, got %v", got)
	}

	n.Previous()
	if got := n.Anchor(); !got.Equal(date(2024, time.December, 1)) {
		t.Fatalf("expected 2024-12-01, got %v", got)
	}

	n.Reset(date(2024, time.January, 9))
	n.Previous()
	if got := n.Anchor(); !got.Equal(date(2023, time.December, 1)) {
		t.Fatalf("expected 2023-12-01, got %v", got)
	}
}

func TestNavigator_NextPreviousRoundTrip(t *testing.T) {
	start := date(1990, time.January, 1)
	for i := 0; i < 12*50; i++ {
		anchor := start.AddDate(0, i, 0)
		n := NewNavigator(anchor)
		n.Next()
		n.Previous()
		if !n.Anchor().Equal(anchor) {
			t.Fatalf("round trip from %v ended at %v", anchor, n.Anchor())
		}
		n.Previous()
		n.Next()
		if !n.Anchor().Equal(anchor) {
			t.Fatalf("reverse round trip from %v ended at %v", anchor, n.Anchor())
		}
	}
}

func TestNavigator_Unbounded(t *testing.T) {
	n := NewNavigator(date(2024, time.June, 1))
	for i := 0; i < 12*100; i++ {
		n.Previous()
	}
	if got := n.Anchor(); !got.Equal(date(1924, time.June, 1)) {
		t.Errorf("expected 1924-06-01, got %v", got)
	}
}

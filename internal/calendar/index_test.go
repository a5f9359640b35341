package calendar

import (
	"reflect"
	"testing"

	"github.com/hy4ri/workout-tui/internal/api"
)

func TestNewIndex(t *testing.T) {
	workouts := []api.Workout{
		{Title: "Leg Day", Date: "2024-02-05", Exercises: []string{"Squat", "Lunge"}},
		{Title: "Pull", Date: "2024-02-06"},
		{Title: "Cardio", Date: "2024-02-05"},
	}
	idx := NewIndex(workouts)

	if idx.Len() != 2 {
		t.Fatalf("expected 2 days, got %d", idx.Len())
	}

	got := idx.Lookup("2024-02-05")
	if len(got) != 2 || got[0].Title != "Leg Day" || got[1].Title != "Cardio" {
		t.Errorf("expected fetch order preserved, got %+v", got)
	}

	if !reflect.DeepEqual(idx.Dates(), []string{"2024-02-05", "2024-02-06"}) {
		t.Errorf("unexpected dates %v", idx.Dates())
	}

	// Rebuilding from the same input yields an equal index.
	if !reflect.DeepEqual(NewIndex(workouts), idx) {
		t.Error("index build is not idempotent")
	}
}

func TestIndex_LookupMissing(t *testing.T) {
	tests := []struct {
		name string
		idx  *Index
	}{
		{"empty input", NewIndex(nil)},
		{"populated", NewIndex([]api.Workout{{Title: "x", Date: "2024-02-05"}})},
		{"nil index", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.idx.Lookup("2024-02-06")
			if got == nil {
				t.Fatal("expected empty slice, got nil")
			}
			if len(got) != 0 {
				t.Errorf("expected no workouts, got %d", len(got))
			}
			if tt.idx.Has("2024-02-06") {
				t.Error("Has reported a missing date")
			}
		})
	}
}

func TestIndex_LookupReturnsCopy(t *testing.T) {
	idx := NewIndex([]api.Workout{{Title: "Leg Day", Date: "2024-02-05"}})
	got := idx.Lookup("2024-02-05")
	got[0].Title = "changed"

	if idx.Lookup("2024-02-05")[0].Title != "Leg Day" {
		t.Error("index was mutated through a lookup result")
	}
}

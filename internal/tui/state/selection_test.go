package state

import (
	"reflect"
	"testing"

	"github.com/hy4ri/workout-tui/internal/api"
	"github.com/hy4ri/workout-tui/internal/calendar"
)

func legDayIndex() *calendar.Index {
	return calendar.NewIndex([]api.Workout{
		{Title: "Leg Day", Date: "2024-02-05", Exercises: []string{"Squat", "Lunge"}},
		{Title: "Pull", Date: "2024-02-08", Exercises: []string{"Row"}},
	})
}

func TestSelection_SelectWorkoutDay(t *testing.T) {
	s := NewSelection(legDayIndex())

	if !s.Select("2024-02-05") {
		t.Fatal("expected selection to succeed")
	}
	if !s.Visible() {
		t.Fatal("modal should be visible")
	}

	content := s.Content()
	if len(content) != 1 || content[0].Title != "Leg Day" {
		t.Fatalf("unexpected content %+v", content)
	}
	if !reflect.DeepEqual(content[0].Exercises, []string{"Squat", "Lunge"}) {
		t.Errorf("unexpected exercises %v", content[0].Exercises)
	}

	// A day without workouts is ignored and keeps the modal as is.
	if s.Select("2024-02-06") {
		t.Error("selecting an empty day should be a no-op")
	}
	if date, _ := s.Selected(); date != "2024-02-05" {
		t.Errorf("selection changed to %s", date)
	}
}

func TestSelection_EmptyDayNoOp(t *testing.T) {
	dates := []string{"2024-02-06", "", "not-a-date", "2024-02-05x"}
	for _, d := range dates {
		s := NewSelection(legDayIndex())
		if s.Select(d) || s.Visible() {
			t.Errorf("Select(%q) should be a no-op", d)
		}
	}

	s := NewSelection(nil)
	if s.Select("2024-02-05") {
		t.Error("selection with no index should be a no-op")
	}
}

func TestSelection_ReplaceWhileOpen(t *testing.T) {
	s := NewSelection(legDayIndex())
	s.Select("2024-02-05")
	s.Select("2024-02-08")

	if !s.Visible() {
		t.Fatal("modal should stay open")
	}
	if got := s.Content(); got[0].Title != "Pull" {
		t.Errorf("expected Pull, got %s", got[0].Title)
	}
}

func TestSelection_Clear(t *testing.T) {
	s := NewSelection(legDayIndex())
	s.Clear()
	if s.Visible() {
		t.Error("clear on empty selection should leave it closed")
	}

	s.Select("2024-02-05")
	s.Clear()
	if s.Visible() {
		t.Error("modal should be hidden after clear")
	}
	if len(s.Content()) != 0 {
		t.Error("content should be empty after clear")
	}
}

func TestSelection_PersistsAcrossReload(t *testing.T) {
	s := NewSelection(legDayIndex())
	s.Select("2024-02-05")

	s.SetIndex(calendar.NewIndex([]api.Workout{
		{Title: "Leg Day v2", Date: "2024-02-05"},
	}))

	if !s.Visible() {
		t.Fatal("selection should persist across a reload")
	}
	if got := s.Content(); got[0].Title != "Leg Day v2" {
		t.Errorf("expected content from the new index, got %s", got[0].Title)
	}
}

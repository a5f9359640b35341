package calendar

import (
	"testing"
	"time"

	"github.com/hy4ri/workout-tui/internal/api"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildGrid_February2024(t *testing.T) {
	g := BuildGrid(date(2024, time.February, 1), NewIndex(nil), date(2024, time.February, 14))

	if g[0].ISODate != "2024-01-29" {
		t.Errorf("expected grid start 2024-01-29, got %s", g[0].ISODate)
	}
	if g[GridSize-1].ISODate != "2024-03-10" {
		t.Errorf("expected grid end 2024-03-10, got %s", g[GridSize-1].ISODate)
	}

	i := g.IndexOf("2024-02-01")
	if i != 3 {
		t.Fatalf("expected 2024-02-01 at index 3 (Thursday), got %d", i)
	}
	if !g[i].InCurrentMonth {
		t.Error("2024-02-01 should be in the current month")
	}
	if g[0].InCurrentMonth {
		t.Error("2024-01-29 should not be in the current month")
	}

	today := g.IndexOf("2024-02-14")
	if !g[today].IsToday {
		t.Error("2024-02-14 should be today")
	}
	for j := range g {
		if j != today && g[j].IsToday {
			t.Errorf("cell %s unexpectedly marked today", g[j].ISODate)
		}
	}

	if g[i].Label != "Thursday, February 1, 2024" {
		t.Errorf("unexpected label %q", g[i].Label)
	}
}

func TestBuildGrid_InvariantsForManyMonths(t *testing.T) {
	anchor := date(1999, time.January, 1)
	for n := 0; n < 12*30; n++ {
		month := anchor.AddDate(0, n, 0)
		g := BuildGrid(month, nil, time.Time{})

		if len(g) != 42 {
			t.Fatalf("expected 42 cells, got %d", len(g))
		}
		if g[0].Date.Weekday() != time.Monday {
			t.Fatalf("%s: grid starts on %s", month.Format("2006-01"), g[0].Date.Weekday())
		}

		// In-month cells are exactly the days of the month, in order.
		daysInMonth := month.AddDate(0, 1, -1).Day()
		expected := 1
		for _, c := range g {
			if !c.InCurrentMonth {
				continue
			}
			if c.Date.Day() != expected || c.Date.Month() != month.Month() {
				t.Fatalf("%s: expected day %d, got %s", month.Format("2006-01"), expected, c.ISODate)
			}
			expected++
		}
		if expected-1 != daysInMonth {
			t.Fatalf("%s: expected %d in-month cells, got %d", month.Format("2006-01"), daysInMonth, expected-1)
		}

		for k := 1; k < len(g); k++ {
			if g[k].Date.Sub(g[k-1].Date) != 24*time.Hour {
				t.Fatalf("%s: cells %d and %d are not consecutive", month.Format("2006-01"), k-1, k)
			}
		}
	}
}

func TestBuildGrid_MonthStartingOnMonday(t *testing.T) {
	// January 1, 2024 is a Monday: no leading days from December.
	g := BuildGrid(date(2024, time.January, 17), nil, time.Time{})
	if g[0].ISODate != "2024-01-01" || !g[0].InCurrentMonth {
		t.Errorf("expected grid to start on 2024-01-01, got %s", g[0].ISODate)
	}
}

func TestBuildGrid_HasWorkout(t *testing.T) {
	idx := NewIndex([]api.Workout{
		{Title: "Leg Day", Date: "2024-02-05", Exercises: []string{"Squat", "Lunge"}},
		{Title: "Spill", Date: "2024-03-02"},
	})
	g := BuildGrid(date(2024, time.February, 1), idx, time.Time{})

	for _, c := range g {
		want := c.ISODate == "2024-02-05" || c.ISODate == "2024-03-02"
		if c.HasWorkout != want {
			t.Errorf("%s: HasWorkout = %v, want %v", c.ISODate, c.HasWorkout, want)
		}
	}
}

func TestBuildGrid_TodayInOtherZone(t *testing.T) {
	loc := time.FixedZone("UTC+13", 13*60*60)
	today := time.Date(2024, time.February, 5, 23, 30, 0, 0, loc)
	g := BuildGrid(date(2024, time.February, 1), nil, today)

	if !g[g.IndexOf("2024-02-05")].IsToday {
		t.Error("today should be matched by its own calendar day")
	}
}

func TestGrid_FirstInMonth(t *testing.T) {
	g := BuildGrid(date(2024, time.February, 1), nil, time.Time{})
	if got := g.FirstInMonth(); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
	if g.IndexOf("2030-01-01") != -1 {
		t.Error("expected -1 for a date outside the grid")
	}
}

package components

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/workout-tui/internal/api"
	"github.com/hy4ri/workout-tui/internal/calendar"
	"github.com/hy4ri/workout-tui/internal/host"
	"github.com/hy4ri/workout-tui/internal/theme"
	"github.com/hy4ri/workout-tui/internal/tui/styles"
)

func february2024() calendar.Grid {
	idx := calendar.NewIndex([]api.Workout{{Title: "Leg Day", Date: "2024-02-05"}})
	return calendar.BuildGrid(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), idx, time.Time{})
}

func TestCalendarView_Layout(t *testing.T) {
	c := NewCalendar(styles.New(theme.DarkDefaults))
	c.SetGrid(february2024(), "February 2024")

	out := c.View()
	lines := strings.Split(out, "\n")
	if len(lines) != c.Height() {
		t.Fatalf("expected %d lines, got %d", c.Height(), len(lines))
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != GridWidth {
			t.Errorf("line %d has width %d, want %d", i, w, GridWidth)
		}
	}
	if !strings.Contains(lines[0], "February 2024") {
		t.Errorf("title line missing month: %q", lines[0])
	}
	if !strings.Contains(out, " 5*") {
		t.Error("workout day should carry a marker")
	}
}

func TestCalendarHitTest(t *testing.T) {
	c := NewCalendar(styles.New(theme.DarkDefaults))
	c.SetGrid(february2024(), "February 2024")

	tests := []struct {
		name string
		x, y int
		want Hit
	}{
		{"prev button", 1, 0, Hit{Kind: HitPrev}},
		{"next button", GridWidth - 1, 0, Hit{Kind: HitNext}},
		{"title text", GridWidth / 2, 0, Hit{Kind: HitNone}},
		{"weekday header", 3, 1, Hit{Kind: HitNone}},
		{"first cell", 0, 2, Hit{Kind: HitCell, Cell: 0}},
		{"monday of second week", 2, 3, Hit{Kind: HitCell, Cell: 7}},
		{"last cell", GridWidth - 1, 7, Hit{Kind: HitCell, Cell: 41}},
		{"below grid", 0, 8, Hit{Kind: HitNone}},
		{"right of grid", GridWidth, 3, Hit{Kind: HitNone}},
		{"negative", -1, 3, Hit{Kind: HitNone}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.HitTest(tt.x, tt.y); got != tt.want {
				t.Errorf("HitTest(%d, %d) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestClipboardText(t *testing.T) {
	got := ClipboardText("Monday, February 5, 2024", []api.Workout{
		{Title: "Leg Day", Exercises: []string{"Squat", "Lunge"}},
	})
	want := "Monday, February 5, 2024\n\nLeg Day\n- Squat\n- Lunge\n"
	if got != want {
		t.Errorf("ClipboardText() = %q, want %q", got, want)
	}
}

func TestRenderHeader(t *testing.T) {
	s := styles.New(theme.DarkDefaults)

	out := RenderHeader(s, &host.User{FirstName: "Ada", LastName: "Lovelace", Username: "ada"}, false)
	for _, want := range []string{"AL", "Ada Lovelace", "@ada"} {
		if !strings.Contains(out, want) {
			t.Errorf("header %q missing %q", out, want)
		}
	}
	if strings.Contains(out, "demo") {
		t.Error("demo badge shown for a real host")
	}

	if out := RenderHeader(s, nil, true); !strings.Contains(out, "demo mode") {
		t.Errorf("expected demo badge, got %q", out)
	}
}

func TestDetailView_Content(t *testing.T) {
	d := NewDetail(styles.New(theme.DarkDefaults))
	d.SetSize(80, 40)
	d.SetContent("Monday, February 5, 2024", []api.Workout{
		{Title: "Leg Day", Exercises: []string{"Squat", "Lunge"}},
	})

	out := d.View()
	for _, want := range []string{"Monday, February 5, 2024", "Leg Day", "1. Squat", "2. Lunge"} {
		if !strings.Contains(out, want) {
			t.Errorf("modal missing %q", want)
		}
	}
}

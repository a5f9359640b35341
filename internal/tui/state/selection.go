package state

import (
	"github.com/hy4ri/workout-tui/internal/api"
	"github.com/hy4ri/workout-tui/internal/calendar"
)

// Selection tracks which day's workouts are shown in the detail modal.
type Selection struct {
	index    *calendar.Index
	date     string
	selected bool
}

// NewSelection creates an empty Selection over idx.
func NewSelection(idx *calendar.Index) *Selection {
	return &Selection{index: idx}
}

// SetIndex replaces the index after a fetch. An open selection stays open.
func (s *Selection) SetIndex(idx *calendar.Index) {
	s.index = idx
}

// Select opens date if it has workouts; otherwise it does nothing.
// Selecting while open replaces the content in place.
func (s *Selection) Select(date string) bool {
	if !s.index.Has(date) {
		return false
	}
	s.date = date
	s.selected = true
	return true
}

// Clear closes the modal.
func (s *Selection) Clear() {
	s.date = ""
	s.selected = false
}

// Selected returns the selected date, if any.
func (s *Selection) Selected() (string, bool) {
	return s.date, s.selected
}

// Visible reports whether the modal is shown.
func (s *Selection) Visible() bool {
	return s.selected
}

// Content returns the workouts of the selected day.
func (s *Selection) Content() []api.Workout {
	if !s.selected {
		return []api.Workout{}
	}
	return s.index.Lookup(s.date)
}

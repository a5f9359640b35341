package calendar

import "time"

// FirstOfMonth returns midnight UTC on the first day of t's month.
// Anchors live in UTC so day stepping is never affected by DST transitions.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Navigator owns the month currently displayed.
type Navigator struct {
	anchor time.Time
}

// NewNavigator creates a Navigator anchored on the month containing t.
func NewNavigator(t time.Time) *Navigator {
	return &Navigator{anchor: FirstOfMonth(t)}
}

// Anchor returns the first day of the displayed month.
func (n *Navigator) Anchor() time.Time {
	return n.anchor
}

// Next moves to the following month.
func (n *Navigator) Next() {
	n.anchor = FirstOfMonth(n.anchor.AddDate(0, 1, 0))
}

// Previous moves to the preceding month.
func (n *Navigator) Previous() {
	n.anchor = FirstOfMonth(n.anchor.AddDate(0, -1, 0))
}

// Reset jumps to the month containing t.
func (n *Navigator) Reset(t time.Time) {
	n.anchor = FirstOfMonth(t)
}

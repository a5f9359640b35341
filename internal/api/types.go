// Package api provides a client for the workout data backend.
package api

import "time"

// DateLayout is the layout of a workout's date field.
const DateLayout = "2006-01-02"

// Workout represents one training session as served by the backend.
type Workout struct {
	Title     string   `json:"title"`
	Date      string   `json:"date"`
	Exercises []string `json:"exercises"`
}

// Day parses the workout date. Returns false if the date is malformed.
func (w Workout) Day() (time.Time, bool) {
	t, err := time.Parse(DateLayout, w.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

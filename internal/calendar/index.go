// Package calendar implements the month grid and date indexing behind the
// workout calendar view.
package calendar

import (
	"sort"

	"github.com/hy4ri/workout-tui/internal/api"
)

// Index maps an ISO day (YYYY-MM-DD) to the workouts on that day, in fetch order.
// An Index is built once per fetch and never mutated afterwards.
type Index struct {
	byDate map[string][]api.Workout
}

// NewIndex builds an Index from one fetch result. Empty input yields an empty index.
func NewIndex(workouts []api.Workout) *Index {
	byDate := make(map[string][]api.Workout)
	for _, w := range workouts {
		byDate[w.Date] = append(byDate[w.Date], w)
	}
	return &Index{byDate: byDate}
}

// Lookup returns the workouts on date. Dates without workouts yield an
// empty, non-nil slice.
func (idx *Index) Lookup(date string) []api.Workout {
	if idx == nil {
		return []api.Workout{}
	}
	ws, ok := idx.byDate[date]
	if !ok {
		return []api.Workout{}
	}
	out := make([]api.Workout, len(ws))
	copy(out, ws)
	return out
}

// Has reports whether date has at least one workout.
func (idx *Index) Has(date string) bool {
	if idx == nil {
		return false
	}
	return len(idx.byDate[date]) > 0
}

// Len returns the number of days with workouts.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.byDate)
}

// Dates returns the indexed days in ascending order.
func (idx *Index) Dates() []string {
	if idx == nil {
		return nil
	}
	dates := make([]string, 0, len(idx.byDate))
	for d := range idx.byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

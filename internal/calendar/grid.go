package calendar

import "time"

const (
	// GridRows is the number of week rows in a month grid.
	GridRows = 6
	// GridCols is the number of days per row, Monday first.
	GridCols = 7
	// GridSize is the fixed number of cells in a month grid.
	GridSize = GridRows * GridCols

	// LabelLayout formats a cell's long date label.
	LabelLayout = "Monday, January 2, 2006"
)

// Weekdays are the column headers of the grid.
var Weekdays = [GridCols]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Cell is one day of the month grid.
type Cell struct {
	ISODate        string
	Date           time.Time
	InCurrentMonth bool
	HasWorkout     bool
	IsToday        bool
	Label          string
}

// Grid is the fixed-size month grid, row-major.
type Grid [GridSize]Cell

// GridStart returns the Monday on or before the first day of anchor's month.
func GridStart(anchor time.Time) time.Time {
	first := FirstOfMonth(anchor)
	offset := (int(first.Weekday()) + 6) % 7
	return first.AddDate(0, 0, -offset)
}

// BuildGrid lays out the month containing anchor as six Monday-first weeks.
// today is compared by calendar day in its own location.
func BuildGrid(anchor time.Time, idx *Index, today time.Time) Grid {
	first := FirstOfMonth(anchor)
	start := GridStart(first)
	ty, tm, td := today.Date()

	var g Grid
	for i := range g {
		d := start.AddDate(0, 0, i)
		y, m, day := d.Date()
		iso := d.Format("2006-01-02")
		g[i] = Cell{
			ISODate:        iso,
			Date:           d,
			InCurrentMonth: y == first.Year() && m == first.Month(),
			HasWorkout:     idx.Has(iso),
			IsToday:        y == ty && m == tm && day == td,
			Label:          d.Format(LabelLayout),
		}
	}
	return g
}

// IndexOf returns the position of isoDate in the grid, or -1.
func (g *Grid) IndexOf(isoDate string) int {
	for i := range g {
		if g[i].ISODate == isoDate {
			return i
		}
	}
	return -1
}

// FirstInMonth returns the position of the first day of the anchor month.
func (g *Grid) FirstInMonth() int {
	for i := range g {
		if g[i].InCurrentMonth {
			return i
		}
	}
	return 0
}

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/workout-tui/internal/calendar"
	"github.com/hy4ri/workout-tui/internal/tui/styles"
)

const (
	// CellWidth is the width of one day cell in columns.
	CellWidth = 5
	// GridWidth is the width of the whole calendar.
	GridWidth = CellWidth * calendar.GridCols

	// Row offsets inside the calendar block.
	titleRow    = 0
	weekdayRow  = 1
	firstDayRow = 2

	prevButton  = "[<]"
	nextButton  = "[>]"
	buttonWidth = 3
)

// HitKind says what part of the calendar a click landed on.
type HitKind int

const (
	HitNone HitKind = iota
	HitPrev
	HitNext
	HitCell
)

// Hit is the result of a hit test.
type Hit struct {
	Kind HitKind
	Cell int // grid position for HitCell
}

// CalendarModel renders the month grid.
type CalendarModel struct {
	grid     calendar.Grid
	anchor   string
	cursor   int
	selected string
	focused  bool
	styles   *styles.Styles
}

// NewCalendar creates a new CalendarModel.
func NewCalendar(s *styles.Styles) *CalendarModel {
	return &CalendarModel{styles: s, focused: true}
}

// SetStyles swaps the styles after a theme change.
func (c *CalendarModel) SetStyles(s *styles.Styles) {
	c.styles = s
}

// SetGrid sets the grid to render and the month title.
func (c *CalendarModel) SetGrid(g calendar.Grid, monthTitle string) {
	c.grid = g
	c.anchor = monthTitle
}

// SetCursor sets the highlighted cell.
func (c *CalendarModel) SetCursor(i int) {
	c.cursor = i
}

// SetSelected marks the day whose workouts are open.
func (c *CalendarModel) SetSelected(isoDate string) {
	c.selected = isoDate
}

// Focus sets focus on the calendar.
func (c *CalendarModel) Focus() { c.focused = true }

// Blur removes focus.
func (c *CalendarModel) Blur() { c.focused = false }

// View renders the calendar block.
func (c *CalendarModel) View() string {
	s := c.styles
	var b strings.Builder

	// Header with month/year and navigation buttons
	titleWidth := GridWidth - 2*buttonWidth
	title := lipgloss.PlaceHorizontal(titleWidth, lipgloss.Center, s.Title.Render(c.anchor))
	b.WriteString(s.NavButton.Render(prevButton))
	b.WriteString(title)
	b.WriteString(s.NavButton.Render(nextButton))
	b.WriteString("\n")

	// Weekday headers
	for _, wd := range calendar.Weekdays {
		b.WriteString(s.CalendarWeekday.Render(fmt.Sprintf(" %s ", wd)))
	}
	b.WriteString("\n")

	for row := 0; row < calendar.GridRows; row++ {
		for col := 0; col < calendar.GridCols; col++ {
			i := row*calendar.GridCols + col
			b.WriteString(c.renderCell(i))
		}
		if row < calendar.GridRows-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (c *CalendarModel) renderCell(i int) string {
	s := c.styles
	cell := c.grid[i]

	marker := " "
	if cell.HasWorkout {
		marker = "*"
	}
	text := fmt.Sprintf(" %2d%s ", cell.Date.Day(), marker)

	style := s.CalendarDay
	switch {
	case cell.ISODate == c.selected && c.selected != "":
		style = s.CalendarDaySelected
	case i == c.cursor && c.focused:
		style = s.CalendarDayCursor
	case cell.IsToday:
		style = s.CalendarDayToday
	case cell.HasWorkout:
		style = s.CalendarDayWorkout
	case !cell.InCurrentMonth:
		style = s.CalendarDayOther
	}
	return style.Render(text)
}

// Height is the number of lines View produces.
func (c *CalendarModel) Height() int {
	return firstDayRow + calendar.GridRows
}

// HitTest maps a position relative to the calendar's top-left corner to
// the button or cell under it.
func (c *CalendarModel) HitTest(x, y int) Hit {
	if x < 0 || x >= GridWidth || y < 0 {
		return Hit{Kind: HitNone}
	}
	switch {
	case y == titleRow && x < buttonWidth:
		return Hit{Kind: HitPrev}
	case y == titleRow && x >= GridWidth-buttonWidth:
		return Hit{Kind: HitNext}
	case y >= firstDayRow && y < firstDayRow+calendar.GridRows:
		row := y - firstDayRow
		col := x / CellWidth
		return Hit{Kind: HitCell, Cell: row*calendar.GridCols + col}
	}
	return Hit{Kind: HitNone}
}

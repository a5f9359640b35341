package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/workout-tui/internal/api"
	"github.com/hy4ri/workout-tui/internal/calendar"
	"github.com/hy4ri/workout-tui/internal/tui/components"
	"github.com/hy4ri/workout-tui/internal/tui/gesture"
)

const defaultCellWidthPx = 8

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.MouseMsg:
		return a.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.detailCmp.SetSize(msg.Width, msg.Height)
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case workoutsLoadedMsg:
		return a, a.handleWorkoutsLoaded(msg)

	case hostThemeChangedMsg:
		if a.reconciler.HostThemeChanged(a.host.ThemeParams()) {
			a.log.Info("theme_applied", "source", "host")
		}
		return a, a.waitForHostEvent()

	case errMsg:
		a.err = msg.err
		return a, nil

	case statusMsg:
		a.statusMsg = msg.msg
		return a, nil
	}

	return a, nil
}

func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	// Help overlay swallows the next key
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keymap.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keymap.Help):
		a.showHelp = true
		return a, nil
	case key.Matches(msg, a.keymap.Theme):
		a.reconciler.Toggle()
		a.log.Info("theme_toggled", "mode", a.reconciler.Mode().String())
		return a, nil
	case key.Matches(msg, a.keymap.Refresh):
		return a, a.startFetch()
	}

	if a.selection.Visible() {
		return a.handleModalKeyMsg(msg)
	}

	switch {
	case key.Matches(msg, a.keymap.PrevMonth):
		a.changeMonth(a.nav.Previous)
	case key.Matches(msg, a.keymap.NextMonth):
		a.changeMonth(a.nav.Next)
	case key.Matches(msg, a.keymap.Today):
		a.changeMonth(func() { a.nav.Reset(a.clock.Now()) })
	case key.Matches(msg, a.keymap.Left):
		a.moveCursor(-1)
	case key.Matches(msg, a.keymap.Right):
		a.moveCursor(1)
	case key.Matches(msg, a.keymap.Up):
		a.moveCursor(-calendar.GridCols)
	case key.Matches(msg, a.keymap.Down):
		a.moveCursor(calendar.GridCols)
	case key.Matches(msg, a.keymap.Select):
		a.selectCell(a.cursor)
	}
	return a, nil
}

// handleModalKeyMsg handles keys while the day detail is open.
func (a *App) handleModalKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keymap.Close):
		a.closeDetail()
		return a, nil
	case key.Matches(msg, a.keymap.Copy):
		return a, a.handleCopy()
	case key.Matches(msg, a.keymap.Up), key.Matches(msg, a.keymap.Down):
		return a, a.detailCmp.Update(msg)
	}
	return a, nil
}

// handleMouseMsg maps the left button to a single touch point: press
// starts a gesture and release ends it. A release that does not navigate
// is treated as a tap on the press position.
func (a *App) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		if a.selection.Visible() {
			return a, a.detailCmp.Update(msg)
		}
		return a, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return a, nil
		}
		a.tapX, a.tapY = msg.X, msg.Y
		a.gesture.TouchStart([]gesture.Touch{a.touchAt(msg.X, msg.Y)})

	case tea.MouseActionRelease:
		if !a.gesture.Active() {
			return a, nil
		}
		if a.selection.Visible() {
			a.gesture.Cancel()
			a.closeDetail()
			return a, nil
		}
		switch dir := a.gesture.TouchEnd([]gesture.Touch{a.touchAt(msg.X, msg.Y)}); dir {
		case gesture.None:
			a.handleTap(a.tapX, a.tapY)
		default:
			a.log.Debug("month_swiped", "direction", dir.String())
			a.monthChanged()
		}
	}
	return a, nil
}

// touchAt converts a terminal cell position to pixels.
func (a *App) touchAt(x, y int) gesture.Touch {
	px := a.config.UI.CellWidthPx
	if px <= 0 {
		px = defaultCellWidthPx
	}
	return gesture.Touch{X: float64(x * px), Y: float64(y * px)}
}

// handleTap hit-tests a click against the calendar.
func (a *App) handleTap(x, y int) {
	ox, oy := a.calendarOrigin()
	hit := a.calendarCmp.HitTest(x-ox, y-oy)
	switch hit.Kind {
	case components.HitPrev:
		a.changeMonth(a.nav.Previous)
	case components.HitNext:
		a.changeMonth(a.nav.Next)
	case components.HitCell:
		a.cursor = hit.Cell
		a.calendarCmp.SetCursor(a.cursor)
		a.selectCell(hit.Cell)
	}
}

// changeMonth runs a navigator step and rebuilds the grid.
func (a *App) changeMonth(step func()) {
	step()
	a.monthChanged()
}

func (a *App) monthChanged() {
	a.refreshGrid()
	a.resetCursor()
	a.log.Debug("month_changed", "anchor", a.nav.Anchor().Format(api.DateLayout))
}

// refreshGrid rebuilds the 42 cells for the current anchor.
func (a *App) refreshGrid() {
	anchor := a.nav.Anchor()
	a.grid = calendar.BuildGrid(anchor, a.index, a.clock.Now())
	a.calendarCmp.SetGrid(a.grid, anchor.Format("January 2006"))
}

// resetCursor puts the cursor on today when it is in view, otherwise on
// the first day of the month.
func (a *App) resetCursor() {
	a.cursor = a.grid.FirstInMonth()
	for i, c := range a.grid {
		if c.IsToday && c.InCurrentMonth {
			a.cursor = i
			break
		}
	}
	a.calendarCmp.SetCursor(a.cursor)
}

func (a *App) moveCursor(delta int) {
	next := a.cursor + delta
	if next < 0 || next >= calendar.GridSize {
		return
	}
	a.cursor = next
	a.calendarCmp.SetCursor(a.cursor)
}

// selectCell opens the detail for a cell. Days without workouts are ignored.
func (a *App) selectCell(i int) {
	if i < 0 || i >= calendar.GridSize {
		return
	}
	cell := a.grid[i]
	if !a.selection.Select(cell.ISODate) {
		return
	}
	a.log.Debug("day_selected", "date", cell.ISODate)
	a.refreshDetail()
}

func (a *App) closeDetail() {
	a.selection.Clear()
	a.refreshDetail()
}

// refreshDetail syncs the detail component and the calendar highlight with
// the selection.
func (a *App) refreshDetail() {
	date, ok := a.selection.Selected()
	if !ok {
		a.calendarCmp.SetSelected("")
		return
	}
	a.calendarCmp.SetSelected(date)
	a.detailCmp.SetContent(dayLabel(date), a.selection.Content())
}

// handleCopy copies the open day's workouts to the clipboard.
func (a *App) handleCopy() tea.Cmd {
	date, ok := a.selection.Selected()
	if !ok {
		return nil
	}
	text := components.ClipboardText(dayLabel(date), a.selection.Content())
	write := a.clipboard
	return func() tea.Msg {
		if err := write(text); err != nil {
			return statusMsg{msg: "Failed to copy: " + err.Error()}
		}
		return statusMsg{msg: "Copied workouts for " + date}
	}
}

// dayLabel renders an ISO date the way grid cells label it.
func dayLabel(isoDate string) string {
	t, err := time.Parse(api.DateLayout, isoDate)
	if err != nil {
		return isoDate
	}
	return t.Format(calendar.LabelLayout)
}

package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/workout-tui/internal/host"
	"github.com/hy4ri/workout-tui/internal/tui/components"
	"github.com/hy4ri/workout-tui/internal/tui/styles"
)

// View implements tea.Model.
func (a *App) View() string {
	body := a.calendarCmp.View()
	if a.selection.Visible() {
		body = a.detailCmp.View()
	}

	sections := []string{
		a.renderHeader(),
		"",
		body,
		"",
		a.renderStatusBar(),
		a.renderHelp(),
	}

	view := lipgloss.JoinVertical(lipgloss.Left, sections...)
	style := a.styles.App
	if a.width > 0 && a.height > 0 {
		style = style.
			Width(a.width).
			Height(a.height)
	}
	return style.Render(view)
}

func (a *App) renderHeader() string {
	return components.RenderHeader(a.styles, a.host.User(), host.IsDemo(a.host))
}

// calendarOrigin is the screen position of the calendar's top-left corner.
// It matches the layout in View: padding, header, one blank line.
func (a *App) calendarOrigin() (int, int) {
	headerHeight := lipgloss.Height(a.renderHeader())
	return styles.AppPaddingLeft, styles.AppPaddingTop + headerHeight + 1
}

func (a *App) renderStatusBar() string {
	mode := a.styles.Hint.Render(fmt.Sprintf("theme: %s", a.reconciler.Mode()))

	var status string
	switch {
	case a.loading:
		status = a.spinner.View() + " Loading workouts..."
	case a.err != nil:
		status = a.styles.StatusBarError.Render("Error: " + a.err.Error())
	case a.statusMsg != "":
		status = a.styles.StatusBarSuccess.Render(a.statusMsg)
	}

	if status == "" {
		return a.styles.StatusBar.Render(mode)
	}
	return a.styles.StatusBar.Render(status + "  " + mode)
}

func (a *App) renderHelp() string {
	if a.showHelp {
		return a.help.FullHelpView(a.keymap.FullHelp())
	}
	return a.help.View(a.keymap)
}

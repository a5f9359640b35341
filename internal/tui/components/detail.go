package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/workout-tui/internal/api"
	"github.com/hy4ri/workout-tui/internal/tui/styles"
	"github.com/hy4ri/workout-tui/internal/tui/utils"
)

// DetailModel is the modal listing one day's workouts.
type DetailModel struct {
	label    string
	workouts []api.Workout
	viewport viewport.Model
	styles   *styles.Styles
	width    int
	height   int
}

// NewDetail creates a new DetailModel.
func NewDetail(s *styles.Styles) *DetailModel {
	return &DetailModel{
		styles:   s,
		viewport: viewport.New(GridWidth, 10),
	}
}

// SetStyles swaps the styles after a theme change.
func (d *DetailModel) SetStyles(s *styles.Styles) {
	d.styles = s
	d.refresh()
}

// SetContent shows workouts under the given day label.
func (d *DetailModel) SetContent(label string, workouts []api.Workout) {
	d.label = label
	d.workouts = workouts
	d.viewport.GotoTop()
	d.refresh()
}

// SetSize implements Sized.
func (d *DetailModel) SetSize(width, height int) {
	d.width = width
	d.height = height

	// Leave room for the border, padding and title.
	w := width - 8
	if w < 20 {
		w = 20
	}
	if w > 60 {
		w = 60
	}
	h := height - 12
	if h < 3 {
		h = 3
	}
	d.viewport.Width = w
	d.viewport.Height = h
	d.refresh()
}

// Update scrolls the workout list.
func (d *DetailModel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return cmd
}

func (d *DetailModel) refresh() {
	d.viewport.SetContent(d.body())
}

func (d *DetailModel) body() string {
	s := d.styles
	width := d.viewport.Width

	if len(d.workouts) == 0 {
		return s.Hint.Render("No workouts for this day")
	}

	var b strings.Builder
	for i, w := range d.workouts {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(s.WorkoutName.Render(utils.TruncateString(w.Title, width)))
		b.WriteString("\n")
		if len(w.Exercises) == 0 {
			b.WriteString(s.Hint.Render("  no exercises listed"))
			b.WriteString("\n")
			continue
		}
		for n, ex := range w.Exercises {
			line := fmt.Sprintf("%d. %s", n+1, ex)
			b.WriteString(s.Exercise.Render(utils.TruncateString(line, width-2)))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// View renders the modal box.
func (d *DetailModel) View() string {
	s := d.styles
	title := s.DialogTitle.Render(d.label)
	hint := s.Hint.Render("esc close • y copy")
	content := lipgloss.JoinVertical(lipgloss.Left, title, "", d.viewport.View(), "", hint)
	return s.Dialog.Render(content)
}

// ClipboardText formats the day's workouts as plain text.
func ClipboardText(label string, workouts []api.Workout) string {
	var b strings.Builder
	b.WriteString(label)
	b.WriteString("\n")
	for _, w := range workouts {
		b.WriteString("\n")
		b.WriteString(w.Title)
		b.WriteString("\n")
		for _, ex := range w.Exercises {
			b.WriteString("- ")
			b.WriteString(ex)
			b.WriteString("\n")
		}
	}
	return b.String()
}

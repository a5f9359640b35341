// Package styles provides Lip Gloss styles for the TUI, derived from the
// active theme palette.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/workout-tui/internal/theme"
)

// Status colors are fixed; the host theme has no slot for them.
var (
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#D0473D", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
)

// Styles is the full style set for one palette. It is rebuilt whenever the
// theme reconciler applies a palette.
type Styles struct {
	Palette theme.Palette

	// App is the base style for the entire application
	App lipgloss.Style

	// Header
	Avatar    lipgloss.Style
	Name      lipgloss.Style
	Username  lipgloss.Style
	DemoBadge lipgloss.Style

	// Calendar
	Title               lipgloss.Style
	NavButton           lipgloss.Style
	CalendarWeekday     lipgloss.Style
	CalendarDay         lipgloss.Style
	CalendarDayOther    lipgloss.Style
	CalendarDayToday    lipgloss.Style
	CalendarDayWorkout  lipgloss.Style
	CalendarDayCursor   lipgloss.Style
	CalendarDaySelected lipgloss.Style

	// Modal
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style
	WorkoutName lipgloss.Style
	Exercise    lipgloss.Style

	// Status bar
	StatusBar        lipgloss.Style
	StatusBarError   lipgloss.Style
	StatusBarSuccess lipgloss.Style
	Hint             lipgloss.Style
}

// New builds the styles for p.
func New(p theme.Palette) *Styles {
	bg := lipgloss.Color(p.Get(theme.KeyBg))
	text := lipgloss.Color(p.Get(theme.KeyText))
	hint := lipgloss.Color(p.Get(theme.KeyHint))
	link := lipgloss.Color(p.Get(theme.KeyLink))
	button := lipgloss.Color(p.Get(theme.KeyButton))
	buttonText := lipgloss.Color(p.Get(theme.KeyButtonText))
	secondary := lipgloss.Color(p.Get(theme.KeySecondaryBg))

	return &Styles{
		Palette: p,

		App: lipgloss.NewStyle().
			Padding(AppPaddingTop, AppPaddingLeft).
			Background(bg).
			Foreground(text),

		Avatar: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(button).
			Foreground(buttonText),
		Name: lipgloss.NewStyle().
			Bold(true).
			Foreground(text),
		Username: lipgloss.NewStyle().
			Foreground(hint),
		DemoBadge: lipgloss.NewStyle().
			Italic(true).
			Foreground(hint),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(text),
		NavButton: lipgloss.NewStyle().
			Bold(true).
			Foreground(link),
		CalendarWeekday: lipgloss.NewStyle().
			Foreground(hint),
		CalendarDay: lipgloss.NewStyle().
			Foreground(text),
		CalendarDayOther: lipgloss.NewStyle().
			Foreground(hint).
			Faint(true),
		CalendarDayToday: lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(link),
		CalendarDayWorkout: lipgloss.NewStyle().
			Bold(true).
			Foreground(button),
		CalendarDayCursor: lipgloss.NewStyle().
			Background(secondary).
			Foreground(text),
		CalendarDaySelected: lipgloss.NewStyle().
			Bold(true).
			Background(button).
			Foreground(buttonText),

		Dialog: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(button).
			Background(secondary).
			Foreground(text).
			Padding(1, 2),
		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(link),
		WorkoutName: lipgloss.NewStyle().
			Bold(true).
			Foreground(button),
		Exercise: lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(text),

		StatusBar: lipgloss.NewStyle().
			Foreground(hint),
		StatusBarError: lipgloss.NewStyle().
			Bold(true).
			Foreground(ErrorColor),
		StatusBarSuccess: lipgloss.NewStyle().
			Foreground(SuccessColor),
		Hint: lipgloss.NewStyle().
			Foreground(hint),
	}
}

// App padding, used for mouse hit testing.
const (
	AppPaddingTop  = 1
	AppPaddingLeft = 2
)

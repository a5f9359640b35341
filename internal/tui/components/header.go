package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/workout-tui/internal/host"
	"github.com/hy4ri/workout-tui/internal/profile"
	"github.com/hy4ri/workout-tui/internal/tui/styles"
)

// RenderHeader renders the profile line: avatar initials, display name,
// username and a badge in demo mode.
func RenderHeader(s *styles.Styles, u *host.User, demo bool) string {
	parts := []string{
		s.Avatar.Render(profile.Initials(u)),
		" ",
		s.Name.Render(profile.DisplayName(u)),
	}
	if u != nil && u.Username != "" && u.FirstName+u.LastName != "" {
		parts = append(parts, " ", s.Username.Render("@"+u.Username))
	}
	if demo {
		parts = append(parts, "  ", s.DemoBadge.Render("demo mode"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

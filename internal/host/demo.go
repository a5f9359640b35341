package host

import (
	"github.com/hy4ri/workout-tui/internal/theme"
)

// Demo stands in when no host is present. It never emits events.
type Demo struct {
	reg registry
}

// NewDemo creates a demo host.
func NewDemo() *Demo {
	return &Demo{}
}

// Ready implements Host.
func (d *Demo) Ready() {}

// Expand implements Host.
func (d *Demo) Expand() {}

// ColorScheme implements Host.
func (d *Demo) ColorScheme() string { return "dark" }

// ThemeParams implements Host. The demo host supplies no colors, so the
// built-in dark defaults apply.
func (d *Demo) ThemeParams() theme.Params { return theme.Params{} }

// User implements Host.
func (d *Demo) User() *User {
	return &User{FirstName: "Demo", LastName: "User", Username: "demo"}
}

// OnEvent implements Host.
func (d *Demo) OnEvent(event Event, h Handler) HandlerID { return d.reg.on(event, h) }

// OffEvent implements Host.
func (d *Demo) OffEvent(event Event, id HandlerID) { d.reg.off(event, id) }

// IsDemo reports whether h is the demo fallback.
func IsDemo(h Host) bool {
	_, ok := h.(*Demo)
	return ok
}

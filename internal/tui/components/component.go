// Package components provides the rendering pieces of the workout calendar.
package components

// Sized is implemented by components that lay themselves out to the window.
type Sized interface {
	// SetSize updates the component's dimensions.
	SetSize(width, height int)
}

var _ Sized = (*DetailModel)(nil)

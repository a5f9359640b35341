// Package host binds the app to its embedding messaging host: identity,
// theme colors, lifecycle signals and theme-change notifications.
package host

import (
	"sync"

	"github.com/google/uuid"

	"github.com/hy4ri/workout-tui/internal/theme"
)

// Event names a host notification.
type Event string

// EventThemeChanged fires when the host's theme params change.
const EventThemeChanged Event = "themeChanged"

// HandlerID identifies a registered handler for OffEvent.
type HandlerID string

// Handler reacts to a host notification.
type Handler func()

// User is the host-supplied identity.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Username     string
	LanguageCode string
}

// Host is the surface the app consumes from its embedder.
type Host interface {
	// Ready tells the host the app has mounted.
	Ready()
	// Expand asks the host for the full viewport.
	Expand()
	// ColorScheme is "light" or "dark"; it only seeds the initial toggle.
	ColorScheme() string
	// ThemeParams returns the host's current theme fields.
	ThemeParams() theme.Params
	// User returns the identity, or nil when unknown.
	User() *User
	OnEvent(event Event, h Handler) HandlerID
	OffEvent(event Event, id HandlerID)
}

// registry stores event handlers for Host implementations.
type registry struct {
	mu       sync.Mutex
	handlers map[Event]map[HandlerID]Handler
}

func (r *registry) on(event Event, h Handler) HandlerID {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.handlers == nil {
		r.handlers = make(map[Event]map[HandlerID]Handler)
	}
	if r.handlers[event] == nil {
		r.handlers[event] = make(map[HandlerID]Handler)
	}
	id := HandlerID(uuid.New().String())
	r.handlers[event][id] = h
	return id
}

func (r *registry) off(event Event, id HandlerID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handlers[event], id)
}

func (r *registry) emit(event Event) {
	r.mu.Lock()
	hs := make([]Handler, 0, len(r.handlers[event]))
	for _, h := range r.handlers[event] {
		hs = append(hs, h)
	}
	r.mu.Unlock()

	for _, h := range hs {
		h()
	}
}

func (r *registry) count(event Event) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.handlers[event])
}

func cloneParams(p theme.Params) theme.Params {
	out := make(theme.Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

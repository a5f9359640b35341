package host

import (
	"log/slog"
	"maps"
	"sync"

	"github.com/hy4ri/workout-tui/internal/config"
	"github.com/hy4ri/workout-tui/internal/theme"
)

// Watcher delivers re-read configurations. *config.Store implements it.
type Watcher interface {
	Watch(fn func(*config.Config), onErr func(error))
}

// ConfigHost is a host backed by the `host` section of the config file.
// Once Ready is called, edits to host.theme_params are pushed as
// EventThemeChanged notifications.
type ConfigHost struct {
	reg     registry
	watcher Watcher
	log     *slog.Logger

	mu          sync.RWMutex
	colorScheme string
	params      theme.Params
	user        *User
	ready       bool
	expanded    bool
}

// NewConfigHost creates a host from cfg. watcher may be nil to disable pushes.
func NewConfigHost(cfg config.HostConfig, watcher Watcher, log *slog.Logger) *ConfigHost {
	return &ConfigHost{
		watcher:     watcher,
		log:         log,
		colorScheme: cfg.ColorScheme,
		params:      cloneParams(cfg.ThemeParams),
		user:        userFromConfig(cfg.User),
	}
}

// FromConfig picks the configured host, or the demo host when the host
// section is disabled.
func FromConfig(cfg *config.Config, watcher Watcher, log *slog.Logger) Host {
	if !cfg.Host.Enabled {
		return NewDemo()
	}
	return NewConfigHost(cfg.Host, watcher, log)
}

func userFromConfig(u config.UserConfig) *User {
	if u == (config.UserConfig{}) {
		return nil
	}
	return &User{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Username:     u.Username,
		LanguageCode: u.LanguageCode,
	}
}

// Ready implements Host. It starts watching the config file.
func (h *ConfigHost) Ready() {
	h.mu.Lock()
	if h.ready {
		h.mu.Unlock()
		return
	}
	h.ready = true
	h.mu.Unlock()

	h.log.Info("host_ready")
	if h.watcher != nil {
		h.watcher.Watch(h.update, func(err error) {
			h.log.Warn("host_config_reload_failed", "error", err)
		})
	}
}

// Expand implements Host.
func (h *ConfigHost) Expand() {
	h.mu.Lock()
	h.expanded = true
	h.mu.Unlock()
	h.log.Info("host_expand")
}

// Expanded reports whether Expand was called.
func (h *ConfigHost) Expanded() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.expanded
}

// ColorScheme implements Host.
func (h *ConfigHost) ColorScheme() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.colorScheme
}

// ThemeParams implements Host.
func (h *ConfigHost) ThemeParams() theme.Params {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return cloneParams(h.params)
}

// User implements Host.
func (h *ConfigHost) User() *User {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.user == nil {
		return nil
	}
	u := *h.user
	return &u
}

// OnEvent implements Host.
func (h *ConfigHost) OnEvent(event Event, fn Handler) HandlerID { return h.reg.on(event, fn) }

// OffEvent implements Host.
func (h *ConfigHost) OffEvent(event Event, id HandlerID) { h.reg.off(event, id) }

// update applies a re-read config and notifies on theme changes.
func (h *ConfigHost) update(cfg *config.Config) {
	h.mu.Lock()
	changed := !maps.Equal(h.params, theme.Params(cfg.Host.ThemeParams))
	h.params = cloneParams(cfg.Host.ThemeParams)
	h.user = userFromConfig(cfg.Host.User)
	h.mu.Unlock()

	if changed {
		h.log.Info("host_theme_changed", "handlers", h.reg.count(EventThemeChanged))
		h.reg.emit(EventThemeChanged)
	}
}

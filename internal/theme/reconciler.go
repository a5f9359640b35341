package theme

import "strings"

// Mode is the user's light/dark toggle.
type Mode int

const (
	ModeDark Mode = iota
	ModeLight
)

// ParseMode maps a host color scheme ("light" or "dark") to a Mode.
// Anything other than "light" is dark.
func ParseMode(colorScheme string) Mode {
	if strings.EqualFold(strings.TrimSpace(colorScheme), "light") {
		return ModeLight
	}
	return ModeDark
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	if m == ModeLight {
		return "light"
	}
	return "dark"
}

// Applier receives the palette that should be visible.
type Applier interface {
	ApplyPalette(Palette)
}

// ApplierFunc adapts a function to Applier.
type ApplierFunc func(Palette)

// ApplyPalette implements Applier.
func (f ApplierFunc) ApplyPalette(p Palette) { f(p) }

// Reconciler decides which palette is applied. It caches the host-derived
// palette and re-applies from the cache on toggle.
type Reconciler struct {
	mode    Mode
	host    Palette
	applier Applier
}

// NewReconciler derives the host palette from params. Nothing is applied
// until Apply is called.
func NewReconciler(mode Mode, params Params, applier Applier) *Reconciler {
	return &Reconciler{
		mode:    mode,
		host:    Derive(params, DarkDefaults),
		applier: applier,
	}
}

// Mode returns the current toggle state.
func (r *Reconciler) Mode() Mode {
	return r.mode
}

// HostPalette returns the cached host-derived palette.
func (r *Reconciler) HostPalette() Palette {
	return r.host
}

// Active returns the palette for the current mode.
func (r *Reconciler) Active() Palette {
	if r.mode == ModeLight {
		return LightPalette
	}
	return r.host
}

// Apply pushes the active palette to the applier.
func (r *Reconciler) Apply() Palette {
	p := r.Active()
	if r.applier != nil {
		r.applier.ApplyPalette(p)
	}
	return p
}

// Toggle flips the mode and re-applies from the cached palettes.
func (r *Reconciler) Toggle() Palette {
	if r.mode == ModeLight {
		r.mode = ModeDark
	} else {
		r.mode = ModeLight
	}
	return r.Apply()
}

// HostThemeChanged re-derives the cached host palette from the host's
// current params. The result is applied only in dark mode; the return
// value reports whether it was.
func (r *Reconciler) HostThemeChanged(params Params) bool {
	r.host = Derive(params, r.host)
	if r.mode != ModeDark {
		return false
	}
	r.Apply()
	return true
}

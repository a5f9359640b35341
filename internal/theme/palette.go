// Package theme reconciles host-pushed theme colors with built-in palettes.
package theme

import "strings"

// Key names one themed color variable.
type Key int

const (
	KeyBg Key = iota
	KeyText
	KeyHint
	KeyLink
	KeyButton
	KeyButtonText
	KeySecondaryBg

	numKeys
)

// Keys lists every theme key in resolution order.
var Keys = [numKeys]Key{KeyBg, KeyText, KeyHint, KeyLink, KeyButton, KeyButtonText, KeySecondaryBg}

var paramNames = [numKeys]string{
	KeyBg:          "bg_color",
	KeyText:        "text_color",
	KeyHint:        "hint_color",
	KeyLink:        "link_color",
	KeyButton:      "button_color",
	KeyButtonText:  "button_text_color",
	KeySecondaryBg: "secondary_bg_color",
}

// Param returns the host theme field that supplies k.
func (k Key) Param() string {
	if k < 0 || k >= numKeys {
		return ""
	}
	return paramNames[k]
}

// String implements fmt.Stringer.
func (k Key) String() string {
	return k.Param()
}

// Params are the host's theme fields, keyed by field name (e.g. "button_color").
type Params map[string]string

// Palette assigns a color to every Key.
type Palette [numKeys]string

// Get returns the color for k.
func (p Palette) Get(k Key) string {
	if k < 0 || k >= numKeys {
		return ""
	}
	return p[k]
}

// LightPalette is the fixed palette used in light mode. It ignores host colors.
var LightPalette = Palette{
	KeyBg:          "#ffffff",
	KeyText:        "#000000",
	KeyHint:        "#999999",
	KeyLink:        "#2481cc",
	KeyButton:      "#2481cc",
	KeyButtonText:  "#ffffff",
	KeySecondaryBg: "#f1f1f4",
}

// DarkDefaults fills every key the host does not supply in dark mode.
var DarkDefaults = Palette{
	KeyBg:          "#17212b",
	KeyText:        "#f5f5f5",
	KeyHint:        "#708499",
	KeyLink:        "#6ab3f3",
	KeyButton:      "#5288c1",
	KeyButtonText:  "#ffffff",
	KeySecondaryBg: "#232e3c",
}

// Resolve picks the color for k: the host value if present, else the
// previously cached value, else the built-in dark default.
func Resolve(k Key, params Params, cached Palette) string {
	if v := strings.TrimSpace(params[k.Param()]); v != "" {
		return v
	}
	if v := cached.Get(k); v != "" {
		return v
	}
	return DarkDefaults.Get(k)
}

// Derive resolves every key of the host-derived palette.
func Derive(params Params, cached Palette) Palette {
	var p Palette
	for _, k := range Keys {
		p[k] = Resolve(k, params, cached)
	}
	return p
}

// Package theme models the site's colour mode and the assets that follow it.
package theme

import (
	"fmt"
	"strings"
)

// Mode is the user's theme preference.
type Mode string

const (
	Light  Mode = "light"
	Dark   Mode = "dark"
	System Mode = "system"
)

// Parse accepts light, dark or system in any case.
func Parse(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case Light, Dark, System:
		return m, nil
	default:
		return "", fmt.Errorf("unknown theme mode %q", s)
	}
}

// Resolve turns System into Light or Dark using the platform preference.
func (m Mode) Resolve(prefersDark bool) Mode {
	if m != System {
		return m
	}
	if prefersDark {
		return Dark
	}
	return Light
}

// Assets are the per-mode icon and manifest paths swapped in by the page.
type Assets struct {
	Mode           Mode   `json:"mode"`
	Favicon        string `json:"favicon"`
	AppleTouchIcon string `json:"appleTouchIcon"`
	Manifest       string `json:"manifest"`
}

// AssetsFor returns the asset set of a resolved mode. System is treated as
// light, matching an unresolved browser preference.
func AssetsFor(m Mode) Assets {
	if m != Dark {
		m = Light
	}
	base := "/" + string(m) + "_mode"
	return Assets{
		Mode:           m,
		Favicon:        base + ".ico",
		AppleTouchIcon: base + ".png",
		Manifest:       "/manifest-" + string(m) + ".json",
	}
}

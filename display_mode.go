package chatcards

import "fmt"

// DisplayMode selects how the dark/light signal is obtained.
type DisplayMode string

const (
	ModeAuto  DisplayMode = "auto"
	ModeLight DisplayMode = "light"
	ModeDark  DisplayMode = "dark"
)

// ParseDisplayMode parses "auto", "light" or "dark". The empty string is
// treated as auto.
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch DisplayMode(s) {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeLight:
		return ModeLight, nil
	case ModeDark:
		return ModeDark, nil
	default:
		return "", fmt.Errorf("display mode must be one of auto, light, dark, got %q: %w", s, ErrValidation)
	}
}

// Resolve reports whether dark mode is active. detect is only consulted in
// auto mode and may be nil, in which case auto resolves to light.
func (m DisplayMode) Resolve(detect func() bool) bool {
	switch m {
	case ModeDark:
		return true
	case ModeLight:
		return false
	default:
		if detect == nil {
			return false
		}
		return detect()
	}
}

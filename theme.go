package chatcards

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Theme defines semantic color mappings. Foreground tokens are ANSI 256
// color indices (0-15 follow the user's terminal palette); a negative
// index means "no color". Surface fills are hex colors because the card
// background is interpolated between them.
type Theme struct {
	Author       int // Author label
	AvatarBorder int // Avatar circle
	BodyLight    int // Body text in light mode
	BodyDark     int // Body text in dark mode
	Muted        int // Status line, unfocused card border
	Focus        int // Focused card border

	SurfaceLight   string // Collapsed card fill in light mode
	SurfaceDark    string // Collapsed card fill in dark mode
	HighlightLight string // Expanded card fill in light mode
	HighlightDark  string // Expanded card fill in dark mode
}

// DefaultTheme returns the default color mapping.
func DefaultTheme() Theme {
	return Theme{
		Author:       6,
		AvatarBorder: 5,
		BodyLight:    0,
		BodyDark:     15,
		Muted:        8,
		Focus:        4,

		SurfaceLight:   "#FFFFFF",
		SurfaceDark:    "#121212",
		HighlightLight: "#CCCCCC",
		HighlightDark:  "#3A3A3A",
	}
}

// Validate checks that every foreground token is at most 255 and every
// surface fill is a parseable hex color.
func (t Theme) Validate() error {
	indices := []struct {
		name  string
		value int
	}{
		{"author", t.Author},
		{"avatar_border", t.AvatarBorder},
		{"body_light", t.BodyLight},
		{"body_dark", t.BodyDark},
		{"muted", t.Muted},
		{"focus", t.Focus},
	}
	for _, c := range indices {
		if c.value > 255 {
			return fmt.Errorf("%s: ANSI index must be at most 255, got %d: %w", c.name, c.value, ErrValidation)
		}
	}

	fills := []struct {
		name, value string
	}{
		{"surface_light", t.SurfaceLight},
		{"surface_dark", t.SurfaceDark},
		{"highlight_light", t.HighlightLight},
		{"highlight_dark", t.HighlightDark},
	}
	for _, f := range fills {
		if _, err := colorful.Hex(f.value); err != nil {
			return fmt.Errorf("%s: invalid hex color %q: %w", f.name, f.value, ErrValidation)
		}
	}
	return nil
}

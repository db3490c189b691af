package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/chatcards"
	"github.com/lucasb-eyer/go-colorful"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles struct {
	Author    lipgloss.Style
	Avatar    lipgloss.Style
	BodyLight lipgloss.Style
	BodyDark  lipgloss.Style
	Muted     lipgloss.Style
	Card      lipgloss.Style

	FocusBorder lipgloss.TerminalColor
	IdleBorder  lipgloss.TerminalColor

	surfaceLight, surfaceDark     string
	highlightLight, highlightDark string
}

// NewStyles creates Styles from a Theme.
func NewStyles(t chatcards.Theme) Styles {
	return Styles{
		Author:    lipgloss.NewStyle().Foreground(ansiColor(t.Author)).Bold(true),
		Avatar:    lipgloss.NewStyle().Foreground(ansiColor(t.AvatarBorder)).Bold(true),
		BodyLight: lipgloss.NewStyle().Foreground(ansiColor(t.BodyLight)),
		BodyDark:  lipgloss.NewStyle().Foreground(ansiColor(t.BodyDark)),
		Muted:     lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),

		FocusBorder: ansiColor(t.Focus),
		IdleBorder:  ansiColor(t.Muted),

		surfaceLight:   t.SurfaceLight,
		surfaceDark:    t.SurfaceDark,
		highlightLight: t.HighlightLight,
		highlightDark:  t.HighlightDark,
	}
}

// Body returns the body text style for the given display mode.
func (s Styles) Body(dark bool) lipgloss.Style {
	if dark {
		return s.BodyDark
	}
	return s.BodyLight
}

// Surface returns the card fill for the given display mode at expansion
// progress p, where 0 is the collapsed surface and 1 the expanded highlight.
func (s Styles) Surface(dark bool, p float64) lipgloss.TerminalColor {
	from, to := s.surfaceLight, s.highlightLight
	if dark {
		from, to = s.surfaceDark, s.highlightDark
	}
	return blend(from, to, p)
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

// blend interpolates two hex colors in Lab space. Endpoints are returned
// verbatim; an unparseable color disables interpolation.
func blend(from, to string, p float64) lipgloss.TerminalColor {
	switch {
	case p <= 0:
		return hexColor(from)
	case p >= 1:
		return hexColor(to)
	}
	a, err := colorful.Hex(from)
	if err != nil {
		return hexColor(to)
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return hexColor(from)
	}
	return lipgloss.Color(a.BlendLab(b, p).Clamped().Hex())
}

func hexColor(hex string) lipgloss.TerminalColor {
	if hex == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(hex)
}

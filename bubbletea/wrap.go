package bubbletea

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
)

// wrapCache remembers the wrapped body for the last width it was asked
// for. A card's body never changes, so one entry is enough.
type wrapCache struct {
	width int
	lines []string
}

func (c *wrapCache) get(width int) ([]string, bool) {
	return c.lines, c.lines != nil && c.width == width
}

func (c *wrapCache) set(width int, lines []string) {
	c.width = width
	c.lines = lines
}

// Widths below are measured with ansi.StringWidth so they agree with how
// lipgloss lays the text out.

// wrap breaks text into lines no wider than width cells. Explicit newlines
// always start a new line. Words wider than width are split at grapheme
// boundaries.
func wrap(text string, width int) []string {
	if width <= 0 {
		return strings.Split(text, "\n")
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(para, width)...)
	}
	return lines
}

func wrapParagraph(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var (
		lines []string
		line  strings.Builder
		lineW int
	)
	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineW = 0
	}

	for _, word := range words {
		ww := ansi.StringWidth(word)
		if lineW > 0 && lineW+1+ww <= width {
			line.WriteByte(' ')
			line.WriteString(word)
			lineW += 1 + ww
			continue
		}
		if lineW > 0 {
			flush()
		}
		for ww > width {
			head, rest := splitAtWidth(word, width)
			lines = append(lines, head)
			word = rest
			ww = ansi.StringWidth(word)
		}
		line.WriteString(word)
		lineW = ww
	}
	if lineW > 0 {
		flush()
	}
	return lines
}

// splitAtWidth returns the longest grapheme prefix of s that fits in width
// cells and the remainder. At least one grapheme is always consumed.
func splitAtWidth(s string, width int) (string, string) {
	var (
		g   = uniseg.NewGraphemes(s)
		w   int
		end int
	)
	for g.Next() {
		gw := ansi.StringWidth(g.Str())
		if w+gw > width && end > 0 {
			break
		}
		w += gw
		_, end = g.Positions()
	}
	return s[:end], s[end:]
}

// clampLine collapses text onto a single line of at most width cells,
// marking any cut with an ellipsis.
func clampLine(text string, width int) string {
	flat := strings.Join(strings.Fields(text), " ")
	if width <= 0 {
		return flat
	}
	return ansi.Truncate(flat, width, "…")
}

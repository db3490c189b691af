package bubbletea

import (
	"maps"
	"slices"
)

// NextFrame returns the frame message the card is currently waiting for.
func NextFrame(c *MessageCard) FrameMsg {
	return FrameMsg{ID: c.id, tag: c.tag}
}

// StaleFrame returns a frame message left over from the card's previous toggle.
func StaleFrame(c *MessageCard) FrameMsg {
	return FrameMsg{ID: c.id, tag: c.tag - 1}
}

// Progress exports the card's fill animation progress for testing.
func Progress(c *MessageCard) float64 {
	return c.anim.progress()
}

// Realized returns the indices of realized cards in ascending order.
func Realized(m Model) []int {
	return slices.Sorted(maps.Keys(m.cards))
}

// Offset exports the index of the first visible card for testing.
func Offset(m Model) int {
	return m.offset
}

// Wrap exports wrap for testing.
func Wrap(text string, width int) []string {
	return wrap(text, width)
}

// ClampLine exports clampLine for testing.
func ClampLine(text string, width int) string {
	return clampLine(text, width)
}

// AvatarText exports avatarText for testing.
func AvatarText(author string) string {
	return avatarText(author)
}

// LineOffset exports how many rows of the top card are scrolled off screen.
func LineOffset(m Model) int {
	return m.lineOffset
}

// Measure exports the height the model assumes for card i.
func Measure(m Model, i int) int {
	return m.measure(i)
}

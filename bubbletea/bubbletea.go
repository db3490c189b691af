// Package bubbletea provides a Bubble Tea TUI for a chat-card list.
package bubbletea

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// Config holds the options New accepts beyond the messages and theme.
type Config struct {
	// Dark is the initial display-mode signal. It is resolved by the caller.
	Dark bool
	// NoAnimation makes cards jump between fill colors instead of easing.
	NoAnimation bool
	// Retain is how many cards beyond the visible ones stay realized on
	// each side. Negative values are treated as zero.
	Retain int
	// Logger receives debug diagnostics. Nil discards them.
	Logger *slog.Logger
}

// Run creates and runs the Bubble Tea TUI program. It blocks until the program
// exits. Cancelling ctx quits the program.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// ToggleMsg tells a card to flip between collapsed and expanded. Sent to
// the focused card when the user taps it.
type ToggleMsg struct{}

// FrameMsg advances a card's fill animation. Frames addressed to another
// card, or left over from an earlier toggle, are ignored.
type FrameMsg struct {
	ID  int
	tag int
}

// DisplayModeMsg replaces the display-mode signal the model renders with.
type DisplayModeMsg struct {
	Dark bool
}

package bubbletea_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/chatcards"
	bt "github.com/fwojciec/chatcards/bubbletea"
	"github.com/stretchr/testify/require"
)

const longBody = "A very long message that would wrap onto multiple lines if fully shown"

// scenarioMessages is the two-message conversation used across tests.
func scenarioMessages() []chatcards.Message {
	return []chatcards.Message{
		{Author: "Alice", Body: "Hi"},
		{Author: "Bob", Body: longBody},
	}
}

// manyMessages returns n short messages.
func manyMessages(n int) []chatcards.Message {
	msgs := make([]chatcards.Message, n)
	for i := range msgs {
		msgs[i] = chatcards.Message{Author: "User", Body: "message body"}
	}
	return msgs
}

// initModel creates a model over msgs and sends a WindowSizeMsg to
// initialize the viewport.
func initModel(t *testing.T, msgs []chatcards.Message, cfg bt.Config) bt.Model {
	t.Helper()
	return initModelWithSize(t, msgs, cfg, 40, 24)
}

// initModelWithSize creates a model with a custom terminal size.
func initModelWithSize(t *testing.T, msgs []chatcards.Message, cfg bt.Config, width, height int) bt.Model {
	t.Helper()
	m := bt.New(msgs, chatcards.DefaultTheme(), cfg)
	return updateModel(t, m, tea.WindowSizeMsg{Width: width, Height: height})
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

func newCard(msg chatcards.Message) *bt.MessageCard {
	return bt.NewMessageCard(msg, bt.NewStyles(chatcards.DefaultTheme()), false)
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// Package chatcards holds the domain types for a terminal chat-card list:
// messages, the preset theme and the display-mode signal. Rendering lives
// in the bubbletea subpackage; fixture and theme file codecs live in json
// and yaml.
package chatcards

// Message is a single chat entry. It is a plain value and is never mutated
// after construction.
type Message struct {
	Author string
	Body   string
}

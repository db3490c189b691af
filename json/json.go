// Package json reads and writes message fixtures: the JSON files that seed
// a conversation in place of the built-in sample.
package json

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/chatcards"
)

const version = 1

// envelope is the v1 wire format for a message fixture.
type envelope struct {
	Version  int          `json:"version"`
	Messages []messageDTO `json:"messages"`
}

// messageDTO is the JSON representation of a Message.
type messageDTO struct {
	Author string `json:"author"`
	Body   string `json:"body"`
}

// MarshalMessages serializes messages to JSON in v1 envelope format.
func MarshalMessages(msgs []chatcards.Message) ([]byte, error) {
	env := envelope{
		Version:  version,
		Messages: make([]messageDTO, len(msgs)),
	}
	for i, m := range msgs {
		env.Messages[i] = messageDTO{Author: m.Author, Body: m.Body}
	}
	return json.MarshalIndent(env, "", "  ")
}

// UnmarshalMessages deserializes and validates messages from JSON in v1
// envelope format.
func UnmarshalMessages(data []byte) ([]chatcards.Message, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != version {
		return nil, fmt.Errorf("unsupported envelope version: %d", env.Version)
	}
	msgs := make([]chatcards.Message, len(env.Messages))
	for i, dto := range env.Messages {
		msgs[i] = chatcards.Message{Author: dto.Author, Body: dto.Body}
	}
	if err := chatcards.ValidateMessages(msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// Write writes messages as a fixture to w.
func Write(w io.Writer, msgs []chatcards.Message) error {
	data, err := MarshalMessages(msgs)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// Save writes messages to a fixture file, creating parent directories as needed.
func Save(path string, msgs []chatcards.Message) error {
	data, err := MarshalMessages(msgs)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Load reads messages from a fixture file.
func Load(path string) ([]chatcards.Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalMessages(data)
}

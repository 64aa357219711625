package model

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Author string

const (
	AuthorUser      Author = "user"
	AuthorAssistant Author = "assistant"
)

// Message is one entry in the append-only chat log. Insertion order is
// display order; messages are never reordered or deduplicated.
type Message struct {
	ID        string
	Text      string
	Author    Author
	CreatedAt time.Time
}

// NewMessage assigns a ULID so two messages created within the same clock
// tick still get distinct, ordered IDs.
func NewMessage(author Author, text string) Message {
	return Message{
		ID:        ulid.Make().String(),
		Text:      text,
		Author:    author,
		CreatedAt: time.Now(),
	}
}

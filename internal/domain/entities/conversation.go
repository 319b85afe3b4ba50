package entities

import (
	"time"
)

// Conversation is a named thread grouping an ordered sequence of messages.
// Conversations are created once and never mutated or deleted; the ID is
// assigned by the store at insert time.
type Conversation struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedBy string    `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewConversation(title, createdBy string) *Conversation {
	return &Conversation{
		Title:     title,
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
	}
}

package events

import (
	"github.com/drujensen/aichat/internal/domain/entities"
	"github.com/kelindar/event"
)

// Event types
const (
	MessageAddedEventType uint32 = 1
)

// MessageAddedEventData wraps a message persisted to a conversation
type MessageAddedEventData struct {
	ConversationID string
	Message        *entities.Message
}

// Type implements the Event interface
func (m MessageAddedEventData) Type() uint32 {
	return MessageAddedEventType
}

// PublishMessageAdded publishes a message added event
func PublishMessageAdded(message *entities.Message) {
	event.Emit(MessageAddedEventData{ConversationID: message.ConversationID, Message: message})
}

// SubscribeToMessageAdded subscribes to message added events
func SubscribeToMessageAdded(handler func(data MessageAddedEventData)) func() {
	return event.On(handler)
}

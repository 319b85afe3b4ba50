package entities

import (
	"testing"
	"time"
)

func TestNewConversation(t *testing.T) {
	title := "Weekly sync"
	createdBy := "alice"

	conversation := NewConversation(title, createdBy)

	if conversation.ID != "" {
		t.Errorf("Expected ID to be empty before save, got %s", conversation.ID)
	}
	if conversation.Title != title {
		t.Errorf("Expected title %s, got %s", title, conversation.Title)
	}
	if conversation.CreatedBy != createdBy {
		t.Errorf("Expected created by %s, got %s", createdBy, conversation.CreatedBy)
	}
	if conversation.CreatedAt.IsZero() {
		t.Errorf("Expected created at to be set")
	}
	if time.Since(conversation.CreatedAt) > time.Minute {
		t.Errorf("Expected created at to be recent, got %v", conversation.CreatedAt)
	}
}

func TestNewConversation_WithoutCreator(t *testing.T) {
	conversation := NewConversation("Untitled", "")

	if conversation.CreatedBy != "" {
		t.Errorf("Expected created by to be empty, got %s", conversation.CreatedBy)
	}
}

func TestNewMessage(t *testing.T) {
	conversationID := "test-conversation-id"
	role := RoleUser
	content := "Hello world"

	message := NewMessage(conversationID, role, content)

	if message.ID != "" {
		t.Errorf("Expected ID to be empty before save, got %s", message.ID)
	}
	if message.ConversationID != conversationID {
		t.Errorf("Expected conversation ID %s, got %s", conversationID, message.ConversationID)
	}
	if message.Role != role {
		t.Errorf("Expected role %s, got %s", role, message.Role)
	}
	if message.Content != content {
		t.Errorf("Expected content %s, got %s", content, message.Content)
	}
	if message.CreatedAt.IsZero() {
		t.Errorf("Expected created at to be set")
	}
}

func TestRole_Valid(t *testing.T) {
	tests := []struct {
		role  Role
		valid bool
	}{
		{RoleUser, true},
		{RoleAssistant, true},
		{Role("system"), false},
		{Role("USER"), false},
		{Role(""), false},
	}

	for _, tt := range tests {
		if got := tt.role.Valid(); got != tt.valid {
			t.Errorf("Expected Valid() for role %q to be %v, got %v", tt.role, tt.valid, got)
		}
	}
}

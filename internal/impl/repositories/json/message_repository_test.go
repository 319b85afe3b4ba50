package repositories_json

import (
	"context"
	"testing"

	"github.com/drujensen/aichat/internal/domain/entities"

	"github.com/google/uuid"
)

func TestJsonMessageRepository_CreateAssignsUUID(t *testing.T) {
	repo, err := NewJSONMessageRepository(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	message := entities.NewMessage(uuid.New().String(), entities.RoleUser, "hello world")
	if err := repo.CreateMessage(context.Background(), message); err != nil {
		t.Fatal(err)
	}

	if message.ID == "" {
		t.Fatal("Expected store to assign an ID")
	}
	if _, err := uuid.Parse(message.ID); err != nil {
		t.Errorf("Expected a UUID, got %s", message.ID)
	}
	if message.CreatedAt.IsZero() {
		t.Errorf("Expected created at to be set by the store")
	}
}

func TestJsonMessageRepository_ListOldestFirstPerConversation(t *testing.T) {
	repo, err := NewJSONMessageRepository(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	conversationID := uuid.New().String()
	otherID := uuid.New().String()

	contents := []string{"first", "second", "third"}
	for _, content := range contents {
		message := entities.NewMessage(conversationID, entities.RoleUser, content)
		if err := repo.CreateMessage(context.Background(), message); err != nil {
			t.Fatal(err)
		}
	}
	stray := entities.NewMessage(otherID, entities.RoleUser, "unrelated")
	if err := repo.CreateMessage(context.Background(), stray); err != nil {
		t.Fatal(err)
	}

	messages, err := repo.ListMessages(context.Background(), conversationID)
	if err != nil {
		t.Fatal(err)
	}

	if len(messages) != 3 {
		t.Fatalf("Expected 3 messages, got %d", len(messages))
	}
	for i, content := range contents {
		if messages[i].Content != content {
			t.Errorf("Expected %s at position %d, got %s", content, i, messages[i].Content)
		}
		if messages[i].ConversationID != conversationID {
			t.Errorf("Expected only messages for %s, got one for %s", conversationID, messages[i].ConversationID)
		}
	}
}

func TestJsonMessageRepository_ListUnknownConversationIsEmpty(t *testing.T) {
	repo, err := NewJSONMessageRepository(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	messages, err := repo.ListMessages(context.Background(), uuid.New().String())
	if err != nil {
		t.Fatal(err)
	}
	if len(messages) != 0 {
		t.Errorf("Expected no messages, got %d", len(messages))
	}
}

func TestJsonMessageRepository_RoundTripAcrossReopen(t *testing.T) {
	dataDir := t.TempDir()
	repo, err := NewJSONMessageRepository(dataDir)
	if err != nil {
		t.Fatal(err)
	}

	conversationID := uuid.New().String()
	message := entities.NewMessage(conversationID, entities.RoleAssistant, "I'm here! Ask me anything.")
	if err := repo.CreateMessage(context.Background(), message); err != nil {
		t.Fatal(err)
	}

	reopened, err := NewJSONMessageRepository(dataDir)
	if err != nil {
		t.Fatal(err)
	}

	messages, err := reopened.ListMessages(context.Background(), conversationID)
	if err != nil {
		t.Fatal(err)
	}
	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}
	if messages[0].Role != entities.RoleAssistant {
		t.Errorf("Expected assistant role, got %s", messages[0].Role)
	}
	if messages[0].Content != message.Content {
		t.Errorf("Expected content %q, got %q", message.Content, messages[0].Content)
	}
}

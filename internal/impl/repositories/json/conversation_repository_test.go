package repositories_json

import (
	"context"
	"testing"

	"github.com/drujensen/aichat/internal/domain/entities"
	"github.com/drujensen/aichat/internal/domain/errors"

	"github.com/google/uuid"
)

func TestJsonConversationRepository_CreateAssignsUUID(t *testing.T) {
	repo, err := NewJSONConversationRepository(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	conversation := entities.NewConversation("First chat", "alice")
	if err := repo.CreateConversation(context.Background(), conversation); err != nil {
		t.Fatal(err)
	}

	if conversation.ID == "" {
		t.Fatal("Expected store to assign an ID")
	}
	if _, err := uuid.Parse(conversation.ID); err != nil {
		t.Errorf("Expected a UUID, got %s", conversation.ID)
	}
	if conversation.CreatedAt.IsZero() {
		t.Errorf("Expected created at to be set by the store")
	}
}

func TestJsonConversationRepository_GetRoundTrip(t *testing.T) {
	dataDir := t.TempDir()
	repo, err := NewJSONConversationRepository(dataDir)
	if err != nil {
		t.Fatal(err)
	}

	conversation := entities.NewConversation("Persisted", "bob")
	if err := repo.CreateConversation(context.Background(), conversation); err != nil {
		t.Fatal(err)
	}

	// Reopen from disk to exercise load.
	reopened, err := NewJSONConversationRepository(dataDir)
	if err != nil {
		t.Fatal(err)
	}

	got, err := reopened.GetConversation(context.Background(), conversation.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "Persisted" {
		t.Errorf("Expected title 'Persisted', got %s", got.Title)
	}
	if got.CreatedBy != "bob" {
		t.Errorf("Expected created by 'bob', got %s", got.CreatedBy)
	}
}

func TestJsonConversationRepository_GetNotFound(t *testing.T) {
	repo, err := NewJSONConversationRepository(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	_, err = repo.GetConversation(context.Background(), uuid.New().String())
	if err == nil {
		t.Fatal("Expected an error for unknown conversation")
	}
	if _, ok := err.(*errors.NotFoundError); !ok {
		t.Errorf("Expected NotFoundError, got %T", err)
	}
}

func TestJsonConversationRepository_ListNewestFirst(t *testing.T) {
	repo, err := NewJSONConversationRepository(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	first := entities.NewConversation("first", "")
	second := entities.NewConversation("second", "")
	third := entities.NewConversation("third", "")
	for _, c := range []*entities.Conversation{first, second, third} {
		if err := repo.CreateConversation(context.Background(), c); err != nil {
			t.Fatal(err)
		}
	}

	conversations, err := repo.ListConversations(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(conversations) != 3 {
		t.Fatalf("Expected 3 conversations, got %d", len(conversations))
	}
	for i, title := range []string{"third", "second", "first"} {
		if conversations[i].Title != title {
			t.Errorf("Expected %s at position %d, got %s", title, i, conversations[i].Title)
		}
	}
}

func TestJsonConversationRepository_ValidID(t *testing.T) {
	repo, err := NewJSONConversationRepository(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if !repo.ValidID(uuid.New().String()) {
		t.Errorf("Expected a fresh UUID to be valid")
	}
	for _, id := range []string{"", "not-a-uuid", "0123456789abcdef01234567"} {
		if repo.ValidID(id) {
			t.Errorf("Expected %q to be invalid", id)
		}
	}
}

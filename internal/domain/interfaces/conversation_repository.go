package interfaces

import (
	"context"

	"github.com/drujensen/aichat/internal/domain/entities"
)

type ConversationRepository interface {
	CreateConversation(ctx context.Context, conversation *entities.Conversation) error
	GetConversation(ctx context.Context, id string) (*entities.Conversation, error)
	ListConversations(ctx context.Context) ([]*entities.Conversation, error)

	// ValidID reports whether id is well-formed for this store's
	// identifier format. It never touches the store.
	ValidID(id string) bool
}

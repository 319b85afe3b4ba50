package interfaces

import (
	"context"

	"github.com/drujensen/aichat/internal/domain/entities"
)

type MessageRepository interface {
	CreateMessage(ctx context.Context, message *entities.Message) error
	ListMessages(ctx context.Context, conversationID string) ([]*entities.Message, error)
}

package services

import (
	"context"
	"strings"

	"github.com/drujensen/aichat/internal/domain/entities"
	"github.com/drujensen/aichat/internal/domain/errors"
	"github.com/drujensen/aichat/internal/domain/interfaces"

	"go.uber.org/zap"
)

type ConversationService interface {
	CreateConversation(ctx context.Context, title, createdBy string) (*entities.Conversation, error)
	GetConversation(ctx context.Context, id string) (*entities.Conversation, error)
	ListConversations(ctx context.Context) ([]*entities.Conversation, error)
}

type conversationService struct {
	conversationRepo interfaces.ConversationRepository
	logger           *zap.Logger
}

func NewConversationService(conversationRepo interfaces.ConversationRepository, logger *zap.Logger) *conversationService {
	return &conversationService{
		conversationRepo: conversationRepo,
		logger:           logger,
	}
}

func (s *conversationService) CreateConversation(ctx context.Context, title, createdBy string) (*entities.Conversation, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.ValidationErrorf("title is required")
	}

	conversation := entities.NewConversation(title, createdBy)
	if err := s.conversationRepo.CreateConversation(ctx, conversation); err != nil {
		return nil, err
	}

	s.logger.Info("Created conversation",
		zap.String("id", conversation.ID),
		zap.String("title", conversation.Title))

	return conversation, nil
}

func (s *conversationService) GetConversation(ctx context.Context, id string) (*entities.Conversation, error) {
	if !s.conversationRepo.ValidID(id) {
		return nil, errors.InvalidIDErrorf("invalid conversation id: %s", id)
	}

	return s.conversationRepo.GetConversation(ctx, id)
}

func (s *conversationService) ListConversations(ctx context.Context) ([]*entities.Conversation, error) {
	return s.conversationRepo.ListConversations(ctx)
}

var _ ConversationService = &conversationService{}

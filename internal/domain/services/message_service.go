package services

import (
	"context"

	"github.com/drujensen/aichat/internal/domain/entities"
	"github.com/drujensen/aichat/internal/domain/errors"
	"github.com/drujensen/aichat/internal/domain/events"
	"github.com/drujensen/aichat/internal/domain/interfaces"

	"github.com/pkoukk/tiktoken-go"
	"go.uber.org/zap"
)

type MessageService interface {
	ListMessages(ctx context.Context, conversationID string) ([]*entities.Message, error)
	AddMessage(ctx context.Context, conversationID string, role entities.Role, content string) (*entities.Message, error)
	SendMessage(ctx context.Context, conversationID, content string) (*entities.Message, error)
}

type messageService struct {
	conversationRepo interfaces.ConversationRepository
	messageRepo      interfaces.MessageRepository
	replyGenerator   interfaces.ReplyGenerator
	logger           *zap.Logger
}

func NewMessageService(
	conversationRepo interfaces.ConversationRepository,
	messageRepo interfaces.MessageRepository,
	replyGenerator interfaces.ReplyGenerator,
	logger *zap.Logger,
) *messageService {
	return &messageService{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		replyGenerator:   replyGenerator,
		logger:           logger,
	}
}

func (s *messageService) ListMessages(ctx context.Context, conversationID string) ([]*entities.Message, error) {
	if !s.conversationRepo.ValidID(conversationID) {
		return nil, errors.InvalidIDErrorf("invalid conversation id: %s", conversationID)
	}

	// No existence check here: a well-formed id for an unknown
	// conversation yields an empty list, not an error.
	return s.messageRepo.ListMessages(ctx, conversationID)
}

func (s *messageService) AddMessage(ctx context.Context, conversationID string, role entities.Role, content string) (*entities.Message, error) {
	if !s.conversationRepo.ValidID(conversationID) {
		return nil, errors.InvalidIDErrorf("invalid conversation id: %s", conversationID)
	}
	if !role.Valid() {
		return nil, errors.ValidationErrorf("role must be user or assistant, got %q", role)
	}

	if _, err := s.conversationRepo.GetConversation(ctx, conversationID); err != nil {
		return nil, err
	}

	message := entities.NewMessage(conversationID, role, content)
	if err := s.messageRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	events.PublishMessageAdded(message)

	return message, nil
}

func (s *messageService) SendMessage(ctx context.Context, conversationID, content string) (*entities.Message, error) {
	if !s.conversationRepo.ValidID(conversationID) {
		return nil, errors.InvalidIDErrorf("invalid conversation id: %s", conversationID)
	}

	if _, err := s.conversationRepo.GetConversation(ctx, conversationID); err != nil {
		return nil, err
	}

	userMessage := entities.NewMessage(conversationID, entities.RoleUser, content)
	if err := s.messageRepo.CreateMessage(ctx, userMessage); err != nil {
		return nil, err
	}
	events.PublishMessageAdded(userMessage)

	reply := s.replyGenerator.GenerateReply(content)
	s.logTokenUsage(content, reply)

	// The user message stays persisted even when this insert fails;
	// there is no compensating rollback.
	assistantMessage := entities.NewMessage(conversationID, entities.RoleAssistant, reply)
	if err := s.messageRepo.CreateMessage(ctx, assistantMessage); err != nil {
		return nil, err
	}
	events.PublishMessageAdded(assistantMessage)

	return assistantMessage, nil
}

func (s *messageService) logTokenUsage(prompt, reply string) {
	ce := s.logger.Check(zap.DebugLevel, "Generated reply")
	if ce == nil {
		return
	}

	enc, err := tiktoken.EncodingForModel("gpt-4")
	if err != nil {
		return
	}

	ce.Write(
		zap.Int("prompt_tokens", len(enc.Encode(prompt, nil, nil))),
		zap.Int("reply_tokens", len(enc.Encode(reply, nil, nil))),
	)
}

var _ MessageService = &messageService{}

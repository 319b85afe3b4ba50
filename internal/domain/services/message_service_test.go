package services

import (
	"context"
	"testing"

	"github.com/drujensen/aichat/internal/domain/entities"
	"github.com/drujensen/aichat/internal/domain/errors"
	"github.com/drujensen/aichat/internal/impl/integrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Mock repository for testing
type mockMessageRepository struct {
	mock.Mock
}

func (m *mockMessageRepository) CreateMessage(ctx context.Context, message *entities.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *mockMessageRepository) ListMessages(ctx context.Context, conversationID string) ([]*entities.Message, error) {
	args := m.Called(ctx, conversationID)
	if args.Get(0) != nil {
		return args.Get(0).([]*entities.Message), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestMessageService_ListMessages(t *testing.T) {
	ctx := context.Background()

	t.Run("valid id", func(t *testing.T) {
		mockConvRepo := new(mockConversationRepository)
		mockMsgRepo := new(mockMessageRepository)
		service := NewMessageService(mockConvRepo, mockMsgRepo, integrations.NewReplyBot(), zap.NewNop())

		expected := []*entities.Message{
			{ID: "m1", ConversationID: "conv-1", Role: entities.RoleUser, Content: "hello"},
		}
		mockConvRepo.On("ValidID", "conv-1").Return(true).Once()
		mockMsgRepo.On("ListMessages", ctx, "conv-1").Return(expected, nil).Once()

		messages, err := service.ListMessages(ctx, "conv-1")

		assert.NoError(t, err)
		assert.Equal(t, expected, messages)
		mockMsgRepo.AssertExpectations(t)
	})

	t.Run("malformed id", func(t *testing.T) {
		mockConvRepo := new(mockConversationRepository)
		mockMsgRepo := new(mockMessageRepository)
		service := NewMessageService(mockConvRepo, mockMsgRepo, integrations.NewReplyBot(), zap.NewNop())

		mockConvRepo.On("ValidID", "bogus").Return(false).Once()

		messages, err := service.ListMessages(ctx, "bogus")

		assert.Error(t, err)
		assert.IsType(t, &errors.InvalidIDError{}, err)
		assert.Nil(t, messages)
		mockMsgRepo.AssertNotCalled(t, "ListMessages", mock.Anything, mock.Anything)
	})

	t.Run("unknown conversation yields empty list without lookup", func(t *testing.T) {
		mockConvRepo := new(mockConversationRepository)
		mockMsgRepo := new(mockMessageRepository)
		service := NewMessageService(mockConvRepo, mockMsgRepo, integrations.NewReplyBot(), zap.NewNop())

		mockConvRepo.On("ValidID", "conv-9").Return(true).Once()
		mockMsgRepo.On("ListMessages", ctx, "conv-9").Return([]*entities.Message{}, nil).Once()

		messages, err := service.ListMessages(ctx, "conv-9")

		assert.NoError(t, err)
		assert.Empty(t, messages)
		mockConvRepo.AssertNotCalled(t, "GetConversation", mock.Anything, mock.Anything)
	})
}

func TestMessageService_AddMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("valid message", func(t *testing.T) {
		mockConvRepo := new(mockConversationRepository)
		mockMsgRepo := new(mockMessageRepository)
		service := NewMessageService(mockConvRepo, mockMsgRepo, integrations.NewReplyBot(), zap.NewNop())

		mockConvRepo.On("ValidID", "conv-1").Return(true).Once()
		mockConvRepo.On("GetConversation", ctx, "conv-1").
			Return(&entities.Conversation{ID: "conv-1", Title: "Support"}, nil).
			Once()
		mockMsgRepo.On("CreateMessage", ctx, mock.AnythingOfType("*entities.Message")).
			Return(nil).
			Run(func(args mock.Arguments) {
				args.Get(1).(*entities.Message).ID = "m-1"
			}).
			Once()

		message, err := service.AddMessage(ctx, "conv-1", entities.RoleUser, "hello there")

		assert.NoError(t, err)
		assert.Equal(t, "m-1", message.ID)
		assert.Equal(t, "conv-1", message.ConversationID)
		assert.Equal(t, entities.RoleUser, message.Role)
		assert.Equal(t, "hello there", message.Content)
		mockConvRepo.AssertExpectations(t)
		mockMsgRepo.AssertExpectations(t)
	})

	t.Run("malformed id", func(t *testing.T) {
		mockConvRepo := new(mockConversationRepository)
		mockMsgRepo := new(mockMessageRepository)
		service := NewMessageService(mockConvRepo, mockMsgRepo, integrations.NewReplyBot(), zap.NewNop())

		mockConvRepo.On("ValidID", "bogus").Return(false).Once()

		message, err := service.AddMessage(ctx, "bogus", entities.RoleUser, "hello")

		assert.Error(t, err)
		assert.IsType(t, &errors.InvalidIDError{}, err)
		assert.Nil(t, message)
		mockConvRepo.AssertNotCalled(t, "GetConversation", mock.Anything, mock.Anything)
		mockMsgRepo.AssertNotCalled(t, "CreateMessage", mock.Anything, mock.Anything)
	})

	t.Run("invalid role", func(t *testing.T) {
		mockConvRepo := new(mockConversationRepository)
		mockMsgRepo := new(mockMessageRepository)
		service := NewMessageService(mockConvRepo, mockMsgRepo, integrations.NewReplyBot(), zap.NewNop())

		mockConvRepo.On("ValidID", "conv-1").Return(true).Once()

		message, err := service.AddMessage(ctx, "conv-1", entities.Role("system"), "hello")

		assert.Error(t, err)
		assert.IsType(t, &errors.ValidationError{}, err)
		assert.Nil(t, message)
		mockConvRepo.AssertNotCalled(t, "GetConversation", mock.Anything, mock.Anything)
		mockMsgRepo.AssertNotCalled(t, "CreateMessage", mock.Anything, mock.Anything)
	})

	t.Run("unknown conversation", func(t *testing.T) {
		mockConvRepo := new(mockConversationRepository)
		mockMsgRepo := new(mockMessageRepository)
		service := NewMessageService(mockConvRepo, mockMsgRepo, integrations.NewReplyBot(), zap.NewNop())

		mockConvRepo.On("ValidID", "conv-9").Return(true).Once()
		mockConvRepo.On("GetConversation", ctx, "conv-9").
			Return(nil, errors.NotFoundErrorf("conversation not found: conv-9")).
			Once()

		message, err := service.AddMessage(ctx, "conv-9", entities.RoleUser, "hello")

		assert.Error(t, err)
		assert.IsType(t, &errors.NotFoundError{}, err)
		assert.Nil(t, message)
		mockMsgRepo.AssertNotCalled(t, "CreateMessage", mock.Anything, mock.Anything)
	})
}

func TestMessageService_SendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("stores user and assistant messages in order", func(t *testing.T) {
		mockConvRepo := new(mockConversationRepository)
		mockMsgRepo := new(mockMessageRepository)
		bot := integrations.NewReplyBot()
		service := NewMessageService(mockConvRepo, mockMsgRepo, bot, zap.NewNop())

		content := "Tell me about goroutines and channels"

		mockConvRepo.On("ValidID", "conv-1").Return(true).Once()
		mockConvRepo.On("GetConversation", ctx, "conv-1").
			Return(&entities.Conversation{ID: "conv-1", Title: "Go questions"}, nil).
			Once()

		var inserted []*entities.Message
		mockMsgRepo.On("CreateMessage", ctx, mock.AnythingOfType("*entities.Message")).
			Return(nil).
			Run(func(args mock.Arguments) {
				inserted = append(inserted, args.Get(1).(*entities.Message))
			}).
			Twice()

		message, err := service.SendMessage(ctx, "conv-1", content)

		assert.NoError(t, err)
		if assert.Len(t, inserted, 2) {
			assert.Equal(t, entities.RoleUser, inserted[0].Role)
			assert.Equal(t, content, inserted[0].Content)
			assert.Equal(t, entities.RoleAssistant, inserted[1].Role)
			assert.Equal(t, bot.GenerateReply(content), inserted[1].Content)
		}
		assert.Same(t, inserted[1], message)
		mockConvRepo.AssertExpectations(t)
		mockMsgRepo.AssertExpectations(t)
	})

	t.Run("malformed id writes nothing", func(t *testing.T) {
		mockConvRepo := new(mockConversationRepository)
		mockMsgRepo := new(mockMessageRepository)
		service := NewMessageService(mockConvRepo, mockMsgRepo, integrations.NewReplyBot(), zap.NewNop())

		mockConvRepo.On("ValidID", "bogus").Return(false).Once()

		message, err := service.SendMessage(ctx, "bogus", "hello")

		assert.Error(t, err)
		assert.IsType(t, &errors.InvalidIDError{}, err)
		assert.Nil(t, message)
		mockConvRepo.AssertNotCalled(t, "GetConversation", mock.Anything, mock.Anything)
		mockMsgRepo.AssertNotCalled(t, "CreateMessage", mock.Anything, mock.Anything)
	})

	t.Run("unknown conversation writes nothing", func(t *testing.T) {
		mockConvRepo := new(mockConversationRepository)
		mockMsgRepo := new(mockMessageRepository)
		service := NewMessageService(mockConvRepo, mockMsgRepo, integrations.NewReplyBot(), zap.NewNop())

		mockConvRepo.On("ValidID", "conv-9").Return(true).Once()
		mockConvRepo.On("GetConversation", ctx, "conv-9").
			Return(nil, errors.NotFoundErrorf("conversation not found: conv-9")).
			Once()

		message, err := service.SendMessage(ctx, "conv-9", "hello")

		assert.Error(t, err)
		assert.IsType(t, &errors.NotFoundError{}, err)
		assert.Nil(t, message)
		mockMsgRepo.AssertNotCalled(t, "CreateMessage", mock.Anything, mock.Anything)
	})

	t.Run("assistant insert failure keeps user message", func(t *testing.T) {
		mockConvRepo := new(mockConversationRepository)
		mockMsgRepo := new(mockMessageRepository)
		service := NewMessageService(mockConvRepo, mockMsgRepo, integrations.NewReplyBot(), zap.NewNop())

		mockConvRepo.On("ValidID", "conv-1").Return(true).Once()
		mockConvRepo.On("GetConversation", ctx, "conv-1").
			Return(&entities.Conversation{ID: "conv-1"}, nil).
			Once()

		var inserted []*entities.Message
		mockMsgRepo.On("CreateMessage", ctx, mock.AnythingOfType("*entities.Message")).
			Return(nil).
			Run(func(args mock.Arguments) {
				inserted = append(inserted, args.Get(1).(*entities.Message))
			}).
			Once()
		mockMsgRepo.On("CreateMessage", ctx, mock.AnythingOfType("*entities.Message")).
			Return(errors.InternalErrorf("insert failed")).
			Once()

		message, err := service.SendMessage(ctx, "conv-1", "what happened")

		assert.Error(t, err)
		assert.IsType(t, &errors.InternalError{}, err)
		assert.Nil(t, message)
		// The user message was already persisted; no rollback happens.
		if assert.Len(t, inserted, 1) {
			assert.Equal(t, entities.RoleUser, inserted[0].Role)
		}
		mockMsgRepo.AssertNumberOfCalls(t, "CreateMessage", 2)
	})
}

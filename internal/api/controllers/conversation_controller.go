package apicontrollers

import (
	"net/http"

	"github.com/drujensen/aichat/internal/domain/entities"
	"github.com/drujensen/aichat/internal/domain/errors"
	"github.com/drujensen/aichat/internal/domain/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ConversationController struct {
	logger              *zap.Logger
	conversationService services.ConversationService
}

func NewConversationController(logger *zap.Logger, conversationService services.ConversationService) *ConversationController {
	return &ConversationController{
		logger:              logger,
		conversationService: conversationService,
	}
}

// RegisterRoutes registers all conversation-related routes with Echo
func (c *ConversationController) RegisterRoutes(e *echo.Group) {
	e.GET("/conversations", c.ListConversations)
	e.POST("/conversations", c.CreateConversation)
}

// ListConversations godoc
// @Summary List conversations
// @Description Retrieves the most recent conversations, newest first.
// @Tags conversations
// @Produce json
// @Success 200 {array} entities.Conversation "Successfully retrieved list of conversations"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/conversations [get]
func (c *ConversationController) ListConversations(ctx echo.Context) error {
	conversations, err := c.conversationService.ListConversations(ctx.Request().Context())
	if err != nil {
		return c.handleError(ctx, err.Error(), http.StatusInternalServerError)
	}
	if conversations == nil {
		conversations = []*entities.Conversation{}
	}
	return ctx.JSON(http.StatusOK, conversations)
}

// CreateConversation godoc
// @Summary Create a new conversation
// @Description Creates a conversation with the provided title.
// @Tags conversations
// @Accept json
// @Produce json
// @Param request body CreateConversationRequest true "Conversation information to create"
// @Success 201 {object} entities.Conversation "Successfully created conversation"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/conversations [post]
func (c *ConversationController) CreateConversation(ctx echo.Context) error {
	var input CreateConversationRequest
	if err := ctx.Bind(&input); err != nil {
		return c.handleError(ctx, "Invalid request body", http.StatusBadRequest)
	}

	conversation, err := c.conversationService.CreateConversation(ctx.Request().Context(), input.Title, input.CreatedBy)
	if err != nil {
		switch err.(type) {
		case *errors.ValidationError:
			return c.handleError(ctx, err.Error(), http.StatusBadRequest)
		default:
			return c.handleError(ctx, err.Error(), http.StatusInternalServerError)
		}
	}

	return ctx.JSON(http.StatusCreated, conversation)
}

func (c *ConversationController) handleError(ctx echo.Context, err interface{}, statusCode int) error {
	c.logger.Error("Error occurred", zap.Any("error", err))
	return ctx.JSON(statusCode, map[string]interface{}{
		"error": err,
	})
}

// CreateConversationRequest represents the request body for creating a new conversation.
type CreateConversationRequest struct {
	Title     string `json:"title" example:"Project kickoff"`
	CreatedBy string `json:"created_by" example:"alice"`
}

package apicontrollers

import (
	"net/http"

	"github.com/drujensen/aichat/internal/domain/entities"
	"github.com/drujensen/aichat/internal/domain/errors"
	"github.com/drujensen/aichat/internal/domain/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type MessageController struct {
	logger         *zap.Logger
	messageService services.MessageService
}

func NewMessageController(logger *zap.Logger, messageService services.MessageService) *MessageController {
	return &MessageController{
		logger:         logger,
		messageService: messageService,
	}
}

// RegisterRoutes registers all message-related routes with Echo
func (c *MessageController) RegisterRoutes(e *echo.Group) {
	e.GET("/conversations/:id/messages", c.ListMessages)
	e.POST("/conversations/:id/messages", c.AddMessage)
	e.POST("/conversations/:id/send", c.SendMessage)
}

// ListMessages godoc
// @Summary List messages in a conversation
// @Description Retrieves all messages for a conversation, oldest first.
// @Tags messages
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {array} entities.Message "Successfully retrieved list of messages"
// @Failure 400 {object} map[string]interface{} "Invalid conversation ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/conversations/{id}/messages [get]
func (c *MessageController) ListMessages(ctx echo.Context) error {
	id := ctx.Param("id")
	messages, err := c.messageService.ListMessages(ctx.Request().Context(), id)
	if err != nil {
		switch err.(type) {
		case *errors.InvalidIDError:
			return c.handleError(ctx, err.Error(), http.StatusBadRequest)
		default:
			return c.handleError(ctx, err.Error(), http.StatusInternalServerError)
		}
	}
	if messages == nil {
		messages = []*entities.Message{}
	}
	return ctx.JSON(http.StatusOK, messages)
}

// AddMessage godoc
// @Summary Add a message to a conversation
// @Description Stores a message with the given role and content. No reply is generated.
// @Tags messages
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID"
// @Param request body AddMessageRequest true "Message to store"
// @Success 201 {object} entities.Message "Successfully created message"
// @Failure 400 {object} map[string]interface{} "Invalid ID, role, or request body"
// @Failure 404 {object} map[string]interface{} "Conversation not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/conversations/{id}/messages [post]
func (c *MessageController) AddMessage(ctx echo.Context) error {
	id := ctx.Param("id")

	var input AddMessageRequest
	if err := ctx.Bind(&input); err != nil {
		return c.handleError(ctx, "Invalid request body", http.StatusBadRequest)
	}

	message, err := c.messageService.AddMessage(ctx.Request().Context(), id, entities.Role(input.Role), input.Content)
	if err != nil {
		switch err.(type) {
		case *errors.InvalidIDError, *errors.ValidationError:
			return c.handleError(ctx, err.Error(), http.StatusBadRequest)
		case *errors.NotFoundError:
			return c.handleError(ctx, err.Error(), http.StatusNotFound)
		default:
			return c.handleError(ctx, err.Error(), http.StatusInternalServerError)
		}
	}

	return ctx.JSON(http.StatusCreated, message)
}

// SendMessage godoc
// @Summary Send a message and receive a reply
// @Description Stores the user message, generates an assistant reply, stores it, and returns it.
// @Tags messages
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID"
// @Param request body SendMessageRequest true "Message to send"
// @Success 200 {object} entities.Message "Assistant reply"
// @Failure 400 {object} map[string]interface{} "Invalid ID or request body"
// @Failure 404 {object} map[string]interface{} "Conversation not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/conversations/{id}/send [post]
func (c *MessageController) SendMessage(ctx echo.Context) error {
	id := ctx.Param("id")

	var input SendMessageRequest
	if err := ctx.Bind(&input); err != nil {
		return c.handleError(ctx, "Invalid request body", http.StatusBadRequest)
	}

	reply, err := c.messageService.SendMessage(ctx.Request().Context(), id, input.Content)
	if err != nil {
		switch err.(type) {
		case *errors.InvalidIDError:
			return c.handleError(ctx, err.Error(), http.StatusBadRequest)
		case *errors.NotFoundError:
			return c.handleError(ctx, err.Error(), http.StatusNotFound)
		default:
			return c.handleError(ctx, err.Error(), http.StatusInternalServerError)
		}
	}

	return ctx.JSON(http.StatusOK, reply)
}

func (c *MessageController) handleError(ctx echo.Context, err interface{}, statusCode int) error {
	c.logger.Error("Error occurred", zap.Any("error", err))
	return ctx.JSON(statusCode, map[string]interface{}{
		"error": err,
	})
}

// AddMessageRequest represents the request body for storing a message.
type AddMessageRequest struct {
	Role    string `json:"role" example:"user"`
	Content string `json:"content" example:"What time is the meeting?"`
}

// SendMessageRequest represents the request body for sending a message.
type SendMessageRequest struct {
	Content string `json:"content" example:"hello there"`
}

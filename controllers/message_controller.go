package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/test-kooza/rental-management-system-sub001/dto"
	"github.com/test-kooza/rental-management-system-sub001/errors"
	"github.com/test-kooza/rental-management-system-sub001/middleware"
	"github.com/test-kooza/rental-management-system-sub001/models"
	"github.com/test-kooza/rental-management-system-sub001/response"
	"github.com/test-kooza/rental-management-system-sub001/services"
)

type MessageController struct {
	db   *gorm.DB
	chat *services.ChatService
}

func NewMessageController(db *gorm.DB, chat *services.ChatService) *MessageController {
	return &MessageController{db: db, chat: chat}
}

func respondChatError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}
	switch appErr.Code {
	case errors.ErrCodeForbidden:
		response.Forbidden(c)
	case errors.ErrCodeDBNotFound:
		response.NotFound(c)
	case errors.ErrCodeRequiredField:
		response.BadRequest(c, appErr.Message)
	default:
		response.ServerError(c)
	}
}

// OpenConversation starts (or resumes) the conversation between the
// authenticated guest and the host of a property.
func (mc *MessageController) OpenConversation(c *gin.Context) {
	currentUserID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.OpenConversationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var property models.Property
	if err := mc.db.First(&property, request.PropertyID).Error; err != nil {
		response.NotFound(c)
		return
	}
	if property.HostID == currentUserID {
		response.BadRequest(c, "Hosts cannot open a conversation with themselves")
		return
	}

	conversation, err := mc.chat.OpenConversation(currentUserID, property.HostID, property.ID)
	if err != nil {
		respondChatError(c, err)
		return
	}

	response.Success(c, conversation)
}

// ListConversations returns the authenticated user's conversations.
func (mc *MessageController) ListConversations(c *gin.Context) {
	currentUserID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	conversations, err := mc.chat.ListConversations(currentUserID)
	if err != nil {
		respondChatError(c, err)
		return
	}

	response.Success(c, conversations)
}

// SendMessage persists a message and publishes it on the conversation
// channel, echoing the client's correlation id.
func (mc *MessageController) SendMessage(c *gin.Context) {
	currentUserID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.SendMessageRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	message, err := mc.chat.SendMessage(currentUserID, request.ConversationID, request.Body, request.CorrelationID)
	if err != nil {
		respondChatError(c, err)
		return
	}

	response.Success(c, dto.MessageResponse{
		ID:             message.ID,
		ConversationID: message.ConversationID,
		SenderID:       message.SenderID,
		Body:           message.Body,
		CorrelationID:  message.CorrelationID,
		CreatedAt:      message.CreatedAt,
	})
}

// GetMessages pages through a conversation's history, oldest first.
func (mc *MessageController) GetMessages(c *gin.Context) {
	currentUserID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	conversationID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid conversation id")
		return
	}

	page := 0
	limit := 50
	if parsedPage, err := strconv.Atoi(c.Query("page")); err == nil && parsedPage >= 0 {
		page = parsedPage
	}
	if parsedLimit, err := strconv.Atoi(c.Query("limit")); err == nil && parsedLimit > 0 {
		limit = parsedLimit
	}

	messages, total, err := mc.chat.History(currentUserID, uint(conversationID), page, limit)
	if err != nil {
		respondChatError(c, err)
		return
	}

	messageResponses := make([]dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		messageResponses = append(messageResponses, dto.MessageResponse{
			ID:             m.ID,
			ConversationID: m.ConversationID,
			SenderID:       m.SenderID,
			Body:           m.Body,
			CorrelationID:  m.CorrelationID,
			CreatedAt:      m.CreatedAt,
		})
	}

	response.SuccessWithPagination(c, messageResponses, page, limit, int(total))
}

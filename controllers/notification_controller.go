package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/test-kooza/rental-management-system-sub001/dto"
	"github.com/test-kooza/rental-management-system-sub001/errors"
	"github.com/test-kooza/rental-management-system-sub001/middleware"
	"github.com/test-kooza/rental-management-system-sub001/response"
	"github.com/test-kooza/rental-management-system-sub001/services"
)

type NotificationController struct {
	notifications *services.NotificationService
}

func NewNotificationController(notifications *services.NotificationService) *NotificationController {
	return &NotificationController{notifications: notifications}
}

// GetNotifications lists the authenticated recipient's notifications.
func (nc *NotificationController) GetNotifications(c *gin.Context) {
	currentUserID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	page := 0
	limit := 20
	if parsedPage, err := strconv.Atoi(c.Query("page")); err == nil && parsedPage >= 0 {
		page = parsedPage
	}
	if parsedLimit, err := strconv.Atoi(c.Query("limit")); err == nil && parsedLimit > 0 {
		limit = parsedLimit
	}

	notifications, total, err := nc.notifications.ListForUser(currentUserID, page, limit)
	if err != nil {
		response.ServerError(c)
		return
	}

	notificationResponses := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		notificationResponses = append(notificationResponses, dto.NotificationResponse{
			ID:        n.ID,
			Type:      n.Type,
			Message:   n.Message,
			IsRead:    n.IsRead,
			BookingID: n.BookingID,
			CreatedAt: n.CreatedAt,
		})
	}

	response.SuccessWithPagination(c, notificationResponses, page, limit, int(total))
}

// MarkNotificationRead flags one notification as read. Scoped to the
// authenticated recipient; other users' notifications read as not found.
func (nc *NotificationController) MarkNotificationRead(c *gin.Context) {
	currentUserID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.MarkReadRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := nc.notifications.MarkRead(currentUserID, request.ID); err != nil {
		if errors.HasCode(err, errors.ErrCodeDBNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"message": "Notification marked as read"})
}

// MarkAllNotificationsRead flags every unread notification of the recipient.
func (nc *NotificationController) MarkAllNotificationsRead(c *gin.Context) {
	currentUserID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	updated, err := nc.notifications.MarkAllRead(currentUserID)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"updated": updated})
}

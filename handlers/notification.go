package handlers

import (
	"net/http"

	notificationRepo "ybhotels/database/repository/notification"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves a guest's notification feed.
type NotificationHandler struct {
	Notifications notificationRepo.NotificationRepository
}

func NewNotificationHandler(notifications notificationRepo.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{Notifications: notifications}
}

// List handles GET /api/notifications.
func (h *NotificationHandler) List(c *gin.Context) {
	list, err := h.Notifications.GetByUserID(c.Request.Context(), authedUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": list})
}

// MarkRead handles POST /api/notifications/:id/read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.Notifications.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark notification read"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notification marked read"})
}

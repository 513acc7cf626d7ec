package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recruitwarx/portal/internal/auth"
	"github.com/recruitwarx/portal/internal/services"
)

type NotificationHandler struct {
	Notifications *services.NotificationService
}

func NewNotificationHandler(svc *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{Notifications: svc}
}

// List is GET /notifications.
func (h *NotificationHandler) List(c *gin.Context) {
	sess := auth.CurrentSession(c)
	notifications, err := h.Notifications.List(sess.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	count, err := h.Notifications.UnreadCount(sess.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "notifications": notifications, "unread_count": count})
}

// MarkRead is PUT /notifications/:id/read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	if err := h.Notifications.MarkRead(id, auth.CurrentSession(c).UserID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// MarkAllRead is PUT /notifications/read-all.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.Notifications.MarkAllRead(auth.CurrentSession(c).UserID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

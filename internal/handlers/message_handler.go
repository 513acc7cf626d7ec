package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recruitwarx/portal/internal/auth"
	"github.com/recruitwarx/portal/internal/dtos"
	"github.com/recruitwarx/portal/internal/services"
)

type MessageHandler struct {
	Messages *services.MessageService
}

func NewMessageHandler(svc *services.MessageService) *MessageHandler {
	return &MessageHandler{Messages: svc}
}

// Send is POST /messages.
func (h *MessageHandler) Send(c *gin.Context) {
	var req dtos.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	id, err := h.Messages.Send(&req, auth.CurrentSession(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message_id": id})
}

// List is GET /messages?box=inbox|sent. Inbox is the default.
func (h *MessageHandler) List(c *gin.Context) {
	messages, err := h.Messages.List(c.DefaultQuery("box", "inbox"), auth.CurrentSession(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "messages": messages})
}

// MarkRead is PUT /messages/:id/read.
func (h *MessageHandler) MarkRead(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	if err := h.Messages.MarkRead(id, auth.CurrentSession(c)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UnreadCount is GET /messages/unread-count.
func (h *MessageHandler) UnreadCount(c *gin.Context) {
	count, err := h.Messages.UnreadCount(auth.CurrentSession(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": count})
}
